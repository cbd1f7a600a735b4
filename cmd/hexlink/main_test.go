package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunPrintsSolution(t *testing.T) {
	in := strings.NewReader("1 0\n0 2 1\n0 2\n\n")
	var out bytes.Buffer

	err := run(in, &out, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out.String())
	require.NotContains(t, out.String(), noSolutionsMessage)
}

func TestRunReportsNoSolutions(t *testing.T) {
	in := strings.NewReader("1 2\n0 0 0\n2 1\n\n")
	var out bytes.Buffer

	err := run(in, &out, nil)
	require.NoError(t, err)
	require.Equal(t, noSolutionsMessage+"\n", out.String())
}

func TestRunRejectsNegativeCount(t *testing.T) {
	in := strings.NewReader("1 0\n0 2 1\n0 2\n\n")
	var out bytes.Buffer

	err := run(in, &out, []string{"-n", "-1"})
	require.ErrorIs(t, err, ErrArg)
}

func TestRunHonoursCountLimit(t *testing.T) {
	in := strings.NewReader("1 2\n0 0 0\n1 2\n\n")
	var out bytes.Buffer

	err := run(in, &out, []string{"-n", "1"})
	require.NoError(t, err)
	require.False(t, strings.Contains(out.String(), "\n\n"))
}

func TestRunRejectsMalformedField(t *testing.T) {
	in := strings.NewReader("1 2\n0 0 0\n1\n\n")
	var out bytes.Buffer

	err := run(in, &out, nil)
	require.Error(t, err)
}

func TestRunGenerate(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader(""), &out, []string{"-g"})
	require.NoError(t, err)
	require.NotEmpty(t, out.String())
}
