// Command hexlink is a thin console front-end over the core solver and
// generator: it reads a field from standard input (or generates a random
// one with -g), solves it, and prints each solution in the renderer
// layout of §6. It adds no algorithmic content of its own, per spec.md
// §1's "out of scope: ... the console renderer, the argument parser".
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"hexlink"
	"hexlink/generator"
	"hexlink/graph"
	"hexlink/instance"
)

// ErrArg indicates the CLI received an invalid flag value (a negative
// -n/--number), mirroring argparse's ValueError path in cnumberlink.py.
var ErrArg = errors.New("hexlink: the number of solutions must be non-negative")

// noSolutionsMessage matches cnumberlink.py's literal console output when
// the solution stream is empty.
const noSolutionsMessage = "Решений нет."

// countFlag distinguishes "-n not given" (unlimited) from an explicit
// value, which flag.Int's single zero-value default cannot express: a
// negative explicit value must be rejected, but an absent flag must not
// be.
type countFlag struct {
	value int
	set   bool
}

func (c *countFlag) String() string {
	if c == nil || !c.set {
		return ""
	}
	return strconv.Itoa(c.value)
}

func (c *countFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrArg, s)
	}
	c.value = v
	c.set = true
	return nil
}

func main() {
	if err := run(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, args []string) error {
	var count countFlag
	var generate bool

	fs := newFlagSet(&count, &generate)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if count.set && count.value < 0 {
		return fmt.Errorf("%w: got %d", ErrArg, count.value)
	}

	var inst *instance.Instance
	var err error
	if generate {
		inst, err = generator.Generate()
	} else {
		inst, err = readInstance(in)
	}
	if err != nil {
		return err
	}

	seq, err := hexlink.Solve(context.Background(), inst)
	if err != nil {
		return err
	}

	return printSolutions(out, inst, seq, count)
}

// newFlagSet wires both the short and long spellings of -n/--number and
// -g/--generate onto the same destinations, since the standard flag
// package has no built-in notion of flag aliases.
func newFlagSet(count *countFlag, generate *bool) *flag.FlagSet {
	fs := flag.NewFlagSet("hexlink", flag.ContinueOnError)
	fs.Var(count, "n", "the maximum number of solutions to print")
	fs.Var(count, "number", "the maximum number of solutions to print")
	fs.BoolVar(generate, "g", false, "generate an instance instead of reading one")
	fs.BoolVar(generate, "generate", false, "generate an instance instead of reading one")
	return fs
}

// readInstance parses whitespace-separated integer rows from in, one row
// per line, stopping at the first blank line (or EOF), per §6's field
// input format.
func readInstance(in io.Reader) (*instance.Instance, error) {
	scanner := bufio.NewScanner(in)
	var rows [][]string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		rows = append(rows, strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return instance.New(rows)
}

// printSolutions prints each solution, in order, up to count's limit (if
// set), separated by blank lines, or the "no solutions" message if
// nothing was printed (an empty stream, or a limit of 0).
func printSolutions(out io.Writer, inst *instance.Instance, seq func(func(graph.Solution) bool), count countFlag) error {
	found := false
	emitted := 0
	var writeErr error

	seq(func(sol graph.Solution) bool {
		if count.set && emitted >= count.value {
			return false
		}
		if found {
			fmt.Fprintln(out)
		}
		found = true
		emitted++

		painted, err := instance.Paint(inst, sol)
		if err != nil {
			writeErr = err
			return false
		}
		fmt.Fprintln(out, instance.RenderSolution(painted, sol))
		return true
	})
	if writeErr != nil {
		return writeErr
	}
	if !found {
		fmt.Fprintln(out, noSolutionsMessage)
	}
	return nil
}
