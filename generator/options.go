package generator

import "math/rand/v2"

// prng is the minimal randomness surface the constructor needs. It is
// satisfied by both the package-level default (backed by math/rand/v2's
// process-wide generator) and by a caller-supplied *rand.Rand.
type prng interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Option configures Generate.
type Option func(*config)

type config struct {
	size         int
	source       prng
	restartLimit int
}

func newConfig(opts ...Option) *config {
	cfg := &config{source: globalSource{}, restartLimit: defaultRestartLimit}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSize fixes the board's side length instead of picking a random odd
// value in [MinSize, MaxSize]. size must be odd and >= MinSize; for an
// invalid value Generate returns an error wrapping hexfield.ErrShape.
func WithSize(size int) Option {
	return func(c *config) { c.size = size }
}

// WithSource overrides the process-wide PRNG with r, for deterministic,
// reproducible generation in tests.
func WithSource(r *rand.Rand) Option {
	return func(c *config) { c.source = r }
}

// WithRestartLimit caps the number of fully packed fields Generate will
// build before giving up with ErrGiveUp; a packed field is discarded and
// rebuilt when its instance fails validation with
// instance.ErrOutOfRange. Dead-end restarts inside the packing loop
// itself are not counted and are not bounded by this limit.
func WithRestartLimit(n int) Option {
	return func(c *config) { c.restartLimit = n }
}

const defaultRestartLimit = 10000
