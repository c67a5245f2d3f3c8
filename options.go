package chainpack

import (
	"fmt"

	"github.com/Marly3/libshv/internal/options"
)

// DefaultMaxDepth is the nesting-depth ceiling applied when WithMaxDepth
// is not given (§5: "default ≥ 64").
const DefaultMaxDepth = 64

// DefaultBufferSize is the initial capacity of the scratch buffer a
// Writer pulls from its pool.
const DefaultBufferSize = 256

type config struct {
	maxDepth   int
	bufferSize int
}

func newConfig() *config {
	return &config{
		maxDepth:   DefaultMaxDepth,
		bufferSize: DefaultBufferSize,
	}
}

// Option configures a Writer or Reader.
type Option = options.Option[*config]

// WithMaxDepth overrides the maximum nesting depth a Writer or Reader
// will follow through List/Map/IMap/Array containers and metadata
// blocks before failing with errs.ErrDepthExceeded (§5). n must be
// positive.
func WithMaxDepth(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("chainpack: WithMaxDepth: depth must be positive, got %d", n)
		}

		c.maxDepth = n

		return nil
	})
}

// WithBufferSize sets the initial capacity of the scratch buffer a
// Writer allocates for each Marshal call. It is a performance hint, not
// a limit — the buffer still grows to fit larger values.
func WithBufferSize(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("chainpack: WithBufferSize: size must be non-negative, got %d", n)
		}

		c.bufferSize = n

		return nil
	})
}

func applyOptions(opts []Option) (*config, error) {
	c := newConfig()
	if err := options.ApplyAll(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}
