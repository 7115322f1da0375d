package basis

import (
	"log/slog"
	"math"

	"github.com/cwbudde/algo-fb/nufft"
)

// Precision names the floating-point type a basis computes in.
type Precision int

const (
	// Float64 is the only supported precision.
	Float64 Precision = iota
	// Float32 is recognized so callers get ErrConfig instead of silent
	// promotion.
	Float32
)

func (p Precision) String() string {
	switch p {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	default:
		return "unknown"
	}
}

// Config holds construction settings shared by all basis kinds.
type Config struct {
	// EllMax caps the angular frequency when LimitEllMax is set.
	EllMax      int
	LimitEllMax bool
	Precision   Precision
	// Logger receives construction and solver diagnostics.
	Logger *slog.Logger
	// NUFFT selects the nonuniform transform used by fast and polar bases.
	NUFFT nufft.Kind
	// Workers bounds the goroutines used by batch operations.
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns an unbounded angular cutoff, float64 precision,
// a discarding logger, Gaussian gridding and serial batches.
func DefaultConfig() Config {
	return Config{
		Precision: Float64,
		Logger:    discardLogger(),
		NUFFT:     nufft.Gaussian,
		Workers:   1,
	}
}

// WithEllMax caps the angular frequency. A negative cap leaves no usable
// frequencies and makes construction fail with ErrConfig.
func WithEllMax(ellMax int) Option {
	return func(cfg *Config) {
		cfg.EllMax = ellMax
		cfg.LimitEllMax = true
	}
}

// WithPrecision selects the numeric precision.
func WithPrecision(p Precision) Option {
	return func(cfg *Config) {
		cfg.Precision = p
	}
}

// WithLogger sets the diagnostic sink.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// WithNUFFT selects the nonuniform FFT implementation.
func WithNUFFT(kind nufft.Kind) Option {
	return func(cfg *Config) {
		cfg.NUFFT = kind
	}
}

// WithWorkers sets how many batch columns are processed concurrently.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// SolverConfig controls Expand and ExpandT.
type SolverConfig struct {
	// Tol is the relative residual target of the conjugate gradient solve.
	Tol float64
	// MaxIter caps iterations per sample; zero means ten times the system
	// size.
	MaxIter int
	// Logger overrides the basis logger for solver diagnostics when set.
	Logger *slog.Logger
	// Workers bounds concurrently solved batch samples; zero uses the
	// basis setting.
	Workers int
}

// SolverOption mutates a SolverConfig.
type SolverOption func(*SolverConfig)

// DefaultSolverConfig returns a tolerance of ten machine epsilons.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Tol: 10 * epsilon,
	}
}

// WithTolerance sets the relative residual target.
func WithTolerance(tol float64) SolverOption {
	return func(cfg *SolverConfig) {
		if tol > 0 && !math.IsInf(tol, 0) {
			cfg.Tol = tol
		}
	}
}

// WithMaxIter caps the iterations per sample.
func WithMaxIter(n int) SolverOption {
	return func(cfg *SolverConfig) {
		if n > 0 {
			cfg.MaxIter = n
		}
	}
}

// WithSolverLogger sets the solver diagnostic sink.
func WithSolverLogger(logger *slog.Logger) SolverOption {
	return func(cfg *SolverConfig) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// WithSolverWorkers sets how many batch samples are solved concurrently.
func WithSolverWorkers(n int) SolverOption {
	return func(cfg *SolverConfig) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// ApplySolverOptions applies zero or more options to the default solver
// config.
func ApplySolverOptions(opts ...SolverOption) SolverConfig {
	cfg := DefaultSolverConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// epsilon is the float64 machine epsilon.
const epsilon = 0x1p-52

var defaultLogger = slog.New(slog.DiscardHandler)

func discardLogger() *slog.Logger {
	return defaultLogger
}
