package interp

import (
	"io"
	"os"
)

// Config configures an Interpreter. There is no persisted or file-based
// configuration since the language has no such surface; callers construct
// one directly or start from DefaultConfig.
type Config struct {
	// MaxRecursionDepth bounds nested Call()s before a "Stack overflow."
	// runtime error is raised.
	MaxRecursionDepth int
	// Stdout receives output from `print` and the `debug` builtin.
	Stdout io.Writer
	// SourceFile records the script path; empty for inline (-e) programs.
	// The evaluator does not read it: runtime error messages and debug
	// output do not include it.
	SourceFile string
}

func DefaultConfig() Config {
	return Config{
		MaxRecursionDepth: 1024,
		Stdout:            os.Stdout,
	}
}
