// Package toolchain invokes an external compiler to turn benchmark sources
// into runnable artifacts. Compilation failure is an expected outcome and is
// reported in the BuildResult rather than as an error.
package toolchain

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultBuildTimeout bounds a single compiler invocation.
const DefaultBuildTimeout = 30 * time.Second

// BuildResult describes the outcome of one compiler invocation. Output holds
// the compiler's combined stdout/stderr for verbose debugging; the harness
// never parses it.
type BuildResult struct {
	OK       bool
	Artifact string
	Output   string
}

// Compiler wraps one side's toolchain binary.
type Compiler struct {
	Bin     string
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewCompiler returns a Compiler for the given toolchain binary.
func NewCompiler(bin string) *Compiler {
	return &Compiler{
		Bin:     bin,
		Timeout: DefaultBuildTimeout,
		Logger:  slog.Default(),
	}
}

// Build compiles source into output with the given flag string, invoked as
// `<bin> <flags...> <source> -o <output>`. It reports success iff the
// compiler exits 0 within the timeout. A missing source file fails without
// spawning the compiler at all.
func (c *Compiler) Build(ctx context.Context, source, output, flags string) BuildResult {
	if _, err := os.Stat(source); err != nil {
		c.Logger.Debug("source missing, skipping build", "source", source)
		return BuildResult{OK: false}
	}

	args := append(strings.Fields(flags), source, "-o", output)

	buildCtx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	cmd := exec.CommandContext(buildCtx, c.Bin, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	res := BuildResult{
		OK:       err == nil,
		Artifact: output,
		Output:   buf.String(),
	}
	if err != nil {
		res.Artifact = ""
		c.Logger.Debug("build failed",
			"compiler", c.Bin, "source", source, "error", err,
			"timed_out", buildCtx.Err() == context.DeadlineExceeded,
			"output", res.Output)
	}
	return res
}

func (c *Compiler) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultBuildTimeout
}
