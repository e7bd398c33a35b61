// Package demo runs the example program: it calls each calc helper once and
// prints the results.
package demo

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cgraph2dot/cgraph2dot/pkg/calc"
)

// Banner is the heading printed before the results.
const Banner = "CGraph2Dot Example Program"

// Inputs holds the operands used by RunCalculations.
type Inputs struct {
	A          int `koanf:"a"`
	B          int `koanf:"b"`
	FactorialN int `koanf:"factorial_n"`
}

// DefaultInputs returns the operands of the example program (a=10, b=5, 5!).
func DefaultInputs() Inputs {
	return Inputs{A: 10, B: 5, FactorialN: 5}
}

// Runner prints demo output to a writer.
type Runner struct {
	out    io.Writer
	logger *slog.Logger
}

// NewRunner creates a Runner. A nil logger discards log output.
func NewRunner(out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{out: out, logger: logger}
}

// Run prints the banner followed by the calculation results.
func (r *Runner) Run(in Inputs) error {
	underline := strings.Repeat("=", len(Banner))
	if _, err := fmt.Fprintf(r.out, "%s\n%s\n\n", Banner, underline); err != nil {
		return fmt.Errorf("failed to write banner: %w", err)
	}
	return r.RunCalculations(in)
}

// RunCalculations computes each result in order and reports it.
func (r *Runner) RunCalculations(in Inputs) error {
	// Divide reports a zero divisor on the diagnostic writer; keep it in
	// the same stream as the results.
	restore := calc.SetDiagnosticOutput(r.out)
	defer restore()

	steps := []struct {
		op string
		fn func() int
	}{
		{"add", func() int { return calc.Add(in.A, in.B) }},
		{"subtract", func() int { return calc.Subtract(in.A, in.B) }},
		{"multiply", func() int { return calc.Multiply(in.A, in.B) }},
		{"divide", func() int { return calc.Divide(in.A, in.B) }},
		{"factorial", func() int { return calc.Factorial(in.FactorialN) }},
		{"complexCalculation", func() int { return calc.ComplexCalculation(in.A, in.B) }},
	}

	for _, step := range steps {
		result := step.fn()
		r.logger.Debug("calculation", "op", step.op, "a", in.A, "b", in.B, "result", result)
		if err := r.DisplayResult(result); err != nil {
			return err
		}
	}
	return nil
}

// DisplayResult prints a single "Result: N" line.
func (r *Runner) DisplayResult(result int) error {
	if _, err := fmt.Fprintf(r.out, "Result: %d\n", result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// Run is a convenience wrapper around NewRunner(w, nil).Run(in).
func Run(w io.Writer, in Inputs) error {
	return NewRunner(w, nil).Run(in)
}
