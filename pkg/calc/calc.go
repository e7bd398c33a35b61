// Package calc provides the arithmetic helpers exercised by the example program.
//
// The functions are intentionally small and call each other so the program
// has a call graph worth drawing: ComplexCalculation fans out to Add,
// Subtract, Multiply, Factorial (recursive), HelperFunction and Divide.
package calc

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// DivisionByZeroMessage is written to the diagnostic output when Divide is
// called with a zero divisor.
const DivisionByZeroMessage = "Error: Division by zero"

var (
	diagMu  sync.Mutex
	diagOut io.Writer = os.Stdout
)

// SetDiagnosticOutput redirects the Divide diagnostic to w and returns a
// function restoring the previous writer.
func SetDiagnosticOutput(w io.Writer) (restore func()) {
	diagMu.Lock()
	prev := diagOut
	diagOut = w
	diagMu.Unlock()

	return func() {
		diagMu.Lock()
		diagOut = prev
		diagMu.Unlock()
	}
}

// Add returns a + b.
func Add(a, b int) int {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns a / b truncated toward zero.
// A zero divisor prints a diagnostic and yields 0.
func Divide(a, b int) int {
	if b == 0 {
		diagMu.Lock()
		_, _ = fmt.Fprintln(diagOut, DivisionByZeroMessage)
		diagMu.Unlock()
		return 0
	}
	return a / b
}

// Factorial returns n! computed recursively. Inputs <= 1 yield 1.
// There is no overflow guard.
func Factorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}

// HelperFunction returns x squared.
func HelperFunction(x int) int {
	return x * x
}

// ComplexCalculation combines the other helpers:
// (x+y)*(x-y), divided by ((x-y)! % 10 + 1)^2 when 0 < x-y < 10.
func ComplexCalculation(x, y int) int {
	sum := Add(x, y)
	diff := Subtract(x, y)
	product := Multiply(sum, diff)

	if diff > 0 && diff < 10 {
		fact := Factorial(diff)
		return Divide(product, HelperFunction(fact%10+1))
	}
	return product
}
