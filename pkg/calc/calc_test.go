package calc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicOperations(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b int) int
		a, b int
		want int
	}{
		{"add", Add, 2, 3, 5},
		{"add negative", Add, -4, 1, -3},
		{"subtract", Subtract, 10, 5, 5},
		{"subtract below zero", Subtract, 5, 10, -5},
		{"multiply", Multiply, 10, 5, 50},
		{"multiply by zero", Multiply, 7, 0, 0},
		{"divide", Divide, 10, 5, 2},
		{"divide truncates", Divide, 7, 2, 3},
		{"divide truncates toward zero", Divide, -7, 2, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.a, tt.b))
		})
	}
}

func TestDivide_ByZero(t *testing.T) {
	var buf bytes.Buffer
	restore := SetDiagnosticOutput(&buf)
	defer restore()

	for _, x := range []int{0, 1, -1, 75, 1 << 20} {
		assert.Equal(t, 0, Divide(x, 0), "Divide(%d, 0)", x)
	}

	assert.Equal(t, 5, bytes.Count(buf.Bytes(), []byte(DivisionByZeroMessage+"\n")))
}

func TestDivide_NoDiagnosticOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	restore := SetDiagnosticOutput(&buf)
	defer restore()

	_ = Divide(10, 5)
	assert.Empty(t, buf.String())
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 120},
		{10, 3628800},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Factorial(tt.n), "Factorial(%d)", tt.n)
	}
}

func TestHelperFunction(t *testing.T) {
	for _, x := range []int{-9, -1, 0, 1, 3, 12} {
		assert.Equal(t, x*x, HelperFunction(x), "HelperFunction(%d)", x)
	}
}

func TestComplexCalculation(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want int
	}{
		// sum=15 diff=5 product=75, 5!%10+1 = 1, 75/1
		{"demo inputs", 10, 5, 75},
		// sum=5 diff=1 product=5, 1!%10+1 = 2, 5/4
		{"small diff", 3, 2, 1},
		// sum=7 diff=3 product=21, 3!%10+1 = 7, 21/49
		{"diff three", 5, 2, 0},
		// diff=0 skips the factorial branch
		{"equal inputs", 4, 4, 0},
		// diff=10 is outside (0, 10)
		{"diff ten", 10, 0, 100},
		// negative diff
		{"negative diff", 2, 5, -21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComplexCalculation(tt.x, tt.y))
		})
	}
}

func TestSetDiagnosticOutput_Restore(t *testing.T) {
	var first, second bytes.Buffer

	restoreFirst := SetDiagnosticOutput(&first)
	restoreSecond := SetDiagnosticOutput(&second)
	_ = Divide(1, 0)
	restoreSecond()
	_ = Divide(1, 0)
	restoreFirst()

	assert.Equal(t, DivisionByZeroMessage+"\n", second.String())
	assert.Equal(t, DivisionByZeroMessage+"\n", first.String())
}
