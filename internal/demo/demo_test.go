package demo

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cgraph2dot/cgraph2dot/internal/testutil"
	"github.com/cgraph2dot/cgraph2dot/pkg/calc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_DefaultInputs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRunner(&buf, testutil.NewTestLogger(t)).Run(DefaultInputs()))

	want := "CGraph2Dot Example Program\n" +
		"==========================\n" +
		"\n" +
		"Result: 15\n" +
		"Result: 5\n" +
		"Result: 50\n" +
		"Result: 2\n" +
		"Result: 120\n" +
		"Result: 75\n"
	assert.Equal(t, want, buf.String())
}

func TestRun_UnderlineMatchesBanner(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, DefaultInputs()))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, len(lines[0]), len(lines[1]))
	assert.Equal(t, strings.Repeat("=", len(Banner)), lines[1])
}

func TestRunCalculations_ZeroDivisor(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf, nil)

	require.NoError(t, r.RunCalculations(Inputs{A: 4, B: 0, FactorialN: 3}))

	want := "Result: 4\n" +
		"Result: 4\n" +
		"Result: 0\n" +
		calc.DivisionByZeroMessage + "\n" +
		"Result: 0\n" +
		"Result: 6\n" +
		// sum=4 diff=4 product=16, 4!%10+1 = 5, 16/25
		"Result: 0\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRun_WriteError(t *testing.T) {
	err := Run(failingWriter{}, DefaultInputs())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "banner")

	err = NewRunner(failingWriter{}, nil).DisplayResult(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "result")
}
