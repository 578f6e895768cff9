package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/num2words/english"
	"github.com/az-ai-labs/num2words/tajik"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run(t.Context(), &out, options{seed: 3, count: 200, digits: 40, level: "error"})
	require.NoError(t, err, out.String())

	for _, name := range []string{"Arabic", "English", "Persian", "Tajik"} {
		assert.Contains(t, out.String(), name)
	}
	assert.NotContains(t, out.String(), "failures 1")
}

func TestRunRejectsDigits(t *testing.T) {
	err := run(t.Context(), &bytes.Buffer{}, options{count: 1, digits: 0})
	assert.Error(t, err)
}

func TestRandomNumbers(t *testing.T) {
	t.Parallel()

	opts := options{seed: 42, count: 500, digits: 30}
	a, b := randomNumbers(opts), randomNumbers(opts)
	assert.Equal(t, a, b, "same seed must give the same numbers")
	require.Len(t, a, 500)

	for _, n := range a {
		digits := strings.TrimPrefix(n, "-")
		assert.NotEmpty(t, digits)
		assert.LessOrEqual(t, len(digits), 30)
		assert.NotEqual(t, byte('0'), digits[0], n)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	assert.Empty(t, check(english.New(), ", ", "1001"))
	assert.Empty(t, check(english.New(), ", ", "-1000000"))
	assert.Empty(t, check(tajik.New(), "у ", "2500"))
	assert.NotEmpty(t, check(english.New(), ", ", "12x"))
}

func TestCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--count", "10", "--log-level", "error"})
	require.NoError(t, cmd.Execute(), out.String())
}
