package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestStartSeeded(t *testing.T) {
	out, _, err := execute(t, "1\n7\n8\n", "start", "--seed=true", "--verbose=false", "--lang=en")
	require.NoError(t, err)
	assert.Contains(t, out, "1. [FICTION] The Hobbit by J.R.R. Tolkien | Genre: Fantasy | Price: $15.99")
	assert.Contains(t, out, "2. [NON-FICTION] Sapiens by Yuval Noah Harari | Category: History | Price: $18.50")
	assert.Contains(t, out, "Total books in system: 2")
	assert.Contains(t, out, "Goodbye!")
}

func TestStartEmpty(t *testing.T) {
	out, _, err := execute(t, "1\n8\n", "start", "--seed=false", "--verbose=false", "--lang=en")
	require.NoError(t, err)
	assert.Contains(t, out, "No books in inventory.")
}

func TestStartVerboseLogs(t *testing.T) {
	_, logs, err := execute(t, "6\n1\n8\n", "start", "--seed=true", "--verbose", "--lang=en")
	require.NoError(t, err)
	assert.Contains(t, logs, "book created")
	assert.Contains(t, logs, "kind=FICTION")
	assert.Contains(t, logs, "book duplicated")
	assert.Contains(t, logs, `title="The Hobbit"`)
	assert.Regexp(t, `source=[0-9a-f-]{36} copy=[0-9a-f-]{36}`, logs)
}

func TestStartRejectsBadLang(t *testing.T) {
	_, _, err := execute(t, "", "start", "--lang=not a tag")
	assert.Error(t, err)
}
