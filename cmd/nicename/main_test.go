package main

import (
	"bytes"
	"strings"
	"testing"

	"fieldlabel/internal/inspector"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestFormatArgs(t *testing.T) {
	out := runCmd(t, "", "_fieldNameValue", "HTTPServer", "__", "x")
	assert.Equal(t, "Field Name Value\nHTTPServer\n\nx\n", out)
}

func TestFormatStdin(t *testing.T) {
	out := runCmd(t, "moveSpeed\n\n  _castShadows  \n")
	assert.Equal(t, "Move Speed\nCast Shadows\n", out)
}

func TestFormatAllWritesOneLinePerIdent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatAll(&buf, []string{"a", "bC"}, inspector.NopLogger()))
	assert.Equal(t, "a\nB C\n", buf.String())
}
