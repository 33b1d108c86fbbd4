package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCookie(t *testing.T) {
	_, err := app.Parse([]string{"cookie", "sid", "xyz", "--path", "/app", "--secure", "--http-only", "--expires", "1700000000"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printCookie(&out))
	assert.Equal(t, "sid=xyz; path=/app; Expires=Tue, 14-Nov-2023 22:13:20 GMT; Secure; HttpOnly\n", out.String())
}

func TestPrintSnapshot(t *testing.T) {
	_, err := app.Parse([]string{"snapshot", "-s", "404", "-H", "B=2", "-H", "A=1", "-b", "gone"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printSnapshot(&out))
	assert.Equal(t, `status: 404
headers:
    - name: A
      value: "1"
    - name: B
      value: "2"
body: gone
`, out.String())
}
