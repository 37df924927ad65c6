package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

func runWith(t *testing.T, fs afero.Fs, args ...string) runResult {
	t.Helper()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	code := run(context.Background(), args, fs, stdout, stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRunKnownAnswer(t *testing.T) {
	r := runWith(t, afero.NewMemMapFs(), referenceHex)
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, "Result: "+referenceBase64+"\n", r.stdout)
}

func TestRunMultipleArguments(t *testing.T) {
	r := runWith(t, afero.NewMemMapFs(), "ABC123ABC123", "", "666f6f")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, "Result: q8Ejq8Ej\nResult: \nResult: Zm9v\n", r.stdout)
}

func TestRunFormats(t *testing.T) {
	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{"--format", "hex", "abc123"}, "Result: ABC123\n"},
		{[]string{"-f", "base58", "00"}, "Result: 1\n"},
		{[]string{"--pad", "66"}, "Result: Zg==\n"},
		{[]string{"-p", "666f"}, "Result: Zm8=\n"},
	} {
		r := runWith(t, afero.NewMemMapFs(), test.args...)
		require.Equal(t, exitOK, r.code, r.stderr)
		assert.Equal(t, test.want, r.stdout, test.args)
	}
}

func TestRunInputFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in.hex", []byte("  "+referenceHex+"\n"), 0644))

	r := runWith(t, fs, "--in", "/in.hex", "--out", "/out.txt")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Empty(t, r.stdout)

	out, err := afero.ReadFile(fs, "/out.txt")
	require.NoError(t, err)
	assert.Equal(t, "Result: "+referenceBase64+"\n", string(out))
}

func TestRunWorkers(t *testing.T) {
	data := make([]byte, 30001)
	for i := range data {
		data[i] = byte(i % 251)
	}
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/big.hex", []byte(hex.EncodeToString(data)), 0644))

	r := runWith(t, fs, "-i", "/big.hex", "-w", "4", "--pad")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, "Result: "+base64.StdEncoding.EncodeToString(data)+"\n", r.stdout)

	r = runWith(t, fs, "-i", "/big.hex", "-w", "4")
	assert.Equal(t, exitConversion, r.code)
	assert.Contains(t, r.stderr, "not a multiple of 3")
}

func TestRunConversionErrors(t *testing.T) {
	for _, test := range []struct {
		arg string
		msg string
	}{
		{"ABCDEZ", "invalid hex character 'Z' at position 5"},
		{"ABC", "odd hex input length 3"},
		{"ABCD", "byte count 2 is not a multiple of 3"},
	} {
		r := runWith(t, afero.NewMemMapFs(), test.arg)
		assert.Equal(t, exitConversion, r.code, test.arg)
		assert.Empty(t, r.stdout)
		assert.Contains(t, r.stderr, test.msg)
	}
}

func TestRunUsageErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/dir", 0755))
	require.NoError(t, afero.WriteFile(fs, "/in.hex", []byte("00"), 0644))
	for _, args := range [][]string{
		nil,
		{"--unknown", "00"},
		{"--format", "base32", "00"},
		{"--workers", "-1", "00"},
		{"--log-level", "loud", "00"},
		{"--in", "/missing.hex"},
		{"--in", "/dir"},
		{"--in", "/in.hex", "00"},
		{"--out", "/dir", "000000"},
	} {
		r := runWith(t, fs, args...)
		assert.Equal(t, exitUsage, r.code, args)
		assert.True(t, strings.HasPrefix(r.stderr, "Error: "), args)
		assert.Contains(t, r.stderr, "Usage: hex2b64", args)
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	r := runWith(t, afero.NewMemMapFs(), "--help")
	assert.Equal(t, exitOK, r.code)
	assert.Contains(t, r.stderr, "--workers")

	r = runWith(t, afero.NewMemMapFs(), "-v")
	assert.Equal(t, exitOK, r.code)
	assert.Equal(t, "hex2b64 "+version+"\n", r.stdout)
}

func TestSelfCheck(t *testing.T) {
	assert.NoError(t, selfCheck(referenceHex, referenceBase64))
	assert.NoError(t, selfCheck("00", "anything"))
	assert.ErrorIs(t, selfCheck(referenceHex, "SSdt"), errSelfCheck)
}
