package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParametersParse(t *testing.T) {
	for i, test := range []struct {
		args  []string
		level zapcore.Level
		typ   LoggerType
		fail  bool
	}{
		{nil, zapcore.InfoLevel, LoggerConsole, false},
		{[]string{"--log-level", "debug"}, zapcore.DebugLevel, LoggerConsole, false},
		{[]string{"--log-level=warn", "--log-type=json"}, zapcore.WarnLevel, LoggerJSON, false},
		{[]string{"--log-level", "loud"}, 0, 0, true},
		{[]string{"--log-type", "pretty"}, 0, 0, true},
	} {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		var p Parameters
		p.Initialize(fs)
		require.NoError(t, fs.Parse(test.args), i)
		err := p.Parse()
		if test.fail {
			assert.Error(t, err, i)
			continue
		}
		require.NoError(t, err, i)
		assert.Equal(t, test.level, p.Level, i)
		assert.Equal(t, test.typ, p.Type, i)
	}
}

func TestLoggerTypeText(t *testing.T) {
	var lt LoggerType
	require.NoError(t, lt.UnmarshalText([]byte("json")))
	assert.Equal(t, LoggerJSON, lt)
	b, err := lt.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "json", string(b))
	assert.Equal(t, "LoggerType(7)", LoggerType(7).String())
}

func TestNewLoggerJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := NewLogger(Parameters{Level: zapcore.InfoLevel, Type: LoggerJSON}, buf)
	logger.Debug("hidden")
	logger.Info("converted", zap.Int("bytes", 48))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "converted", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 48, entry["bytes"])
}

func TestNewLoggerConsole(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := NewLogger(Parameters{Level: zapcore.DebugLevel, Type: LoggerConsole}, buf)
	logger.Debug("decoded input")
	require.NoError(t, logger.Sync())
	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "decoded input")
	assert.NotContains(t, out, "\x1b[")
}
