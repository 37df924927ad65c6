package logging

import "fmt"

// LoggerType is a type of logger output.
// Possible types:
//   - LoggerConsole: human readable lines, level colored on terminals.
//   - LoggerJSON: one JSON object per line.
type LoggerType int

const (
	LoggerConsole LoggerType = iota
	LoggerJSON
)

var loggerTypeNames = map[LoggerType]string{
	LoggerConsole: "console",
	LoggerJSON:    "json",
}

func (t LoggerType) String() string {
	if s, ok := loggerTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("LoggerType(%d)", int(t))
}

func (t LoggerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *LoggerType) UnmarshalText(text []byte) error {
	for k, v := range loggerTypeNames {
		if v == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("%q does not belong to LoggerType values", text)
}
