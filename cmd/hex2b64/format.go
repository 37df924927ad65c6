package main

import "fmt"

type format int

const (
	formatBase64 format = iota
	formatBase58
	formatHex
)

var formatNames = []string{"base64", "base58", "hex"}

func (f format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("format(%d)", int(f))
}

func parseFormat(s string) (format, error) {
	for i, n := range formatNames {
		if n == s {
			return format(i), nil
		}
	}
	return 0, fmt.Errorf("unsupported output format %q", s)
}
