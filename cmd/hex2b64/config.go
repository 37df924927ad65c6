package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"

	"github.com/wavesplatform/bytecodec/pkg/logging"
)

type config struct {
	fs          afero.Fs
	inputs      []string
	out         io.Writer
	outFile     afero.File
	format      format
	pad         bool
	workers     int
	showHelp    bool
	showVersion bool
	logParams   logging.Parameters
}

func newConfig(fs afero.Fs, stdout io.Writer) *config {
	return &config{fs: fs, out: stdout}
}

func (c *config) parse(flags *flag.FlagSet, args []string) error {
	var (
		in, out, formatName string
	)
	flags.StringVarP(&in, "in", "i", "",
		"Read the hex string from the file instead of the command line arguments.")
	flags.StringVarP(&out, "out", "o", "",
		"Write results to the file. If empty, writes to STDOUT.")
	flags.StringVarP(&formatName, "format", "f", formatBase64.String(),
		"Output format of the decoded bytes. Values: base64, base58, hex.")
	flags.BoolVarP(&c.pad, "pad", "p", false,
		"Pad the final Base64 group with '=' instead of requiring a byte count divisible by 3.")
	flags.IntVarP(&c.workers, "workers", "w", 0,
		"Encode Base64 blocks concurrently with the given number of workers. 0 encodes sequentially.")
	flags.BoolVarP(&c.showHelp, "help", "h", false, "Print usage information (this message) and quit")
	flags.BoolVarP(&c.showVersion, "version", "v", false, "Print version information and quit")
	c.logParams.Initialize(flags)

	if err := flags.Parse(args); err != nil {
		return err
	}
	if c.showHelp || c.showVersion {
		return nil
	}
	if err := c.logParams.Parse(); err != nil {
		return err
	}
	f, err := parseFormat(formatName)
	if err != nil {
		return err
	}
	c.format = f
	if c.workers < 0 {
		return fmt.Errorf("invalid number of workers %d", c.workers)
	}

	positional := flags.Args()
	switch {
	case in != "" && len(positional) > 0:
		return errors.New("hex arguments and --in are mutually exclusive")
	case in != "":
		if inErr := c.setInput(in); inErr != nil {
			return inErr
		}
	case len(positional) == 0:
		return errors.New("no hex input provided")
	default:
		c.inputs = positional
	}
	return c.setOutput(out)
}

func (c *config) setInput(str string) error {
	fi, err := c.fs.Stat(str)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file %q does not exist", str)
	}
	if err != nil {
		return fmt.Errorf("invalid file path: %w", err)
	}
	if fi.IsDir() {
		return fmt.Errorf("path %q is not a file", str)
	}
	data, err := afero.ReadFile(c.fs, path.Clean(str))
	if err != nil {
		return fmt.Errorf("failed to read input file %q: %w", str, err)
	}
	c.inputs = []string{strings.TrimSpace(string(data))}
	return nil
}

func (c *config) setOutput(str string) error {
	if len(str) == 0 {
		return nil
	}
	fi, err := c.fs.Stat(str)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("invalid file path: %w", err)
	}
	if err == nil && fi.IsDir() {
		return fmt.Errorf("path %q is not a file", str)
	}
	f, err := c.fs.Create(path.Clean(str))
	if err != nil {
		return fmt.Errorf("failed to open output file %q: %w", str, err)
	}
	c.outFile = f
	c.out = f
	return nil
}

func (c *config) close() error {
	if c.outFile != nil {
		if err := c.outFile.Close(); err != nil {
			return fmt.Errorf("failed to close output: %w", err)
		}
	}
	return nil
}
