package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wavesplatform/bytecodec/pkg/logging"
)

const (
	exitOK = iota
	exitUsage
	exitConversion
	exitSelfCheck
)

var version = "v0.0.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("hex2b64", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	usage := func() {
		_, _ = fmt.Fprintf(stderr, "Usage: hex2b64 [flags] <hex>...\n\n%s", flags.FlagUsages())
	}

	cfg := newConfig(fs, stdout)
	if err := cfg.parse(flags, args); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		usage()
		return exitUsage
	}
	if cfg.showHelp {
		usage()
		return exitOK
	}
	if cfg.showVersion {
		_, _ = fmt.Fprintf(stdout, "hex2b64 %s\n", version)
		return exitOK
	}

	logger := logging.NewLogger(cfg.logParams, stderr)
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()
	log.Debugf("Logging parameters: %s", &cfg.logParams)

	code := convertAll(ctx, log, cfg)
	if err := cfg.close(); err != nil {
		log.Errorf("Failed to finish: %v", err)
		if code == exitOK {
			code = exitConversion
		}
	}
	return code
}

func convertAll(ctx context.Context, log *zap.SugaredLogger, cfg *config) int {
	c := &converter{
		log:     log,
		format:  cfg.format,
		pad:     cfg.pad,
		workers: cfg.workers,
	}
	for i, in := range cfg.inputs {
		res, err := c.convert(ctx, in)
		if err != nil {
			log.Errorf("Failed to convert input %d: %v", i+1, err)
			if errors.Is(err, errSelfCheck) {
				return exitSelfCheck
			}
			return exitConversion
		}
		if _, err := fmt.Fprintf(cfg.out, "Result: %s\n", res); err != nil {
			log.Errorf("Failed to write result: %v", err)
			return exitConversion
		}
	}
	return exitOK
}
