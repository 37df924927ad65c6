package main

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/wavesplatform/bytecodec/pkg/codec"
	"github.com/wavesplatform/bytecodec/pkg/errs"
)

// Known answer checked on every run that converts exactly this input.
const (
	referenceHex    = "49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d"
	referenceBase64 = "SSdtIGtpbGxpbmcgeW91ciBicmFpbiBsaWtlIGEgcG9pc29ub3VzIG11c2hyb29t"
)

var errSelfCheck = errors.New("self-check failed")

type converter struct {
	log     *zap.SugaredLogger
	format  format
	pad     bool
	workers int
}

func (c *converter) convert(ctx context.Context, hexStr string) (string, error) {
	bs, err := codec.FromHex(hexStr)
	if err != nil {
		return "", errs.Extend(err, "failed to decode input")
	}
	c.log.Debugf("Decoded %d bytes", bs.Len())

	var res string
	switch c.format {
	case formatBase64:
		res, err = c.toBase64(ctx, bs)
		if err != nil {
			return "", errs.Extend(err, "failed to encode Base64")
		}
		if err := selfCheck(hexStr, res); err != nil {
			return "", err
		}
	case formatBase58:
		res = bs.ToBase58()
	case formatHex:
		res = bs.ToHex()
	default:
		return "", errors.Errorf("unsupported output format %s", c.format)
	}
	return res, nil
}

func (c *converter) toBase64(ctx context.Context, bs codec.ByteString) (string, error) {
	if c.workers > 0 {
		c.log.Debugf("Encoding with %d workers", c.workers)
		return codec.EncodeBase64(ctx, bs, codec.EncoderOptions{Workers: c.workers, Padded: c.pad})
	}
	if c.pad {
		return bs.ToBase64Padded(), nil
	}
	return bs.ToBase64()
}

// selfCheck fails if the reference input did not produce the reference output.
func selfCheck(hexStr, result string) error {
	if hexStr != referenceHex || result == referenceBase64 {
		return nil
	}
	return errors.Wrapf(errSelfCheck, "expected %q, got %q", referenceBase64, result)
}
