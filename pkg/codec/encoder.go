package codec

import (
	"context"
	"strings"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/sync/errgroup"

	"github.com/wavesplatform/bytecodec/pkg/errs"
)

// minChunkSize keeps chunks big enough for the goroutine to be worth it.
const minChunkSize = 3 * 1024

type EncoderOptions struct {
	// Workers bounds the number of chunks encoded at the same time. Values
	// below 2 encode sequentially.
	Workers int
	// Padded selects ToBase64Padded semantics instead of ToBase64.
	Padded bool
}

// EncodeBase64 produces the same output as ToBase64 or ToBase64Padded, but
// encodes block-aligned chunks of the input concurrently. Blocks do not
// depend on each other, so chunk outputs are simply joined in order.
func EncodeBase64(ctx context.Context, bs ByteString, opts EncoderOptions) (string, error) {
	if !opts.Padded && bs.Len()%base64BlockSize != 0 {
		return "", errs.NewNonMultipleOfThreeLength(bs.Len())
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	chunks := splitBlocks(bs.bytes, opts.Workers)
	if len(chunks) < 2 {
		if opts.Padded {
			return bs.ToBase64Padded(), nil
		}
		return bs.ToBase64()
	}
	out := make([]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			buf := bytebufferpool.Get()
			defer bytebufferpool.Put(buf)
			// only the last chunk can hold a partial block
			if i == len(chunks)-1 {
				encodePadded(buf, chunk)
			} else {
				encodeBlocks(buf, chunk)
			}
			out[i] = buf.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(out, ""), nil
}

// splitBlocks cuts bytes into at most workers chunks. Every chunk except the
// last one has a length divisible by 3.
func splitBlocks(bytes []Byte, workers int) [][]Byte {
	if workers < 2 || len(bytes) < 2*minChunkSize {
		return [][]Byte{bytes}
	}
	blocks := (len(bytes) + base64BlockSize - 1) / base64BlockSize
	size := (blocks + workers - 1) / workers * base64BlockSize
	if size < minChunkSize {
		size = minChunkSize
	}
	chunks := make([][]Byte, 0, workers)
	for start := 0; start < len(bytes); start += size {
		end := min(start+size, len(bytes))
		chunks = append(chunks, bytes[start:end])
	}
	return chunks
}
