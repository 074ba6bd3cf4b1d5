package decorator

import (
	"bytes"
	"context"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/kbukum/patternkit/errors"
)

// CompressionDecorator gzips data before handing it to the wrapped source
// and gunzips it on the way back.
type CompressionDecorator struct {
	wrapped DataSource
	level   int
}

// CompressionOption configures the decorator.
type CompressionOption func(*CompressionDecorator)

// WithLevel selects the gzip compression level (default: gzip.DefaultCompression).
func WithLevel(level int) CompressionOption {
	return func(d *CompressionDecorator) { d.level = level }
}

// NewCompression wraps source with gzip compression.
func NewCompression(source DataSource, opts ...CompressionOption) *CompressionDecorator {
	d := &CompressionDecorator{wrapped: source, level: gzip.DefaultCompression}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *CompressionDecorator) Write(ctx context.Context, data []byte) error {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, d.level)
	if err != nil {
		return errors.InvalidInput("level", err.Error())
	}
	if _, err := zw.Write(data); err != nil {
		return errors.IO("compress", err)
	}
	if err := zw.Close(); err != nil {
		return errors.IO("compress", err)
	}
	return d.wrapped.Write(ctx, buf.Bytes())
}

func (d *CompressionDecorator) Read(ctx context.Context) ([]byte, error) {
	compressed, err := d.wrapped.Read(ctx)
	if err != nil {
		return nil, err
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.IO("decompress", err)
	}
	defer zr.Close()

	plain, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.IO("decompress", err)
	}
	return plain, nil
}
