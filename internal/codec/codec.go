// Package codec provides lossless stream compression for the compress and
// decompress commands. Codecs are byte-stream transforms composed into
// read -> transform -> write pipelines by the caller.
package codec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Codec is a symmetric pair of stream transforms. Compress followed by
// Decompress reproduces the input byte-for-byte, including empty inputs.
type Codec interface {
	// Compress streams src through the transform into dst.
	Compress(dst io.Writer, src io.Reader) error

	// Decompress applies the inverse transform.
	Decompress(dst io.Writer, src io.Reader) error

	// Name returns the codec identifier used in configuration.
	Name() string
}

// ForName returns the codec registered under name.
func ForName(name string) (Codec, error) {
	switch name {
	case "gzip", "":
		return Gzip{}, nil
	case "zstd":
		return Zstd{}, nil
	default:
		return nil, fmt.Errorf("unknown compression codec %q", name)
	}
}

// Gzip implements Codec using klauspost's gzip.
type Gzip struct{}

func (Gzip) Name() string { return "gzip" }

func (Gzip) Compress(dst io.Writer, src io.Reader) error {
	w := gzip.NewWriter(dst)
	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return fmt.Errorf("gzip compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gzip flush: %w", err)
	}
	return nil
}

func (Gzip) Decompress(dst io.Writer, src io.Reader) error {
	r, err := gzip.NewReader(src)
	if err != nil {
		return fmt.Errorf("gzip open: %w", err)
	}
	defer r.Close()
	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("gzip decompress: %w", err)
	}
	return nil
}

// Zstd implements Codec using klauspost's zstd.
type Zstd struct{}

func (Zstd) Name() string { return "zstd" }

func (Zstd) Compress(dst io.Writer, src io.Reader) error {
	w, err := zstd.NewWriter(dst)
	if err != nil {
		return fmt.Errorf("zstd init: %w", err)
	}
	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return fmt.Errorf("zstd compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("zstd flush: %w", err)
	}
	return nil
}

func (Zstd) Decompress(dst io.Writer, src io.Reader) error {
	r, err := zstd.NewReader(src)
	if err != nil {
		return fmt.Errorf("zstd open: %w", err)
	}
	defer r.Close()
	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("zstd decompress: %w", err)
	}
	return nil
}
