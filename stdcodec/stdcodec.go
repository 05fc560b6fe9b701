// Package stdcodec adapts the platform- and ecosystem-provided general
// purpose compressors (zlib, gzip, bzip2, raw deflate, xz/lzma, zstd, lz4,
// brotli, snappy) to the registry's decode-function shape (spec.md §4.11).
// Every adapter reads its library's full output via io.ReadAll and wraps
// library errors with a stack trace, since a malformed or merely
// non-matching blob is an expected, routine failure for most of these
// codecs on any given probe.
package stdcodec

import (
	"bytes"
	"compress/bzip2"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
	"github.com/therootcompany/xz"
)

// Zlib decodes a zlib-wrapped deflate stream.
func Zlib(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer r.Close()
	return readAll(r)
}

// Gzip decodes a gzip stream.
func Gzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer r.Close()
	return readAll(r)
}

// Bzip2 decodes a bzip2 stream. compress/bzip2 is decode-only, which is all
// this adapter needs.
func Bzip2(data []byte) ([]byte, error) {
	return readAll(bzip2.NewReader(bytes.NewReader(data)))
}

// Deflate decodes a raw (headerless) deflate stream.
func Deflate(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	return readAll(r)
}

// LZMA decodes an xz container. The pack carries no raw-LZMA1 decoder; xz's
// LZMA2-based container is the closest ecosystem match and is registered
// under the "lzma" tag (see SPEC_FULL.md §2.2).
func LZMA(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data), xz.DefaultDictMax)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return readAll(r)
}

// Zstd decodes a zstandard frame.
func Zstd(data []byte) ([]byte, error) {
	r, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer r.Close()
	return readAll(r)
}

// LZ4 decodes an LZ4 frame.
func LZ4(data []byte) ([]byte, error) {
	return readAll(lz4.NewReader(bytes.NewReader(data)))
}

// Brotli decodes a brotli stream.
func Brotli(data []byte) ([]byte, error) {
	return readAll(brotli.NewReader(bytes.NewReader(data)))
}

// Snappy decodes a snappy block (as opposed to the streaming framed
// format), matching the source tool's use of the simple one-shot API.
func Snappy(data []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}

func readAll(r io.Reader) ([]byte, error) {
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}
