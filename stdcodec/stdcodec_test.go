package stdcodec_test

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/golang/snappy"
	"github.com/waxmaker/binprobe/stdcodec"
)

var payload = bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 50)

func TestZlibRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write(payload)
	w.Close()

	got, err := stdcodec.Zlib(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("round trip mismatch")
	}
}

func TestZlibInvalidInput(t *testing.T) {
	if _, err := stdcodec.Zlib([]byte{0x00, 0x01, 0x02}); err == nil {
		t.Error("expected error for non-zlib input")
	}
}

func TestGzipRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	w.Write(payload)
	w.Close()

	got, err := stdcodec.Gzip(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("round trip mismatch")
	}
}

func TestDeflateRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, _ := flate.NewWriter(&buf, flate.DefaultCompression)
	w.Write(payload)
	w.Close()

	got, err := stdcodec.Deflate(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("round trip mismatch")
	}
}

func TestBzip2InvalidInput(t *testing.T) {
	if _, err := stdcodec.Bzip2([]byte{0x00, 0x01, 0x02, 0x03}); err == nil {
		t.Error("expected error for non-bzip2 input")
	}
}

func TestLZMAInvalidInput(t *testing.T) {
	if _, err := stdcodec.LZMA([]byte{0x00, 0x01, 0x02, 0x03}); err == nil {
		t.Error("expected error for non-xz input")
	}
}

func TestZstdInvalidInput(t *testing.T) {
	if _, err := stdcodec.Zstd([]byte{0x00, 0x01, 0x02, 0x03}); err == nil {
		t.Error("expected error for non-zstd input")
	}
}

func TestLZ4InvalidInput(t *testing.T) {
	if _, err := stdcodec.LZ4([]byte{0x00, 0x01, 0x02, 0x03}); err == nil {
		t.Error("expected error for non-lz4 input")
	}
}

func TestBrotliInvalidInput(t *testing.T) {
	if _, err := stdcodec.Brotli([]byte{0xFF, 0xFF, 0xFF, 0xFF}); err == nil {
		t.Error("expected error for garbage brotli input")
	}
}

func TestSnappyRoundTrip(t *testing.T) {
	encoded := snappy.Encode(nil, payload)

	got, err := stdcodec.Snappy(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("round trip mismatch")
	}
}

func TestSnappyInvalidInput(t *testing.T) {
	if _, err := stdcodec.Snappy([]byte{0xFF, 0xFF, 0xFF}); err == nil {
		t.Error("expected error for corrupt snappy input")
	}
}
