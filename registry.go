package binprobe

import (
	"fmt"

	"github.com/waxmaker/binprobe/codec"
	"github.com/waxmaker/binprobe/ecg"
	"github.com/waxmaker/binprobe/huffman"
	"github.com/waxmaker/binprobe/stdcodec"
	"github.com/waxmaker/binprobe/wavelet"
)

// init wires every codec package into the registry, in the order the
// source tool's get_algorithms() appends them: standard (library-backed)
// codecs first, then the simple byte-level transforms, then the
// variable-length/entropy codecs, then Huffman, then the structured
// (wavelet, ECG) reconstructors. Report order mirrors this registration
// order exactly (spec.md §5).
func init() {
	Register("zlib", stdcodec.Zlib)
	Register("gzip", stdcodec.Gzip)
	Register("bzip2", stdcodec.Bzip2)
	Register("deflate", stdcodec.Deflate)
	Register("lzma", stdcodec.LZMA)
	Register("zstd", stdcodec.Zstd)
	Register("lz4", stdcodec.LZ4)
	Register("brotli", stdcodec.Brotli)
	Register("snappy", stdcodec.Snappy)

	Register("rle", codec.DecodeRLE)
	Register("delta", func(blob []byte) ([]byte, error) {
		return codec.DecodeDelta(blob), nil
	})
	Register("delta_signed", func(blob []byte) ([]byte, error) {
		return codec.DecodeDeltaSigned(blob), nil
	})
	Register("delta_nibble_signed", func(blob []byte) ([]byte, error) {
		return codec.DecodeNibbleSigned(blob), nil
	})
	Register("lzw", codec.DecodeLZW)
	Register("vlq", func(blob []byte) ([]byte, error) {
		return codec.DecodeVLQ(blob), nil
	})
	Register("rice", func(blob []byte) ([]byte, error) {
		return codec.DecodeRice(blob, codec.DefaultRiceParameter), nil
	})
	Register("dpcm_previous", func(blob []byte) ([]byte, error) {
		return codec.DecodeDPCM(blob, codec.PredPrevious)
	})
	Register("dpcm_average", func(blob []byte) ([]byte, error) {
		return codec.DecodeDPCM(blob, codec.PredAverage)
	})
	Register("dpcm_linear", func(blob []byte) ([]byte, error) {
		return codec.DecodeDPCM(blob, codec.PredLinear)
	})
	Register("lz77", func(blob []byte) ([]byte, error) {
		return codec.DecodeLZ77(blob), nil
	})

	Register("huffman_standard", huffman.DecodeStandard)
	Register("huffman_canonical", huffman.DecodeCanonical)
	Register("huffman_simple", huffman.DecodeSimple)
	Register("huffman", decodeHuffmanAuto)

	Register("wavelet_haar", wavelet.Decode)

	Register("ecg_leads", ecg.Decode)
}

// decodeHuffmanAuto tries the three Huffman sub-formats in turn and reports
// the first one that produces a non-empty result as its own outcome,
// mirroring the original tool's combined "huffman" auto-detector.
func decodeHuffmanAuto(blob []byte) ([]byte, error) {
	for _, fn := range []func([]byte) ([]byte, error){huffman.DecodeStandard, huffman.DecodeCanonical, huffman.DecodeSimple} {
		out, err := fn(blob)
		if err == nil && len(out) > 0 {
			return out, nil
		}
	}
	return nil, fmt.Errorf("binprobe: no huffman sub-format produced output")
}
