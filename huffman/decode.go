package huffman

import (
	"fmt"

	"github.com/waxmaker/binprobe/internal/bits"
)

// symbolMatch is the loop shared by all three Huffman variants: repeatedly
// peek the current bit position against every assigned code in the table;
// on the first match, consume those bits and emit the symbol; if no code in
// the table matches, decoding stops (the remaining bits, if any, are simply
// not decodable under this table).
func symbolMatch(r *bits.Reader, table Table) []byte {
	var out []byte
	for r.HasBits(1) {
		found := false
		for symbol, c := range table {
			if c.Length == 0 {
				continue
			}
			if !r.HasBits(c.Length) {
				continue
			}
			if uint32(r.PeekBits(c.Length)) == c.Value {
				r.ReadBits(c.Length)
				out = append(out, byte(symbol))
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return out
}

// DecodeStandard decodes the Standard Huffman format: byte 0 is the table
// size T (0 meaning min(256, len(data)-1)); bytes 1..T are the code-length
// vector, right-padded with zeros to 256; the remainder is the bitstream.
// Canonical codes are built from the length vector before decoding.
func DecodeStandard(data []byte) ([]byte, error) {
	if len(data) < 16 {
		return nil, fmt.Errorf("huffman: standard header too short")
	}

	tableSize := int(data[0])
	if tableSize == 0 {
		tableSize = minInt(256, len(data)-1)
	}
	// A table size claiming more bytes than remain is truncated to what's
	// actually available, matching the original's silent Python-slicing
	// behavior instead of rejecting the input outright.
	available := minInt(tableSize, len(data)-1)

	lengths := make([]int, 256)
	for i := 0; i < available && i < 256; i++ {
		lengths[i] = int(data[1+i])
	}

	table := BuildCanonical(lengths)
	r := bits.NewReader(data[1+available:])
	return symbolMatch(r, table), nil
}

// DecodeCanonical decodes the Canonical Huffman format. Per spec.md §4.5 the
// Canonical layout is identical to Standard; this is kept as a distinct,
// separately addressable entry point (and registry tag) because the source
// tool exposed it as a separate format, even though the bytes it parses are
// laid out the same way.
func DecodeCanonical(data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("huffman: canonical header too short")
	}

	symbolCount := int(data[0])
	if symbolCount == 0 {
		symbolCount = minInt(256, len(data)-1)
	}
	if symbolCount > 256 {
		symbolCount = 256
	}
	// As in DecodeStandard, a symbol count exceeding the remaining input is
	// truncated rather than rejected.
	available := minInt(symbolCount, len(data)-1)

	lengths := make([]int, 256)
	for i := 0; i < available; i++ {
		lengths[i] = int(data[1+i])
	}

	table := BuildCanonical(lengths)
	r := bits.NewReader(data[1+available:])
	return symbolMatch(r, table), nil
}

// DecodeSimple decodes the Simple Huffman format: a variable-length header
// listing, for each symbol 0..255 in order, a one-byte bit length (0 or
// >24 means "no code for this symbol") followed by ceil(length/8) bytes of
// big-endian code value. Unlike Standard/Canonical, the codes are used
// exactly as read — no canonicalization is applied.
func DecodeSimple(data []byte) ([]byte, error) {
	if len(data) < 512 {
		return nil, fmt.Errorf("huffman: simple header too short")
	}

	var table Table
	pos := 0
	any := false
	for symbol := 0; symbol < 256; symbol++ {
		if pos >= len(data) {
			break
		}
		length := int(data[pos])
		pos++

		if length == 0 || length > 24 {
			continue
		}

		byteCount := (length + 7) / 8
		if pos+byteCount > len(data) {
			break
		}

		var code uint32
		for i := 0; i < byteCount; i++ {
			code = (code << 8) | uint32(data[pos+i])
		}
		pos += byteCount

		table[symbol] = Code{Value: code, Length: length}
		any = true
	}

	if !any {
		return nil, fmt.Errorf("huffman: no valid simple codes found")
	}

	r := bits.NewReader(data[pos:])
	return symbolMatch(r, table), nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
