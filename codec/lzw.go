package codec

import "fmt"

// DecodeLZW decodes the fixed-8-bit-code LZW variant used by this tool: the
// codebook starts with the 256 single-byte entries and grows by one entry
// per emitted phrase, but codes are always read as single input bytes (see
// spec.md §9 — this limits the effective codebook to 256 entries, unlike a
// conventional LZW that widens code width as the dictionary grows).
func DecodeLZW(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dict := make([][]byte, 256, 512)
	for i := range dict {
		dict[i] = []byte{byte(i)}
	}
	dictSize := 256

	w := dict[data[0]]
	var result []byte
	result = append(result, w...)

	for _, k := range data[1:] {
		code := int(k)
		var entry []byte
		switch {
		case code < len(dict):
			entry = dict[code]
		case code == dictSize:
			entry = append(append([]byte{}, w...), w[0])
		default:
			return nil, fmt.Errorf("codec: invalid lzw code %d", code)
		}

		result = append(result, entry...)

		newEntry := append(append([]byte{}, w...), entry[0])
		dict = append(dict, newEntry)
		dictSize++

		w = entry
	}

	return result, nil
}
