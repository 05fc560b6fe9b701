package codec

// DecodeLZ77 decodes the flagged LZ77 format: a stream of frames, each
// starting with a flag byte followed by up to 8 tokens. Flag bit i (from
// the MSB) selects a literal (bit set: copy the next input byte verbatim)
// or a back-reference (bit clear: read offset-hi, offset-lo, length and
// copy length bytes from output-length-minus-offset). An invalid reference
// (offset 0, or offset greater than the current output length) ends the
// current frame rather than erroring — a soft stop, not a decoder failure;
// the next input byte is then read as a new frame's flag byte.
func DecodeLZ77(data []byte) []byte {
	var out []byte
	pos := 0

	for pos < len(data) {
		flag := data[pos]
		pos++

		for i := 0; i < 8; i++ {
			if pos >= len(data) {
				break
			}

			if (flag>>(7-i))&1 == 1 {
				out = append(out, data[pos])
				pos++
				continue
			}

			if pos+2 >= len(data) {
				break
			}
			offset := int(data[pos])<<8 | int(data[pos+1])
			length := int(data[pos+2])
			pos += 3

			if offset == 0 || offset > len(out) {
				break
			}

			start := len(out) - offset
			for j := 0; j < length; j++ {
				if start < len(out) {
					out = append(out, out[start])
					start++
				} else {
					break
				}
			}
		}
	}

	return out
}
