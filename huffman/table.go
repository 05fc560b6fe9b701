// Package huffman implements canonical Huffman code generation and the
// three Huffman decoder variants (standard, canonical, simple) recognized
// by binprobe's codec registry.
package huffman

import "sort"

// Code is a single symbol's assigned bit pattern.
type Code struct {
	Value  uint32
	Length int
}

// Table maps symbol (0..255) to its assigned Code. Symbols with Length == 0
// have no assigned code.
type Table [256]Code

// BuildCanonical assigns canonical Huffman codes from a code-length vector.
// lengths must have 256 entries; lengths[i] == 0 means symbol i is absent.
//
// Canonical assignment (mandated): present symbols are sorted by
// (length, symbol) ascending. The running code starts at 0; each time the
// length advances from the previous symbol's length, the code is shifted
// left by the difference in lengths before codes continue to be assigned
// in increasing order. This produces a canonical, prefix-free table for any
// length vector with Kraft sum <= 1.
func BuildCanonical(lengths []int) Table {
	var table Table

	type entry struct {
		symbol int
		length int
	}
	var present []entry
	for symbol, length := range lengths {
		if length > 0 {
			present = append(present, entry{symbol: symbol, length: length})
		}
	}
	sort.Slice(present, func(i, j int) bool {
		if present[i].length != present[j].length {
			return present[i].length < present[j].length
		}
		return present[i].symbol < present[j].symbol
	})

	var code uint32
	prevLength := 0
	for _, e := range present {
		if prevLength != 0 && e.length != prevLength {
			code <<= uint(e.length - prevLength)
		}
		table[e.symbol] = Code{Value: code, Length: e.length}
		code++
		prevLength = e.length
	}

	return table
}
