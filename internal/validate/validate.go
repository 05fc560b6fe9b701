// Package validate implements the plausibility heuristic (spec.md §4.8)
// that decides whether a decode outcome looks like a genuine decompression
// rather than noise.
package validate

import (
	"bytes"
	"fmt"

	"github.com/waxmaker/binprobe/internal/entropy"
)

// Result reports whether decompressed data D plausibly corresponds to an
// input of size originalSize, along with a short human-readable reason.
func Result(d []byte, originalSize int) (ok bool, msg string) {
	if len(d) == 0 {
		return false, "Empty output"
	}

	ratio := 0.0
	if originalSize > 0 {
		ratio = float64(len(d)) / float64(originalSize)
	}

	if ratio > 100 {
		return false, fmt.Sprintf("Suspicious expansion ratio: %.1fx", ratio)
	}
	if ratio < 0.5 {
		return false, fmt.Sprintf("Suspicious compression ratio: %.2fx", ratio)
	}

	h := entropy.Of(d)
	if h < 1.0 {
		return false, fmt.Sprintf("Entropy too low: %.2f", h)
	}

	nullCount := bytes.Count(d, []byte{0x00})
	nullRatio := float64(nullCount) / float64(len(d))
	if nullRatio > 0.95 {
		return false, fmt.Sprintf("Too many null bytes: %.1f%%", nullRatio*100)
	}

	return true, "Validation passed"
}
