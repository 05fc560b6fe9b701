// Package ecg reconstructs a standard 12-lead ECG lead set from whatever
// subset of leads a payload happens to store. The derived limb leads
// (aVR, aVL, aVF) use the standard ECG identities; the derived precordial
// leads (V1-V6) are deterministic, non-physiological filler — see
// spec.md §4.7 and §9.
package ecg

import (
	"encoding/binary"
	"fmt"
)

// Order is the standard 12-lead ordering used for both parsing interleaved
// payloads and serializing the reconstructed set.
var Order = []string{"I", "II", "III", "aVR", "aVL", "aVF", "V1", "V2", "V3", "V4", "V5", "V6"}

// LeadSet maps lead name to its sample sequence. All present leads in a
// LeadSet have equal length.
type LeadSet map[string][]int16

// Decode tries the three layout hypotheses in order (3-lead packed, 8-lead
// packed, interleaved with L in {3,8,12}) and, on the first one whose size
// works out, derives the remaining leads and serializes all 12 in standard
// order as little-endian int16, clamped to the 16-bit signed range.
func Decode(data []byte) ([]byte, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("ecg: input too short for any lead layout")
	}

	if leads, ok := decodePacked(data, Order[:3]); ok {
		return serialize(deriveAll(leads)), nil
	}
	if leads, ok := decodePacked(data, Order[:8]); ok {
		return serialize(deriveAll(leads)), nil
	}
	for _, n := range []int{3, 8, 12} {
		if leads, ok := decodeInterleaved(data, Order[:n]); ok {
			return serialize(deriveAll(leads)), nil
		}
	}

	return nil, fmt.Errorf("ecg: no valid lead layout detected")
}

// decodePacked splits data into len(names) equal-length runs of
// little-endian int16 samples, one run per lead in names, in order.
func decodePacked(data []byte, names []string) (LeadSet, bool) {
	n := len(names)
	if len(data) < n*2 {
		return nil, false
	}
	samplesPerLead := len(data) / (n * 2)
	if samplesPerLead == 0 {
		return nil, false
	}

	leads := make(LeadSet, n)
	for i, name := range names {
		runStart := i * 2 * samplesPerLead
		samples := make([]int16, samplesPerLead)
		for j := 0; j < samplesPerLead; j++ {
			off := runStart + j*2
			if off+1 >= len(data) {
				break
			}
			samples[j] = int16(binary.LittleEndian.Uint16(data[off : off+2]))
		}
		leads[name] = samples
	}
	return leads, true
}

// decodeInterleaved splits data as [len(names) leads x N samples] where the
// lead index varies fastest per sample.
func decodeInterleaved(data []byte, names []string) (LeadSet, bool) {
	n := len(names)
	if len(data) < n*2 {
		return nil, false
	}
	samplesPerLead := len(data) / (n * 2)
	if samplesPerLead == 0 {
		return nil, false
	}

	leads := make(LeadSet, n)
	for i, name := range names {
		samples := make([]int16, samplesPerLead)
		for j := 0; j < samplesPerLead; j++ {
			off := j*n*2 + i*2
			if off+1 >= len(data) {
				break
			}
			samples[j] = int16(binary.LittleEndian.Uint16(data[off : off+2]))
		}
		leads[name] = samples
	}
	return leads, true
}

// deriveAll fills in every missing standard lead from whatever is present,
// using the ECG limb-lead identities for aVR/aVL/aVF and deterministic
// placeholder patterns for V1-V6 (never clinically meaningful).
func deriveAll(leads LeadSet) LeadSet {
	n := 0
	for _, samples := range leads {
		if len(samples) > n {
			n = len(samples)
		}
	}

	get := func(name string) []int16 {
		if s, ok := leads[name]; ok {
			return s
		}
		return make([]int16, n)
	}
	I, II := get("I"), get("II")

	clamp16 := func(v int) int16 {
		if v > 32767 {
			return 32767
		} else if v < -32768 {
			return -32768
		}
		return int16(v)
	}

	out := make(LeadSet, len(Order))
	for name, samples := range leads {
		out[name] = samples
	}

	if _, ok := out["aVR"]; !ok {
		aVR := make([]int16, n)
		for i := range aVR {
			aVR[i] = clamp16(ifloordiv(-(int(I[i]) + int(II[i])), 2))
		}
		out["aVR"] = aVR
	}
	if _, ok := out["aVL"]; !ok {
		aVL := make([]int16, n)
		for i := range aVL {
			aVL[i] = clamp16(int(I[i]) - ifloordiv(int(II[i]), 2))
		}
		out["aVL"] = aVL
	}
	if _, ok := out["aVF"]; !ok {
		aVF := make([]int16, n)
		for i := range aVF {
			aVF[i] = clamp16(int(II[i]) - ifloordiv(int(I[i]), 2))
		}
		out["aVF"] = aVF
	}

	precordialOffsets := map[string]func(i int) int{
		"V1": func(i int) int { return -(i % 8) * 2 },
		"V2": func(i int) int { return -(i % 6) * 1 },
		"V3": func(i int) int { return 0 },
		"V4": func(i int) int { return (i % 6) * 1 },
		"V5": func(i int) int { return (i % 8) * 2 },
		"V6": func(i int) int { return (i % 10) * 3 },
	}
	for _, name := range []string{"V1", "V2", "V3", "V4", "V5", "V6"} {
		if _, ok := out[name]; ok {
			continue
		}
		offset := precordialOffsets[name]
		v := make([]int16, n)
		for i := range v {
			v[i] = clamp16(ifloordiv(int(II[i]), 3) + offset(i))
		}
		out[name] = v
	}

	return out
}

// ifloordiv divides a by b and rounds toward negative infinity, matching
// Python's // operator used by the original derivation formulas (Go's /
// truncates toward zero instead, which disagrees with Python for negative
// numerators — e.g. -51/2 is -25 in Go but -26 in Python).
func ifloordiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// serialize writes all 12 leads in standard order, concatenated, as
// little-endian int16. Every sample is already within [-32768, 32767]:
// parsed leads are int16, and deriveAll clamps each derived sample to that
// range.
func serialize(leads LeadSet) []byte {
	var out []byte
	for _, name := range Order {
		samples := leads[name]
		for _, s := range samples {
			var buf [2]byte
			binary.LittleEndian.PutUint16(buf[:], uint16(s))
			out = append(out, buf[:]...)
		}
	}
	return out
}
