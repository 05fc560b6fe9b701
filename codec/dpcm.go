package codec

import "fmt"

// DPCMPredictor selects the prediction method used to reconstruct a DPCM
// stream, mirroring the subframe prediction method dispatch (constant,
// fixed, LPC, verbatim) of a conventional audio codec's subframe header.
type DPCMPredictor int

// DPCM predictors.
const (
	PredPrevious DPCMPredictor = iota
	PredAverage
	PredLinear
)

// DecodeDPCM reconstructs a Differential Pulse Code Modulation stream. The
// first byte is the seed sample, emitted unchanged. Each subsequent byte is
// a delta combined with a per-predictor estimate of the next sample, then
// clamped to [0, 255]:
//
//	previous: p[i] = p[i-1] + d[i]
//	average:  p[i] = (p[i-1]+p[i-2])/2 + d[i]   (integer division; p[i-1] for i=1)
//	linear:   p[i] = 2*p[i-1] - p[i-2] + d[i]    (p[i-1] for i=1)
func DecodeDPCM(data []byte, predictor DPCMPredictor) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("codec: dpcm requires non-empty input")
	}

	out := make([]byte, len(data))
	out[0] = data[0]

	for i := 1; i < len(data); i++ {
		delta := int(data[i])

		var predicted int
		switch predictor {
		case PredPrevious:
			predicted = int(out[i-1])
		case PredAverage:
			if i >= 2 {
				predicted = (int(out[i-1]) + int(out[i-2])) / 2
			} else {
				predicted = int(out[i-1])
			}
		case PredLinear:
			if i >= 2 {
				predicted = 2*int(out[i-1]) - int(out[i-2])
			} else {
				predicted = int(out[i-1])
			}
		default:
			predicted = int(out[i-1])
		}

		current := predicted + delta
		if current < 0 {
			current = 0
		} else if current > 255 {
			current = 255
		}
		out[i] = byte(current)
	}

	return out, nil
}
