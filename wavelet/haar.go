// Package wavelet implements the 2D inverse Haar wavelet reconstructor used
// to recover coefficient grids (typically ECG lead data) from a compact
// wavelet-coded representation. The reconstruction is intentionally lossy;
// exact invertibility is not a goal (spec.md §4.6).
package wavelet

import (
	"encoding/binary"
	"fmt"
	"math"
)

// DataType identifies how coefficients (and the reconstructed output) are
// encoded on the wire.
type DataType uint8

// Supported coefficient data types.
const (
	TypeUint8   DataType = 1
	TypeInt16LE DataType = 2
	TypeFloat32 DataType = 4
)

// Decode parses the 6-byte header (height, width u16-LE; levels u8; data
// type u8) followed by height*width coefficients of the given data type,
// runs levels passes of the inverse 2D Haar transform, and serializes the
// reconstructed grid back to bytes in the same data type.
func Decode(data []byte) ([]byte, error) {
	if len(data) < 6 {
		return nil, fmt.Errorf("wavelet: header too short")
	}

	height := int(binary.LittleEndian.Uint16(data[0:2]))
	width := int(binary.LittleEndian.Uint16(data[2:4]))
	levels := int(data[4])
	dataType := DataType(data[5])

	if height <= 0 || width <= 0 || levels < 1 || levels > 5 {
		return nil, fmt.Errorf("wavelet: invalid parameters (height=%d width=%d levels=%d)", height, width, levels)
	}

	coeffs, err := parseCoefficients(data[6:], height, width, dataType)
	if err != nil {
		return nil, err
	}

	reconstructed := inverseHaar2D(coeffs, levels)

	return flatten(reconstructed, dataType)
}

func parseCoefficients(data []byte, height, width int, dataType DataType) ([][]float64, error) {
	size := height * width

	var flat []float64
	switch dataType {
	case TypeUint8:
		if len(data) < size {
			return nil, fmt.Errorf("wavelet: insufficient data for uint8 coefficients")
		}
		flat = make([]float64, size)
		for i := 0; i < size; i++ {
			flat[i] = float64(data[i])
		}
	case TypeInt16LE:
		if len(data) < size*2 {
			return nil, fmt.Errorf("wavelet: insufficient data for int16 coefficients")
		}
		flat = make([]float64, size)
		for i := 0; i < size; i++ {
			v := int16(binary.LittleEndian.Uint16(data[i*2 : i*2+2]))
			flat[i] = float64(v)
		}
	case TypeFloat32:
		if len(data) < size*4 {
			return nil, fmt.Errorf("wavelet: insufficient data for float32 coefficients")
		}
		flat = make([]float64, size)
		for i := 0; i < size; i++ {
			bits := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
			flat[i] = float64(math.Float32frombits(bits))
		}
	default:
		return nil, fmt.Errorf("wavelet: unsupported data type %d", dataType)
	}

	grid := make([][]float64, height)
	for i := 0; i < height; i++ {
		grid[i] = flat[i*width : (i+1)*width]
	}
	return grid, nil
}

// inverseHaar2D performs `levels` passes of the inverse Haar transform over
// a 2D coefficient grid. Per spec.md §4.6, level ell uses step = 2^ell; for
// each pair of positions (j, j+step/2) in a row, approximation a and detail
// d reconstruct as a' = floor((a+d)/sqrt2), d' = floor((a-d)/sqrt2); the
// same pairwise reconstruction is then applied along columns. Out-of-range
// indices are skipped. This ordering (coarsest level first) matches the
// source tool's iteration and is documented, not "corrected" — see
// spec.md §9.
func inverseHaar2D(coeffs [][]float64, levels int) [][]float64 {
	size := len(coeffs)
	result := make([][]float64, size)
	for i := range coeffs {
		result[i] = append([]float64(nil), coeffs[i]...)
	}

	const invSqrt2 = 1 / math.Sqrt2

	for level := 0; level < levels; level++ {
		step := 1 << uint(level)

		// Rows.
		for i := 0; i < size; i += step {
			for j := 0; j < size; j += step {
				half := step / 2
				if j+half >= size || i >= len(result) || j >= len(result[i]) || j+half >= len(result[i]) {
					continue
				}
				a := result[i][j]
				d := result[i][j+half]
				result[i][j] = math.Floor((a + d) * invSqrt2)
				if j+half < len(result[i]) {
					result[i][j+half] = math.Floor((a - d) * invSqrt2)
				}
			}
		}

		// Columns.
		for j := 0; j < size; j += step {
			for i := 0; i < size; i += step {
				half := step / 2
				if i+half >= size || i >= len(result) || i+half >= len(result) || j >= len(result[i]) || j >= len(result[i+half]) {
					continue
				}
				a := result[i][j]
				d := result[i+half][j]
				result[i][j] = math.Floor((a + d) * invSqrt2)
				result[i+half][j] = math.Floor((a - d) * invSqrt2)
			}
		}
	}

	return result
}

func flatten(grid [][]float64, dataType DataType) ([]byte, error) {
	var flat []float64
	for _, row := range grid {
		flat = append(flat, row...)
	}

	switch dataType {
	case TypeUint8:
		out := make([]byte, len(flat))
		for i, v := range flat {
			out[i] = clampUint8(v)
		}
		return out, nil
	case TypeInt16LE:
		out := make([]byte, len(flat)*2)
		for i, v := range flat {
			s := clampInt16(v)
			binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
		}
		return out, nil
	case TypeFloat32:
		out := make([]byte, len(flat)*4)
		for i, v := range flat {
			binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(float32(v)))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("wavelet: unsupported data type %d", dataType)
	}
}

func clampUint8(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

func clampInt16(v float64) int16 {
	if v < -32768 {
		return -32768
	}
	if v > 32767 {
		return 32767
	}
	return int16(v)
}
