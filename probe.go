/*
Links:
	https://en.wikipedia.org/wiki/Canonical_Huffman_code
	https://en.wikipedia.org/wiki/Golomb_coding
	https://en.wikipedia.org/wiki/Haar_wavelet
	https://en.wikipedia.org/wiki/Electrocardiography
*/

// Package binprobe implements a compression-detection and
// decompression-probing engine for opaque binary payloads. Given a blob, it
// attempts every registered codec, scores each outcome by plausibility, and
// returns a ranked Report so an analyst can identify how a file was encoded
// and recover its content.
package binprobe

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/waxmaker/binprobe/internal/entropy"
	"github.com/waxmaker/binprobe/internal/score"
	"github.com/waxmaker/binprobe/internal/validate"
)

// DecodeFunc attempts to decode a blob under one codec. A non-nil error
// means the codec does not apply to this blob (a routine, expected
// outcome, not a bug) and becomes a failed Outcome.
type DecodeFunc func(blob []byte) ([]byte, error)

// codecDescriptor is the registry's entry: a stable tag paired with its
// decode function. The registry is an ordered, read-only-after-init list of
// these, mirroring the source tool's list of (name, closure) tuples.
type codecDescriptor struct {
	tag  string
	fn   DecodeFunc
}

var (
	registryMu sync.Mutex
	registry   []codecDescriptor
)

// Register adds a codec to the process-wide registry. It is intended to be
// called from package init() functions, before any call to Probe; the
// registry is read-only for the remainder of the process's life.
func Register(tag string, fn DecodeFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, codecDescriptor{tag: tag, fn: fn})
}

// Outcome is the result of a single decode attempt.
type Outcome struct {
	Method            string  `json:"method"`
	Success           bool    `json:"success"`
	OriginalSize      int     `json:"original_size"`
	DecompressedSize  int     `json:"decompressed_size"`
	Ratio             float64 `json:"compression_ratio"`
	EntropyIn         float64 `json:"entropy_original"`
	EntropyOut        float64 `json:"entropy_decompressed"`
	ValidationOK      bool    `json:"checksum_valid"`
	ValidationMsg     string  `json:"validation_msg"`
	Confidence        float64 `json:"confidence"`
	Error             string  `json:"error,omitempty"`
	Payload           []byte  `json:"-"`
}

// Report is the full collection of outcomes for one input blob.
type Report struct {
	FilePath      string    `json:"file_path"`
	FileSize      int       `json:"file_size"`
	TotalTests    int       `json:"total_tests"`
	SuccessCount  int       `json:"success_count"`
	FailedCount   int       `json:"failed_count"`
	BestMethod    string    `json:"best_method"`
	BestRatio     float64   `json:"best_ratio"`
	BestConfidence float64  `json:"best_confidence"`
	Results       []Outcome `json:"results"`
}

// Options configures a Probe run.
type Options struct {
	// OutputDir, if non-empty, receives one file per successful outcome,
	// named "<stem>.<tag>.decompressed".
	OutputDir string
	// OriginalFilename overrides the stem used for persisted output names.
	OriginalFilename string
}

// Decode runs a single named codec against blob, returning a complete
// Outcome exactly as Probe would produce it for that one registry entry.
// It returns an error only if no codec is registered under tag.
func Decode(tag string, blob []byte) (Outcome, error) {
	registryMu.Lock()
	var fn DecodeFunc
	for _, d := range registry {
		if d.tag == tag {
			fn = d.fn
			break
		}
	}
	registryMu.Unlock()

	if fn == nil {
		return Outcome{}, fmt.Errorf("binprobe: no codec registered under tag %q", tag)
	}
	return runOne(tag, fn, blob), nil
}

// Probe attempts every registered codec against blob, in registry order,
// and returns the aggregated Report. Codecs run concurrently (spec.md §5):
// each operates on an immutable, read-only view of blob and produces an
// independent, owned output, so dispatch is safe to parallelize across a
// bounded worker pool while outcomes are collected into registry-ordered
// slots.
func Probe(blob []byte, opts Options) (*Report, error) {
	registryMu.Lock()
	codecs := make([]codecDescriptor, len(registry))
	copy(codecs, registry)
	registryMu.Unlock()

	outcomes := make([]Outcome, len(codecs))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(codecs) {
		workers = len(codecs)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = runOne(codecs[i].tag, codecs[i].fn, blob)
			}
		}()
	}
	for i := range codecs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if opts.OutputDir != "" {
		persistPayloads(outcomes, blob, opts)
	}

	report := &Report{
		FileSize:   len(blob),
		TotalTests: len(outcomes),
		Results:    outcomes,
	}

	bestIdx := -1
	for i, o := range outcomes {
		if o.Success {
			report.SuccessCount++
		} else {
			report.FailedCount++
		}
		if !o.Success || !o.ValidationOK {
			continue
		}
		if bestIdx == -1 || better(o, outcomes[bestIdx]) {
			bestIdx = i
		}
	}
	if bestIdx != -1 {
		best := outcomes[bestIdx]
		report.BestMethod = best.Method
		report.BestRatio = best.Ratio
		report.BestConfidence = best.Confidence
	}

	return report, nil
}

// better reports whether a should replace b as the best candidate: the
// lexicographic max of (confidence, ratio); registry order (the iteration
// order Probe already uses) breaks ties in favor of the earlier entry,
// since strictly-greater is required to displace the incumbent.
func better(a, b Outcome) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	return a.Ratio > b.Ratio
}

// runOne executes a single codec against blob, converting any failure
// (including a recovered panic, the Go equivalent of the source tool's
// catch-all exception guard) into a failed Outcome. The driver never
// aborts on a single codec's failure.
func runOne(tag string, fn DecodeFunc, blob []byte) (out Outcome) {
	originalSize := len(blob)
	entropyIn := entropy.Of(blob)

	out = Outcome{
		Method:       tag,
		OriginalSize: originalSize,
		EntropyIn:    entropyIn,
	}

	defer func() {
		if r := recover(); r != nil {
			out = Outcome{
				Method:       tag,
				Success:      false,
				OriginalSize: originalSize,
				EntropyIn:    entropyIn,
				Error:        fmt.Sprintf("panic: %v", r),
			}
		}
	}()

	decoded, err := fn(blob)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Success = true
	out.DecompressedSize = len(decoded)
	out.Payload = decoded
	if originalSize > 0 {
		out.Ratio = float64(len(decoded)) / float64(originalSize)
	}
	out.EntropyOut = entropy.Of(decoded)
	out.ValidationOK, out.ValidationMsg = validate.Result(decoded, originalSize)
	out.Confidence = score.Confidence(out.Ratio, out.EntropyIn, out.EntropyOut, out.ValidationOK, out.DecompressedSize)

	return out
}
