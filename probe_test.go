package binprobe_test

import (
	"bytes"
	"compress/zlib"
	"testing"

	binprobe "github.com/waxmaker/binprobe"
)

func TestDecodeUnknownTagErrors(t *testing.T) {
	if _, err := binprobe.Decode("not_a_real_codec", []byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for unregistered tag")
	}
}

func TestDecodeRunsSingleCodec(t *testing.T) {
	out, err := binprobe.Decode("delta", []byte{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Method != "delta" {
		t.Errorf("method = %q, want %q", out.Method, "delta")
	}
	if !out.Success {
		t.Errorf("expected delta to succeed on arbitrary input, got error %q", out.Error)
	}
}

func TestProbeReportsEveryRegisteredCodec(t *testing.T) {
	report, err := binprobe.Probe([]byte{0x42, 0x00, 0x01, 0x02, 0x03}, binprobe.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalTests == 0 {
		t.Fatal("expected at least one registered codec")
	}
	if report.TotalTests != len(report.Results) {
		t.Errorf("TotalTests=%d but len(Results)=%d", report.TotalTests, len(report.Results))
	}
	if report.SuccessCount+report.FailedCount != report.TotalTests {
		t.Errorf("success+failed (%d+%d) != total (%d)", report.SuccessCount, report.FailedCount, report.TotalTests)
	}
}

func TestProbePicksZlibAsBestCandidateForZlibPayload(t *testing.T) {
	original := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 200)

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write(original)
	w.Close()

	report, err := binprobe.Probe(buf.Bytes(), binprobe.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.BestMethod != "zlib" {
		t.Errorf("BestMethod = %q, want %q", report.BestMethod, "zlib")
	}
	if report.BestConfidence <= 0 {
		t.Errorf("expected positive confidence for a clean zlib round trip, got %v", report.BestConfidence)
	}
}

func TestProbeRegistryOrderIsStable(t *testing.T) {
	r1, _ := binprobe.Probe([]byte{1, 2, 3, 4, 5}, binprobe.Options{})
	r2, _ := binprobe.Probe([]byte{1, 2, 3, 4, 5}, binprobe.Options{})
	if len(r1.Results) != len(r2.Results) {
		t.Fatalf("result counts differ between runs: %d vs %d", len(r1.Results), len(r2.Results))
	}
	for i := range r1.Results {
		if r1.Results[i].Method != r2.Results[i].Method {
			t.Errorf("position %d: method %q in run 1 vs %q in run 2", i, r1.Results[i].Method, r2.Results[i].Method)
		}
	}
}
