package score_test

import (
	"testing"

	"github.com/waxmaker/binprobe/internal/score"
)

func TestConfidenceAllFactorsHit(t *testing.T) {
	got := score.Confidence(3.0, 7.9, 5.0, true, 5000)
	if got != 1.0 {
		t.Errorf("expected max confidence 1.0, got %v", got)
	}
}

func TestConfidenceNoFactorsHit(t *testing.T) {
	got := score.Confidence(0.1, 1.0, 1.0, false, 1)
	if got != 0 {
		t.Errorf("expected 0 confidence, got %v", got)
	}
}

func TestConfidenceRatioBands(t *testing.T) {
	strong := score.Confidence(2.0, 0, 0, false, 0)
	weak := score.Confidence(13.0, 0, 0, false, 0)
	if strong <= weak {
		t.Errorf("expected ratio 2.0 (strong band) to outscore 13.0 (weak band): strong=%v weak=%v", strong, weak)
	}
}

func TestConfidenceClampedToOne(t *testing.T) {
	got := score.Confidence(5, 8, 0, true, 5000)
	if got > 1.0 {
		t.Errorf("expected confidence clamped to 1.0, got %v", got)
	}
}
