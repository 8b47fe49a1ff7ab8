package ui

import (
	"strings"
	"testing"

	"shadowquest/internal/engine"
)

func TestProgressBar(t *testing.T) {
	if got := ProgressBar(0.5, 10); got != "[#####-----]" {
		t.Fatalf("ProgressBar(0.5,10)=%q", got)
	}
	if got := ProgressBar(2, 4); got != "[####]" {
		t.Fatalf("ProgressBar(2,4)=%q", got)
	}
	if got := ProgressBar(-1, 1); got != "[---]" {
		t.Fatalf("ProgressBar(-1,1)=%q", got)
	}
}

func TestTierLabelClampsIndex(t *testing.T) {
	if got := TierLabel(99); !strings.Contains(got, engine.Tiers[engine.MaxTierIndex].Name) {
		t.Fatalf("TierLabel(99)=%q, want last tier", got)
	}
	if got := TierLabel(-1); !strings.Contains(got, engine.Tiers[0].Name) {
		t.Fatalf("TierLabel(-1)=%q, want first tier", got)
	}
}
