package detect

import (
	"reflect"
	"testing"
)

func cand(page int, x, y, score float64, reason string) Candidate {
	return Candidate{Page: page, X: x, Y: y, Width: 120, Height: 45, Score: score, Reason: reason}
}

func TestDeduplicate_KeepsHighestScore(t *testing.T) {
	in := []Candidate{
		cand(0, 100, 100, 0.5, "low"),
		cand(0, 110, 105, 0.9, "high"),
	}

	out := Deduplicate(in, DefaultDedupThreshold)
	if len(out) != 1 {
		t.Fatalf("got %d candidates, want 1", len(out))
	}
	if out[0].Reason != "high" {
		t.Errorf("kept %q, want the higher-scoring candidate", out[0].Reason)
	}
}

func TestDeduplicate_DifferentPagesNeverMerge(t *testing.T) {
	in := []Candidate{
		cand(0, 100, 100, 0.9, "p0"),
		cand(1, 100, 100, 0.5, "p1"),
	}

	out := Deduplicate(in, DefaultDedupThreshold)
	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2", len(out))
	}
}

func TestDeduplicate_ThresholdBoundary(t *testing.T) {
	const eps = 0.001

	// Just past the threshold on X: both kept.
	in := []Candidate{
		cand(0, 100, 100, 0.9, "a"),
		cand(0, 100+DefaultDedupThreshold+eps, 100, 0.5, "b"),
	}
	if out := Deduplicate(in, DefaultDedupThreshold); len(out) != 2 {
		t.Errorf("threshold+eps apart in X: got %d candidates, want 2", len(out))
	}

	// Just inside the threshold on both axes: lower score dropped.
	in = []Candidate{
		cand(0, 100, 100, 0.9, "a"),
		cand(0, 100+DefaultDedupThreshold-eps, 100+DefaultDedupThreshold-eps, 0.5, "b"),
	}
	if out := Deduplicate(in, DefaultDedupThreshold); len(out) != 1 {
		t.Errorf("threshold-eps apart: got %d candidates, want 1", len(out))
	}

	// Close in X but far in Y: proximity must hold on both axes to merge.
	in = []Candidate{
		cand(0, 100, 100, 0.9, "a"),
		cand(0, 105, 100+DefaultDedupThreshold+eps, 0.5, "b"),
	}
	if out := Deduplicate(in, DefaultDedupThreshold); len(out) != 2 {
		t.Errorf("far apart in Y only: got %d candidates, want 2", len(out))
	}
}

func TestDeduplicate_OrderedByScore(t *testing.T) {
	in := []Candidate{
		cand(0, 100, 100, 0.45, "line"),
		cand(1, 300, 300, 0.92, "ocr"),
		cand(0, 400, 400, 0.60, "ocr2"),
	}

	out := Deduplicate(in, DefaultDedupThreshold)
	for i := 1; i < len(out); i++ {
		if out[i].Score > out[i-1].Score {
			t.Fatalf("output not sorted by descending score: %v", out)
		}
	}
}

func TestDeduplicate_TiesPreserveInputOrder(t *testing.T) {
	in := []Candidate{
		cand(0, 100, 100, 0.5, "first"),
		cand(0, 300, 300, 0.5, "second"),
		cand(0, 500, 500, 0.5, "third"),
	}

	out := Deduplicate(in, DefaultDedupThreshold)
	if len(out) != 3 {
		t.Fatalf("got %d candidates, want 3", len(out))
	}
	for i, want := range []string{"first", "second", "third"} {
		if out[i].Reason != want {
			t.Errorf("position %d: got %q, want %q", i, out[i].Reason, want)
		}
	}
}

func TestDeduplicate_Idempotent(t *testing.T) {
	in := []Candidate{
		cand(0, 100, 100, 0.9, "a"),
		cand(0, 110, 110, 0.7, "b"),
		cand(0, 400, 100, 0.6, "c"),
		cand(1, 100, 100, 0.45, "d"),
		cand(1, 115, 95, 0.45, "e"),
	}

	once := Deduplicate(in, DefaultDedupThreshold)
	twice := Deduplicate(once, DefaultDedupThreshold)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestDeduplicate_Empty(t *testing.T) {
	if out := Deduplicate(nil, DefaultDedupThreshold); len(out) != 0 {
		t.Errorf("got %d candidates from nil input, want 0", len(out))
	}
}
