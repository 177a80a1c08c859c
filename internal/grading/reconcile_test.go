package grading

import (
	"testing"

	"readdash-service/internal/models"
)

func TestParseResultIndex(t *testing.T) {
	testCases := []struct {
		id     string
		want   int
		wantOK bool
	}{
		{"q-0", 0, true},
		{"q-12", 12, true},
		{"q--1", 0, false},
		{"q-", 0, false},
		{"q-abc", 0, false},
		{"question-1", 0, false},
		{"", 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			got, ok := ParseResultIndex(tc.id)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("ParseResultIndex(%q) = %d,%v; want %d,%v", tc.id, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestAnswerIndexResolvesStoredIDs(t *testing.T) {
	result := &models.Result{
		QuestionResults: []models.QuestionResult{
			{QuestionID: "q-0", UserAnswer: "a", IsCorrect: true},
			{QuestionID: "q-2", UserAnswer: "true", IsCorrect: false},
		},
	}
	idx := BuildAnswerIndex(result)

	if key := idx.ResolveJoinKey(0); key != "q-0" {
		t.Errorf("Expected stored id q-0, got %q", key)
	}
	if key := idx.ResolveJoinKey(2); key != "q-2" {
		t.Errorf("Expected stored id q-2, got %q", key)
	}
	// Position 1 has no stored id; the synthesized fallback is used.
	if key := idx.ResolveJoinKey(1); key != "q-1" {
		t.Errorf("Expected synthesized q-1, got %q", key)
	}

	if qr, ok := idx.Lookup(0); !ok || qr.UserAnswer != "a" {
		t.Errorf("Expected stored answer at position 0, got %+v ok=%v", qr, ok)
	}
	if _, ok := idx.Lookup(1); ok {
		t.Error("Expected miss at position 1")
	}
	if _, ok := idx.Lookup(5); ok {
		t.Error("Expected miss past the stored answers")
	}
}

func TestAnswerIndexUnparseableIDs(t *testing.T) {
	// Identifiers from older schema versions may not parse; they stay
	// reachable by exact id even though no position maps to them.
	result := &models.Result{
		QuestionResults: []models.QuestionResult{
			{QuestionID: "legacy-7", UserAnswer: "b"},
		},
	}
	idx := BuildAnswerIndex(result)
	if len(idx.IndexToID) != 0 {
		t.Errorf("Expected no positional entries, got %d", len(idx.IndexToID))
	}
	if qr, ok := idx.ByID["legacy-7"]; !ok || qr.UserAnswer != "b" {
		t.Error("Expected unparseable id reachable through ByID")
	}
}
