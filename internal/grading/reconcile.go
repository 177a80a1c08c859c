package grading

import (
	"fmt"
	"strconv"
	"strings"

	"readdash-service/internal/models"
)

// Result-identifiers look like "q-3": a zero-based position among the quiz's
// question components at the time the answer was submitted. When the quiz is
// edited afterwards those positions can drift against the current question
// list, so the review join works from the maps built here instead of trusting
// positions blindly.

// ParseResultIndex extracts the integer index from a "q-<n>" identifier.
func ParseResultIndex(questionID string) (int, bool) {
	rest, ok := strings.CutPrefix(questionID, "q-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// AnswerIndex holds both directions of the identifier<->position mapping for
// one stored result.
type AnswerIndex struct {
	IndexToID map[int]string
	IDToIndex map[string]int
	ByID      map[string]models.QuestionResult
}

// BuildAnswerIndex indexes a result's question answers by their parsed
// positions. Identifiers that do not parse are still reachable through ByID.
func BuildAnswerIndex(result *models.Result) *AnswerIndex {
	idx := &AnswerIndex{
		IndexToID: make(map[int]string),
		IDToIndex: make(map[string]int),
		ByID:      make(map[string]models.QuestionResult),
	}
	for _, qr := range result.QuestionResults {
		idx.ByID[qr.QuestionID] = qr
		if n, ok := ParseResultIndex(qr.QuestionID); ok {
			idx.IndexToID[n] = qr.QuestionID
			idx.IDToIndex[qr.QuestionID] = n
		}
	}
	return idx
}

// ResolveJoinKey returns the identifier to join position i of the current
// question list against: the identifier stored at that index if the result
// has one, else the synthesized "q-<i>". This tolerates the common case where
// question order did not change between submission and review.
func (idx *AnswerIndex) ResolveJoinKey(i int) string {
	if id, ok := idx.IndexToID[i]; ok {
		return id
	}
	return fmt.Sprintf("q-%d", i)
}

// Lookup finds the stored answer for position i of the current question
// list. A miss means the quiz was edited out from under this result; callers
// render the question as unanswered rather than failing.
func (idx *AnswerIndex) Lookup(i int) (models.QuestionResult, bool) {
	qr, ok := idx.ByID[idx.ResolveJoinKey(i)]
	return qr, ok
}
