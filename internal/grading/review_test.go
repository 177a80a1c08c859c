package grading

import (
	"testing"

	"readdash-service/internal/models"
)

func reviewQuiz() *models.Quiz {
	return &models.Quiz{
		Questions: []models.Question{
			{
				ResultID: "q-0",
				Type:     models.QuestionMultipleChoice,
				Prompt:   "What is the capital of France?",
				Options: []models.Option{
					{ID: "a", Text: "Paris"},
					{ID: "b", Text: "Lyon"},
				},
				CorrectOption: "a",
				Reason:        "Stated in the first paragraph.",
			},
			{
				ResultID:      "q-1",
				Type:          models.QuestionTrueFalseNotGiven,
				Prompt:        "The author has visited Lyon.",
				CorrectAnswer: models.AnswerNotGiven,
			},
		},
	}
}

func TestBuildReview(t *testing.T) {
	result := &models.Result{
		QuestionResults: []models.QuestionResult{
			{QuestionID: "q-0", UserAnswer: "b", IsCorrect: false},
			{QuestionID: "q-1", UserAnswer: "not-given", IsCorrect: true},
		},
	}
	entries := BuildReview(reviewQuiz(), result)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if !first.Answered {
		t.Error("Expected first question answered")
	}
	if first.UserAnswer != "Lyon" || first.CorrectAnswer != "Paris" {
		t.Errorf("Expected option ids resolved to text, got user=%q correct=%q", first.UserAnswer, first.CorrectAnswer)
	}
	if first.IsCorrect {
		t.Error("Expected first question marked wrong")
	}
	if first.Explanation != "Stated in the first paragraph." {
		t.Errorf("Expected explanation carried over, got %q", first.Explanation)
	}

	second := entries[1]
	if second.UserAnswer != "Not given" || second.CorrectAnswer != "Not given" {
		t.Errorf("Expected de-hyphenated capitalized tags, got user=%q correct=%q", second.UserAnswer, second.CorrectAnswer)
	}
	if !second.IsCorrect {
		t.Error("Expected second question marked correct")
	}
}

func TestBuildReviewDegradesOnMissingAnswers(t *testing.T) {
	// The stored result references an identifier that no current question
	// resolves to; the review renders that question as unanswered instead of
	// failing.
	result := &models.Result{
		QuestionResults: []models.QuestionResult{
			{QuestionID: "q-7", UserAnswer: "a", IsCorrect: true},
		},
	}
	entries := BuildReview(reviewQuiz(), result)
	if len(entries) != 2 {
		t.Fatalf("Expected an entry per current question, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Answered {
			t.Errorf("Entry %d: expected unanswered, got %+v", i, e)
		}
		if e.UserAnswer != "" {
			t.Errorf("Entry %d: expected empty user answer, got %q", i, e.UserAnswer)
		}
	}
}

func TestBuildReviewUnknownOptionID(t *testing.T) {
	// An edit replaced the options after submission: the raw id displays
	// verbatim rather than dropping the row.
	result := &models.Result{
		QuestionResults: []models.QuestionResult{
			{QuestionID: "q-0", UserAnswer: "z", IsCorrect: false},
		},
	}
	entries := BuildReview(reviewQuiz(), result)
	if entries[0].UserAnswer != "z" {
		t.Errorf("Expected raw id shown verbatim, got %q", entries[0].UserAnswer)
	}
}

func TestBuildReviewFreeTextAnswers(t *testing.T) {
	quiz := &models.Quiz{
		Questions: []models.Question{
			{
				ResultID: "q-0",
				Type:     models.QuestionSentenceCompletion,
				Prompt:   "The river flows into the ___.",
				Answers: []models.CompletionAnswer{
					{ID: "a1", Text: "sea"},
					{ID: "a2", Text: "ocean"},
				},
				WordLimit: 1,
			},
		},
	}
	result := &models.Result{
		QuestionResults: []models.QuestionResult{
			{QuestionID: "q-0", UserAnswer: "lake", IsCorrect: false},
		},
	}
	entries := BuildReview(quiz, result)
	if entries[0].UserAnswer != "lake" {
		t.Errorf("Expected free text shown as-is, got %q", entries[0].UserAnswer)
	}
	if entries[0].CorrectAnswer != "sea / ocean" {
		t.Errorf("Expected joined acceptable answers, got %q", entries[0].CorrectAnswer)
	}
}

func TestFormatAnswerTag(t *testing.T) {
	testCases := []struct {
		tag  string
		want string
	}{
		{"not-given", "Not given"},
		{"true", "True"},
		{"yes", "Yes"},
		{"", ""},
	}
	for _, tc := range testCases {
		if got := formatAnswerTag(tc.tag); got != tc.want {
			t.Errorf("formatAnswerTag(%q) = %q, want %q", tc.tag, got, tc.want)
		}
	}
}
