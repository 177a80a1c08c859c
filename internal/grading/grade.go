package grading

import (
	"errors"
	"math"
	"strings"

	"readdash-service/internal/models"
)

// ErrNoGradableQuestions is returned when a quiz reaches the grader with an
// empty question list. Authoring validation makes this unreachable for
// persisted quizzes; the guard is for callers constructing quizzes directly.
var ErrNoGradableQuestions = errors.New("quiz has no questions to grade")

// Options control grading behavior.
//
// FillBlanksByText selects the repaired fill-blanks semantics: each submitted
// blank answer is compared textually against the blank's answer key. The
// default (false) reproduces the historical behavior where the recorded
// answer is the id of the blank the learner selected and grading compares
// that id against the blank id in the key, so a recorded answer matching any
// blank id in the question counts as correct.
type Options struct {
	FillBlanksByText bool
}

// Summary is the outcome of grading one submission.
type Summary struct {
	Score          int
	CorrectCount   int
	TotalQuestions int
	PerQuestion    []models.QuestionResult
}

// Grade compares submitted answers against the quiz's answer key. It is a
// pure function: no I/O, same inputs always produce the same summary.
// Answers are keyed by result-identifier; a missing key grades as incorrect
// with an empty recorded answer.
//
// Fill-blanks and sentence-completion submissions arrive as a single string;
// multi-blank answers are joined with "|" in submission order.
func Grade(quiz *models.Quiz, answers map[string]string, opts Options) (*Summary, error) {
	if len(quiz.Questions) == 0 {
		return nil, ErrNoGradableQuestions
	}

	summary := &Summary{
		TotalQuestions: len(quiz.Questions),
		PerQuestion:    make([]models.QuestionResult, 0, len(quiz.Questions)),
	}
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		userAnswer := answers[q.ResultID]
		correct := isCorrect(q, userAnswer, opts)
		if correct {
			summary.CorrectCount++
		}
		summary.PerQuestion = append(summary.PerQuestion, models.QuestionResult{
			QuestionID: q.ResultID,
			UserAnswer: userAnswer,
			IsCorrect:  correct,
		})
	}
	summary.Score = int(math.Round(float64(summary.CorrectCount) / float64(summary.TotalQuestions) * 100))
	return summary, nil
}

// Exact string equality throughout: no trimming, no case folding. Grading
// must match what the authoring tool stored, byte for byte.
func isCorrect(q *models.Question, userAnswer string, opts Options) bool {
	switch q.Type {
	case models.QuestionMultipleChoice:
		return userAnswer != "" && userAnswer == q.CorrectOption
	case models.QuestionTrueFalseNotGiven, models.QuestionYesNoNotGiven:
		return userAnswer != "" && userAnswer == q.CorrectAnswer
	case models.QuestionFillBlanks:
		if opts.FillBlanksByText {
			return blanksMatchText(q.Blanks, userAnswer)
		}
		return blankIDMatches(q.Blanks, userAnswer)
	case models.QuestionSentenceCompletion:
		if userAnswer == "" {
			return false
		}
		for _, a := range q.Answers {
			if userAnswer == a.Text {
				return true
			}
		}
		return false
	}
	return false
}

// blankIDMatches reproduces the historical fill-blanks behavior: the stored
// user answer is a blank id and the question counts as correct when that id
// belongs to the question's blank set.
func blankIDMatches(blanks []models.Blank, userAnswer string) bool {
	if userAnswer == "" {
		return false
	}
	for _, b := range blanks {
		if userAnswer == b.ID {
			return true
		}
	}
	return false
}

// blanksMatchText grades each submitted blank answer against its positional
// answer key. The submission carries all blanks joined with "|"; every blank
// must match exactly for the question to count.
func blanksMatchText(blanks []models.Blank, userAnswer string) bool {
	if len(blanks) == 0 || userAnswer == "" {
		return false
	}
	parts := strings.Split(userAnswer, BlankAnswerSeparator)
	if len(parts) != len(blanks) {
		return false
	}
	for i, b := range blanks {
		if parts[i] != b.Answer {
			return false
		}
	}
	return true
}

// BlankAnswerSeparator joins per-blank answers into one submitted string.
const BlankAnswerSeparator = "|"

// BestAttempt returns the highest-scoring result, keeping the first maximum
// found in iteration order. Tie order is whatever the store returned; callers
// must not depend on which tied attempt wins. Returns nil for an empty slice.
func BestAttempt(results []models.Result) *models.Result {
	var best *models.Result
	for i := range results {
		if best == nil || results[i].Score > best.Score {
			best = &results[i]
		}
	}
	return best
}
