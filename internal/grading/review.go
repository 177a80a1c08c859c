package grading

import (
	"strings"

	"readdash-service/internal/models"
)

// ReviewEntry is one row of the side-by-side answer review for a completed
// attempt.
type ReviewEntry struct {
	QuestionID    string `json:"questionId"`
	QuestionText  string `json:"questionText"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Answered      bool   `json:"answered"`
	Explanation   string `json:"explanation,omitempty"`
}

// BuildReview joins a stored result back onto the quiz's current question
// list and resolves raw answer identifiers to display text. It never fails:
// questions whose answers cannot be found render as unanswered, and unknown
// option ids display verbatim.
func BuildReview(quiz *models.Quiz, result *models.Result) []ReviewEntry {
	idx := BuildAnswerIndex(result)
	entries := make([]ReviewEntry, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		entry := ReviewEntry{
			QuestionID:    q.ResultID,
			QuestionText:  q.Prompt,
			CorrectAnswer: correctAnswerDisplay(q),
			Explanation:   q.Reason,
		}
		if qr, ok := idx.Lookup(i); ok {
			entry.Answered = true
			entry.IsCorrect = qr.IsCorrect
			entry.UserAnswer = answerDisplay(q, qr.UserAnswer)
		}
		entries = append(entries, entry)
	}
	return entries
}

func correctAnswerDisplay(q *models.Question) string {
	switch q.Type {
	case models.QuestionMultipleChoice:
		return answerDisplay(q, q.CorrectOption)
	case models.QuestionTrueFalseNotGiven, models.QuestionYesNoNotGiven:
		return formatAnswerTag(q.CorrectAnswer)
	case models.QuestionFillBlanks:
		answers := make([]string, len(q.Blanks))
		for i, b := range q.Blanks {
			answers[i] = b.Answer
		}
		return strings.Join(answers, ", ")
	case models.QuestionSentenceCompletion:
		answers := make([]string, len(q.Answers))
		for i, a := range q.Answers {
			answers[i] = a.Text
		}
		return strings.Join(answers, " / ")
	}
	return ""
}

func answerDisplay(q *models.Question, raw string) string {
	switch q.Type {
	case models.QuestionMultipleChoice:
		for _, opt := range q.Options {
			if opt.ID == raw {
				return opt.Text
			}
		}
		// Unknown id, usually after an edit replaced the options. Show it
		// rather than dropping the row.
		return raw
	case models.QuestionTrueFalseNotGiven, models.QuestionYesNoNotGiven:
		return formatAnswerTag(raw)
	}
	// Free-text kinds store the raw answer text, shown as-is.
	return raw
}

// formatAnswerTag turns a literal answer tag into display form:
// "not-given" -> "Not given".
func formatAnswerTag(tag string) string {
	if tag == "" {
		return ""
	}
	s := strings.ReplaceAll(tag, "-", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}
