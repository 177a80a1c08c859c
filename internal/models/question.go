package models

import (
	"fmt"
	"strings"
)

// BlankMarker is the token that marks a blank inside a fill-blanks or
// sentence-completion prompt.
const BlankMarker = "___"

// Answer tags for the fixed-answer-space question kinds.
const (
	AnswerTrue     = "true"
	AnswerFalse    = "false"
	AnswerYes      = "yes"
	AnswerNo       = "no"
	AnswerNotGiven = "not-given"
)

// Question is the normalized, gradeable form of a question-kind Component.
// ResultID is the "q-<index>" identifier that joins submitted answers back to
// this question; the index counts question components only, in document order
// at save time.
type Question struct {
	ResultID      string             `bson:"result_id" json:"resultId"`
	Type          string             `bson:"type" json:"type"`
	Prompt        string             `bson:"prompt" json:"prompt"`
	Options       []Option           `bson:"options,omitempty" json:"options,omitempty"`
	CorrectOption string             `bson:"correct_option,omitempty" json:"correctOption,omitempty"`
	Blanks        []Blank            `bson:"blanks,omitempty" json:"blanks,omitempty"`
	CorrectAnswer string             `bson:"correct_answer,omitempty" json:"correctAnswer,omitempty"`
	Answers       []CompletionAnswer `bson:"answers,omitempty" json:"answers,omitempty"`
	WordLimit     int                `bson:"word_limit,omitempty" json:"wordLimit,omitempty"`
	Reason        string             `bson:"reason,omitempty" json:"reason,omitempty"`
}

// CountBlankMarkers returns how many blank markers appear in a prompt.
func CountBlankMarkers(prompt string) int {
	return strings.Count(prompt, BlankMarker)
}

// Validate enforces the per-kind shape invariants. These are authoring
// errors: a quiz is never persisted with a question that fails here.
func (q *Question) Validate() error {
	switch q.Type {
	case QuestionMultipleChoice:
		if len(q.Options) < 2 {
			return fmt.Errorf("multiple-choice question needs at least 2 options, got %d", len(q.Options))
		}
		seen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if seen[opt.ID] {
				return fmt.Errorf("duplicate option id %q", opt.ID)
			}
			seen[opt.ID] = true
		}
		if !seen[q.CorrectOption] {
			return fmt.Errorf("correct option %q is not one of the options", q.CorrectOption)
		}
		return nil
	case QuestionFillBlanks:
		markers := CountBlankMarkers(q.Prompt)
		if markers == 0 {
			return fmt.Errorf("fill-blanks prompt contains no blank markers")
		}
		if len(q.Blanks) != markers {
			return fmt.Errorf("fill-blanks question has %d blanks for %d markers", len(q.Blanks), markers)
		}
		return nil
	case QuestionTrueFalseNotGiven:
		switch q.CorrectAnswer {
		case AnswerTrue, AnswerFalse, AnswerNotGiven:
			return nil
		}
		return fmt.Errorf("invalid true/false/not-given answer %q", q.CorrectAnswer)
	case QuestionYesNoNotGiven:
		switch q.CorrectAnswer {
		case AnswerYes, AnswerNo, AnswerNotGiven:
			return nil
		}
		return fmt.Errorf("invalid yes/no/not-given answer %q", q.CorrectAnswer)
	case QuestionSentenceCompletion:
		if q.WordLimit < 1 {
			return fmt.Errorf("sentence-completion word limit must be at least 1, got %d", q.WordLimit)
		}
		return nil
	}
	return fmt.Errorf("unknown question type %q", q.Type)
}

// Warnings reports non-fatal authoring issues. The save still goes through;
// the admin sees these next to the success message.
func (q *Question) Warnings() []string {
	var warns []string
	if q.Type == QuestionSentenceCompletion && len(q.Answers) == 0 {
		warns = append(warns, fmt.Sprintf("sentence-completion question %s has no acceptable answers", q.ResultID))
	}
	return warns
}
