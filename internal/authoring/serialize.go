package authoring

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"readdash-service/internal/models"
)

// Save-time validation failures. Nothing is persisted when these occur.
var (
	ErrNoPassage   = errors.New("quiz must include a passage component")
	ErrNoQuestions = errors.New("quiz must include at least one question")
)

// QuestionError wraps a per-question validation failure with the identifier
// the question would have been saved under.
type QuestionError struct {
	ResultID string
	Err      error
}

func (e *QuestionError) Error() string {
	return fmt.Sprintf("question %s: %v", e.ResultID, e.Err)
}

func (e *QuestionError) Unwrap() error { return e.Err }

// IsValidationError reports whether err is an authoring validation failure,
// as opposed to a storage or transport error.
func IsValidationError(err error) bool {
	var qe *QuestionError
	return errors.Is(err, ErrNoPassage) || errors.Is(err, ErrNoQuestions) || errors.As(err, &qe)
}

// QuizMeta carries the document-level fields an administrator sets outside
// the component list.
type QuizMeta struct {
	Title        string
	ReadingLevel string
	Category     string
	CreatedBy    string
}

// BuildQuizDocument turns an ordered component list into the persisted Quiz
// aggregate: the first passage's text, the flattened components, and the
// normalized question list with result-identifiers assigned by position
// among question components only. Returns non-fatal warnings alongside the
// document.
func BuildQuizDocument(meta QuizMeta, components []models.Component) (*models.Quiz, []string, error) {
	ordered := make([]models.Component, len(components))
	copy(ordered, components)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	passage := ""
	for _, c := range ordered {
		if c.Type == models.ComponentPassage {
			passage = c.Content
			break
		}
	}
	if passage == "" {
		return nil, nil, ErrNoPassage
	}

	var warnings []string
	var questions []models.Question
	for _, c := range ordered {
		if !models.IsQuestionType(c.Type) {
			continue
		}
		q := normalizeQuestion(c)
		q.ResultID = fmt.Sprintf("q-%d", len(questions))
		if err := q.Validate(); err != nil {
			return nil, nil, &QuestionError{ResultID: q.ResultID, Err: err}
		}
		warnings = append(warnings, q.Warnings()...)
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, nil, ErrNoQuestions
	}

	stored := make([]models.Component, len(ordered))
	for i, c := range ordered {
		if c.Type == models.ComponentTable && c.Rows != nil {
			c.Cells, c.RowCount, c.ColCount = FlattenRows(c.Rows)
			c.Rows = nil
		}
		stored[i] = c
	}

	now := time.Now().UTC()
	return &models.Quiz{
		Title:         meta.Title,
		Passage:       passage,
		ReadingLevel:  meta.ReadingLevel,
		Category:      meta.Category,
		QuestionCount: len(questions),
		Components:    stored,
		Questions:     questions,
		CreatedBy:     meta.CreatedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, warnings, nil
}

func normalizeQuestion(c models.Component) models.Question {
	return models.Question{
		Type:          c.Type,
		Prompt:        c.Content,
		Options:       c.Options,
		CorrectOption: c.CorrectOption,
		Blanks:        c.Blanks,
		CorrectAnswer: c.CorrectAnswer,
		Answers:       c.Answers,
		WordLimit:     c.WordLimit,
		Reason:        c.Reason,
	}
}

// FlattenRows converts a 2-D table grid into the sparse "<row>_<col>" cell
// map the store can hold. Empty cells are omitted; row and column counts are
// kept so the grid shape survives the round trip.
func FlattenRows(rows [][]string) (map[string]string, int, int) {
	cells := make(map[string]string)
	colCount := 0
	for r, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
		for col, cell := range row {
			if cell == "" {
				continue
			}
			cells[fmt.Sprintf("%d_%d", r, col)] = cell
		}
	}
	return cells, len(rows), colCount
}

// RestoreRows reverses FlattenRows exactly.
func RestoreRows(cells map[string]string, rowCount, colCount int) [][]string {
	rows := make([][]string, rowCount)
	for r := range rows {
		rows[r] = make([]string, colCount)
	}
	for key, cell := range cells {
		parts := strings.SplitN(key, "_", 2)
		if len(parts) != 2 {
			continue
		}
		r, err1 := strconv.Atoi(parts[0])
		col, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || r < 0 || r >= rowCount || col < 0 || col >= colCount {
			continue
		}
		rows[r][col] = cell
	}
	return rows
}

// RestoreTables rebuilds the 2-D grids on a quiz loaded from storage.
func RestoreTables(quiz *models.Quiz) {
	for i := range quiz.Components {
		c := &quiz.Components[i]
		if c.Type == models.ComponentTable && c.Cells != nil {
			c.Rows = RestoreRows(c.Cells, c.RowCount, c.ColCount)
		}
	}
}
