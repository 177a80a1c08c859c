package authoring

import (
	"errors"
	"reflect"
	"testing"

	"readdash-service/internal/models"
)

func passageComponent(order int) models.Component {
	return models.Component{
		ID:      "passage-1",
		Type:    models.ComponentPassage,
		Order:   order,
		Content: "Paris is the capital of France.\nIt sits on the Seine.",
	}
}

func mcComponent(id string, order int) models.Component {
	return models.Component{
		ID:    id,
		Type:  models.QuestionMultipleChoice,
		Order: order,
		Content: "What is the capital of France?",
		Options: []models.Option{
			{ID: "a", Text: "Paris"},
			{ID: "b", Text: "Lyon"},
		},
		CorrectOption: "a",
		Reason:        "Stated in the first sentence.",
	}
}

func TestBuildQuizDocument(t *testing.T) {
	components := []models.Component{
		{ID: "t", Type: models.ComponentTitle, Order: 0, Content: "France"},
		passageComponent(1),
		mcComponent("q1", 2),
		{ID: "h", Type: models.ComponentHeading, Order: 3, Content: "Questions"},
		{
			ID: "q2", Type: models.QuestionTrueFalseNotGiven, Order: 4,
			Content: "Paris is on the Seine.", CorrectAnswer: models.AnswerTrue,
		},
	}

	quiz, warnings, err := BuildQuizDocument(QuizMeta{Title: "France", ReadingLevel: "B1", Category: "geography"}, components)
	if err != nil {
		t.Fatalf("BuildQuizDocument failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if quiz.Passage == "" || quiz.Passage != components[1].Content {
		t.Errorf("Expected passage from first passage component, got %q", quiz.Passage)
	}
	if quiz.QuestionCount != 2 {
		t.Errorf("Expected questionCount 2, got %d", quiz.QuestionCount)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(quiz.Questions))
	}
	// Result-identifiers count question components only, not all components.
	if quiz.Questions[0].ResultID != "q-0" || quiz.Questions[1].ResultID != "q-1" {
		t.Errorf("Expected result ids q-0, q-1, got %q, %q", quiz.Questions[0].ResultID, quiz.Questions[1].ResultID)
	}
	if quiz.Questions[1].Type != models.QuestionTrueFalseNotGiven {
		t.Errorf("Questions must keep component order, got %q", quiz.Questions[1].Type)
	}
}

func TestBuildQuizDocumentValidation(t *testing.T) {
	t.Run("missing passage", func(t *testing.T) {
		_, _, err := BuildQuizDocument(QuizMeta{}, []models.Component{mcComponent("q1", 0)})
		if !errors.Is(err, ErrNoPassage) {
			t.Errorf("Expected ErrNoPassage, got %v", err)
		}
	})

	t.Run("no questions", func(t *testing.T) {
		_, _, err := BuildQuizDocument(QuizMeta{}, []models.Component{passageComponent(0)})
		if !errors.Is(err, ErrNoQuestions) {
			t.Errorf("Expected ErrNoQuestions, got %v", err)
		}
	})

	t.Run("invalid question", func(t *testing.T) {
		bad := mcComponent("q1", 1)
		bad.CorrectOption = "z"
		_, _, err := BuildQuizDocument(QuizMeta{}, []models.Component{passageComponent(0), bad})
		var qe *QuestionError
		if !errors.As(err, &qe) {
			t.Fatalf("Expected QuestionError, got %v", err)
		}
		if qe.ResultID != "q-0" {
			t.Errorf("Expected failing question q-0, got %q", qe.ResultID)
		}
		if !IsValidationError(err) {
			t.Error("Expected IsValidationError to report true")
		}
	})
}

func TestResultIDStability(t *testing.T) {
	// Re-serializing unchanged components must reassign identical result ids.
	components := []models.Component{
		passageComponent(0),
		mcComponent("q1", 1),
		{ID: "img", Type: models.ComponentImage, Order: 2, ImageURL: "http://example.com/map.png"},
		{
			ID: "q2", Type: models.QuestionYesNoNotGiven, Order: 3,
			Content: "Does the author admire Paris?", CorrectAnswer: models.AnswerYes,
		},
	}

	first, _, err := BuildQuizDocument(QuizMeta{Title: "x"}, components)
	if err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	second, _, err := BuildQuizDocument(QuizMeta{Title: "x"}, components)
	if err != nil {
		t.Fatalf("second build failed: %v", err)
	}
	for i := range first.Questions {
		if first.Questions[i].ResultID != second.Questions[i].ResultID {
			t.Errorf("Result id drifted at %d: %q vs %q", i, first.Questions[i].ResultID, second.Questions[i].ResultID)
		}
	}
}

func TestTableRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		rows [][]string
	}{
		{"single cell", [][]string{{"a"}}},
		{"rectangular", [][]string{{"city", "country"}, {"Paris", "France"}, {"Rome", "Italy"}}},
		{"with empty cells", [][]string{{"", "b"}, {"c", ""}}},
		{"all empty", [][]string{{"", ""}, {"", ""}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cells, rowCount, colCount := FlattenRows(tc.rows)
			got := RestoreRows(cells, rowCount, colCount)
			if !reflect.DeepEqual(got, tc.rows) {
				t.Errorf("Round trip mismatch:\n got %v\nwant %v", got, tc.rows)
			}
		})
	}
}

func TestRestoreRowsIgnoresBadKeys(t *testing.T) {
	cells := map[string]string{
		"0_0":    "keep",
		"bad":    "drop",
		"9_0":    "out of range",
		"-1_0":   "negative",
		"0_junk": "not a number",
	}
	rows := RestoreRows(cells, 1, 1)
	if rows[0][0] != "keep" {
		t.Errorf("Expected surviving cell, got %q", rows[0][0])
	}
}

func TestBuildQuizDocumentFlattensTables(t *testing.T) {
	table := models.Component{
		ID: "tbl", Type: models.ComponentTable, Order: 1,
		Rows: [][]string{{"city", "country"}, {"Paris", "France"}},
	}
	components := []models.Component{passageComponent(0), table, mcComponent("q1", 2)}

	quiz, _, err := BuildQuizDocument(QuizMeta{Title: "x"}, components)
	if err != nil {
		t.Fatalf("BuildQuizDocument failed: %v", err)
	}
	stored := quiz.Components[1]
	if stored.Rows != nil {
		t.Error("Stored table must not keep nested rows")
	}
	if stored.RowCount != 2 || stored.ColCount != 2 {
		t.Errorf("Expected 2x2 table, got %dx%d", stored.RowCount, stored.ColCount)
	}
	if stored.Cells["1_0"] != "Paris" {
		t.Errorf("Expected cell 1_0 = Paris, got %q", stored.Cells["1_0"])
	}

	RestoreTables(quiz)
	if !reflect.DeepEqual(quiz.Components[1].Rows, table.Rows) {
		t.Errorf("RestoreTables mismatch: got %v", quiz.Components[1].Rows)
	}
}
