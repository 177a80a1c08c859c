package models

// Component types. A quiz authoring document is an ordered list of these;
// question-kind components are normalized into Questions at save time.
const (
	ComponentTitle      = "title"
	ComponentHeading    = "heading"
	ComponentSubheading = "subheading"
	ComponentPassage    = "passage"
	ComponentImage      = "image"
	ComponentTable      = "table"

	QuestionMultipleChoice     = "multiple-choice"
	QuestionFillBlanks         = "fill-blanks"
	QuestionTrueFalseNotGiven  = "true-false-not-given"
	QuestionYesNoNotGiven      = "yes-no-not-given"
	QuestionSentenceCompletion = "sentence-completion"
)

// QuestionTypes is the closed set of gradeable component kinds.
var QuestionTypes = []string{
	QuestionMultipleChoice,
	QuestionFillBlanks,
	QuestionTrueFalseNotGiven,
	QuestionYesNoNotGiven,
	QuestionSentenceCompletion,
}

func IsQuestionType(t string) bool {
	for _, qt := range QuestionTypes {
		if t == qt {
			return true
		}
	}
	return false
}

func IsComponentType(t string) bool {
	switch t {
	case ComponentTitle, ComponentHeading, ComponentSubheading,
		ComponentPassage, ComponentImage, ComponentTable:
		return true
	}
	return IsQuestionType(t)
}

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

type Blank struct {
	ID     string `bson:"id" json:"id"`
	Answer string `bson:"answer" json:"answer"`
}

type CompletionAnswer struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

// Component is one authored block in a quiz document. Only the fields legal
// for its Type are populated; everything else stays at the zero value and is
// omitted from storage.
type Component struct {
	ID    string `bson:"id" json:"id"`
	Type  string `bson:"type" json:"type"`
	Order int    `bson:"order" json:"order"`

	// Display content: text for title/heading/subheading/passage, the prompt
	// for question kinds.
	Content string `bson:"content,omitempty" json:"content,omitempty"`

	// Image fields.
	ImageURL string `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Caption  string `bson:"caption,omitempty" json:"caption,omitempty"`

	// Table fields. Rows is the authoring-time 2-D grid; it is never persisted
	// because the store cannot hold nested arrays reliably. Cells is the
	// flattened "<row>_<col>" projection written at save time and reversed on
	// load.
	Rows     [][]string        `bson:"-" json:"rows,omitempty"`
	Cells    map[string]string `bson:"cells,omitempty" json:"cells,omitempty"`
	RowCount int               `bson:"row_count,omitempty" json:"rowCount,omitempty"`
	ColCount int               `bson:"col_count,omitempty" json:"colCount,omitempty"`

	// Question fields, keyed by Type.
	Options       []Option           `bson:"options,omitempty" json:"options,omitempty"`
	CorrectOption string             `bson:"correct_option,omitempty" json:"correctOption,omitempty"`
	Blanks        []Blank            `bson:"blanks,omitempty" json:"blanks,omitempty"`
	CorrectAnswer string             `bson:"correct_answer,omitempty" json:"correctAnswer,omitempty"`
	Answers       []CompletionAnswer `bson:"answers,omitempty" json:"answers,omitempty"`
	WordLimit     int                `bson:"word_limit,omitempty" json:"wordLimit,omitempty"`

	// Optional explanation shown during review.
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
}
