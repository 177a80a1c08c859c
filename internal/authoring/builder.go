package authoring

import (
	"fmt"
	"sort"

	"readdash-service/internal/models"

	"github.com/google/uuid"
)

// Move directions accepted by MoveComponent.
const (
	MoveUp   = "up"
	MoveDown = "down"
)

// Builder holds the ordered component list of a quiz document while an
// administrator edits it. Orders are kept contiguous from 0 at all times.
type Builder struct {
	components []models.Component
}

func NewBuilder() *Builder {
	return &Builder{}
}

// LoadBuilder resumes editing from an existing component list, e.g. a quiz
// loaded back from storage. The list is sorted by order and renumbered so
// the contiguous-from-0 invariant holds no matter how the input was stored.
func LoadBuilder(components []models.Component) *Builder {
	cp := make([]models.Component, len(components))
	copy(cp, components)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].Order < cp[j].Order })
	for i := range cp {
		cp[i].Order = i
	}
	return &Builder{components: cp}
}

// Components returns the current ordered list.
func (b *Builder) Components() []models.Component {
	return b.components
}

// AddComponent appends a new component with default content for the given
// type and returns it for immediate editing.
func (b *Builder) AddComponent(componentType string) (*models.Component, error) {
	if !models.IsComponentType(componentType) {
		return nil, fmt.Errorf("unknown component type %q", componentType)
	}
	c := models.Component{
		ID:    uuid.NewString(),
		Type:  componentType,
		Order: len(b.components),
	}
	applyDefaults(&c)
	b.components = append(b.components, c)
	return &b.components[len(b.components)-1], nil
}

func applyDefaults(c *models.Component) {
	switch c.Type {
	case models.ComponentTable:
		c.Rows = [][]string{{"", ""}, {"", ""}}
	case models.QuestionMultipleChoice:
		c.Options = []models.Option{
			{ID: "a", Text: "Option A"},
			{ID: "b", Text: "Option B"},
			{ID: "c", Text: "Option C"},
			{ID: "d", Text: "Option D"},
		}
		c.CorrectOption = "a"
	case models.QuestionFillBlanks:
		c.Content = "Complete the sentence: " + models.BlankMarker
		c.Blanks = []models.Blank{{ID: uuid.NewString()}}
	case models.QuestionTrueFalseNotGiven:
		c.CorrectAnswer = models.AnswerTrue
	case models.QuestionYesNoNotGiven:
		c.CorrectAnswer = models.AnswerYes
	case models.QuestionSentenceCompletion:
		c.WordLimit = 3
	}
}

// UpdateComponent replaces the component with matching id. Order and id are
// preserved from the existing entry. For fill-blanks components the blanks
// list is re-synced against the new prompt text.
func (b *Builder) UpdateComponent(id string, updated models.Component) error {
	for i := range b.components {
		if b.components[i].ID != id {
			continue
		}
		updated.ID = id
		updated.Order = b.components[i].Order
		if updated.Type == models.QuestionFillBlanks {
			updated.Blanks = SyncBlanks(updated.Content, updated.Blanks)
		}
		b.components[i] = updated
		return nil
	}
	return fmt.Errorf("component %q not found", id)
}

// DeleteComponent removes the component and renumbers the rest so orders stay
// contiguous from 0.
func (b *Builder) DeleteComponent(id string) error {
	for i := range b.components {
		if b.components[i].ID != id {
			continue
		}
		b.components = append(b.components[:i], b.components[i+1:]...)
		for j := range b.components {
			b.components[j].Order = j
		}
		return nil
	}
	return fmt.Errorf("component %q not found", id)
}

// MoveComponent swaps the component with its neighbor in the given direction.
// Moving past either end is a no-op, not an error.
func (b *Builder) MoveComponent(id string, direction string) error {
	if direction != MoveUp && direction != MoveDown {
		return fmt.Errorf("invalid move direction %q", direction)
	}
	for i := range b.components {
		if b.components[i].ID != id {
			continue
		}
		j := i - 1
		if direction == MoveDown {
			j = i + 1
		}
		if j < 0 || j >= len(b.components) {
			return nil
		}
		b.components[i], b.components[j] = b.components[j], b.components[i]
		b.components[i].Order = i
		b.components[j].Order = j
		return nil
	}
	return fmt.Errorf("component %q not found", id)
}

// SyncBlanks adjusts a blanks list to match the number of blank markers in
// the prompt: extra entries are trimmed from the end, missing ones appended
// with empty answers. Existing entries never move.
func SyncBlanks(prompt string, blanks []models.Blank) []models.Blank {
	markers := models.CountBlankMarkers(prompt)
	if len(blanks) > markers {
		return blanks[:markers]
	}
	for len(blanks) < markers {
		blanks = append(blanks, models.Blank{ID: uuid.NewString()})
	}
	return blanks
}
