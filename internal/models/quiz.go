package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quiz is the persisted aggregate: the raw authoring components plus the
// derived question list used for grading. Edits replace Components and
// Questions wholesale; there is no partial patch path.
type Quiz struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Passage       string             `bson:"passage" json:"passage"`
	ReadingLevel  string             `bson:"reading_level" json:"readingLevel"`
	Category      string             `bson:"category" json:"category"`
	QuestionCount int                `bson:"question_count" json:"questionCount"`
	Components    []Component        `bson:"components" json:"components"`
	Questions     []Question         `bson:"questions" json:"questions"`
	CreatedBy     string             `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
