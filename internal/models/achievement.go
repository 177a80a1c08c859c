package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Achievement kinds awarded on result submission.
const (
	AchievementFirstQuiz    = "first-quiz"
	AchievementPerfectScore = "perfect-score"
	AchievementTenQuizzes   = "ten-quizzes"
	AchievementLevelUp      = "level-up"
)

// Achievement is one earned badge. A user earns each kind at most once,
// except level-up which repeats per level gained.
type Achievement struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   string             `bson:"user_id" json:"userId"`
	Kind     string             `bson:"kind" json:"kind"`
	Title    string             `bson:"title" json:"title"`
	EarnedAt time.Time          `bson:"earned_at" json:"earnedAt"`
}
