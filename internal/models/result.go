package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionResult records one graded answer inside a Result. QuestionID is the
// question's result-identifier ("q-<index>") as assigned at submission time;
// it is never rewritten afterwards, even if the quiz is later edited.
type QuestionResult struct {
	QuestionID string `bson:"question_id" json:"questionId"`
	UserAnswer string `bson:"user_answer" json:"userAnswer"`
	IsCorrect  bool   `bson:"is_correct" json:"isCorrect"`
}

// Result is one learner's submission for one quiz. Results are append-only:
// retakes add new documents, and a progress reset deletes them outright.
type Result struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           string             `bson:"user_id" json:"userId"`
	QuizID           string             `bson:"quiz_id" json:"quizId"`
	Score            int                `bson:"score" json:"score"`
	CorrectCount     int                `bson:"correct_count" json:"correctCount"`
	TotalQuestions   int                `bson:"total_questions" json:"totalQuestions"`
	TimeSpentSeconds int                `bson:"time_spent_seconds" json:"timeSpentSeconds"`
	QuestionResults  []QuestionResult   `bson:"question_results" json:"questionResults"`
	PointsEarned     int                `bson:"points_earned" json:"pointsEarned"`
	CompletedAt      time.Time          `bson:"completed_at" json:"completedAt"`
}
