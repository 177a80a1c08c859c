package repository

import (
	"context"

	"readdash-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

// FindAll lists quizzes, optionally filtered by reading level and category.
// Empty filter values mean no filtering on that field.
func (r *QuizRepository) FindAll(ctx context.Context, readingLevel, category string) ([]models.Quiz, error) {
	filter := bson.M{}
	if readingLevel != "" {
		filter["reading_level"] = readingLevel
	}
	if category != "" {
		filter["category"] = category
	}
	cur, err := r.Col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	for cur.Next(ctx) {
		var q models.Quiz
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, cur.Err()
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err // invalid id format
	}
	var quiz models.Quiz
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	res, err := r.Col.InsertOne(ctx, quiz)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		quiz.ID = oid
	}
	return nil
}

// Replace overwrites the stored document wholesale. Quiz edits never patch
// individual fields: the rebuilt components and questions replace the old
// ones together.
func (r *QuizRepository) Replace(ctx context.Context, id string, quiz *models.Quiz) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	quiz.ID = objID
	res, err := r.Col.ReplaceOne(ctx, bson.M{"_id": objID}, quiz)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
