package repository

import (
	"context"

	"readdash-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("results")}
}

func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	res, err := r.Col.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid
	}
	return nil
}

func (r *ResultRepository) FindByID(ctx context.Context, id string) (*models.Result, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var result models.Result
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultRepository) FindByUser(ctx context.Context, userID string) ([]models.Result, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *ResultRepository) FindByUserAndQuiz(ctx context.Context, userID, quizID string) ([]models.Result, error) {
	return r.find(ctx, bson.M{"user_id": userID, "quiz_id": quizID})
}

func (r *ResultRepository) FindByQuiz(ctx context.Context, quizID string) ([]models.Result, error) {
	return r.find(ctx, bson.M{"quiz_id": quizID})
}

func (r *ResultRepository) find(ctx context.Context, filter bson.M) ([]models.Result, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.Result
	for cur.Next(ctx) {
		var res models.Result
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, cur.Err()
}

// DeleteByUserAndQuiz removes every attempt a user has for a quiz. Results
// are never mutated in place; a progress reset deletes them outright.
func (r *ResultRepository) DeleteByUserAndQuiz(ctx context.Context, userID, quizID string) (int64, error) {
	res, err := r.Col.DeleteMany(ctx, bson.M{"user_id": userID, "quiz_id": quizID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
