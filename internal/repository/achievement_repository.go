package repository

import (
	"context"

	"readdash-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AchievementRepository struct {
	Col *mongo.Collection
}

func NewAchievementRepository(db *mongo.Database) *AchievementRepository {
	return &AchievementRepository{Col: db.Collection("achievements")}
}

func (r *AchievementRepository) Create(ctx context.Context, a *models.Achievement) error {
	res, err := r.Col.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

func (r *AchievementRepository) FindByUser(ctx context.Context, userID string) ([]models.Achievement, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var achievements []models.Achievement
	for cur.Next(ctx) {
		var a models.Achievement
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, cur.Err()
}

func (r *AchievementRepository) Exists(ctx context.Context, userID, kind string) (bool, error) {
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "kind": kind}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
