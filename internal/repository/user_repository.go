package repository

import (
	"context"
	"time"

	"readdash-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	if err := r.Col.FindOne(ctx, bson.M{"_id": uid}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert refreshes the identity fields on every session and creates the
// profile with defaults the first time the uid is seen. Progress fields are
// only set on insert so a login never resets them.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"email":          user.Email,
			"display_name":   user.DisplayName,
			"photo_url":      user.PhotoURL,
			"last_active_at": now,
		},
		"$setOnInsert": bson.M{
			"role":              models.RoleUser,
			"points":            0,
			"level":             1,
			"quizzes_completed": 0,
			"created_at":        now,
		},
	}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": user.UID}, update, options.Update().SetUpsert(true))
	return err
}

// AddProgress applies a submission's effect on the profile: points earned,
// one more completed quiz, and the level derived from the new points total.
func (r *UserRepository) AddProgress(ctx context.Context, uid string, points int) (*models.User, error) {
	after := options.After
	var user models.User
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"_id": uid},
		bson.M{
			"$inc": bson.M{"points": points, "quizzes_completed": 1},
			"$set": bson.M{"last_active_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&user)
	if err != nil {
		return nil, err
	}
	level := models.LevelForPoints(user.Points)
	if level != user.Level {
		if _, err := r.Col.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$set": bson.M{"level": level}}); err != nil {
			return nil, err
		}
		user.Level = level
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, cur.Err()
}

func (r *UserRepository) UpdateRole(ctx context.Context, uid, role string) error {
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
