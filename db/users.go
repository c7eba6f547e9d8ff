package db

import (
	"context"
	"errors"
	"time"

	"pharmahub/models"
	"pharmahub/stores"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserDB struct {
	users    *mongo.Collection
	counters *mongo.Collection
}

func (s *UserDB) GetByID(ctx context.Context, id int) (models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, stores.ErrNotFound
	}
	return u, err
}

func (s *UserDB) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, stores.ErrNotFound
	}
	return u, err
}

func (s *UserDB) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// nextUserID increments the shared counter and returns the new value.
func (s *UserDB) nextUserID(ctx context.Context) (int, error) {
	var counter struct {
		Seq int `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "users"},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	return counter.Seq, err
}

func (s *UserDB) Create(ctx context.Context, u models.User) (models.User, error) {
	id, err := s.nextUserID(ctx)
	if err != nil {
		return models.User{}, err
	}
	u.ID = id
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.users.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, stores.ErrConflict
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *UserDB) Update(ctx context.Context, u models.User) (models.User, error) {
	u.UpdatedAt = time.Now()
	res, err := s.users.UpdateOne(ctx, bson.M{"id": u.ID}, bson.M{"$set": bson.M{
		"name":      u.Name,
		"email":     u.Email,
		"phone":     u.Phone,
		"updatedAt": u.UpdatedAt,
	}})
	if err != nil {
		return models.User{}, err
	}
	if res.MatchedCount == 0 {
		return models.User{}, stores.ErrNotFound
	}
	return s.GetByID(ctx, u.ID)
}
