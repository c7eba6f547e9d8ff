package db

import (
	"context"

	"pharmahub/models"
	"pharmahub/stores"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AddressDB struct {
	addresses *mongo.Collection
}

func (s *AddressDB) List(ctx context.Context, userID int) ([]models.Address, error) {
	cursor, err := s.addresses.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	addresses := []models.Address{}
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// clearDefault drops the default flag on the user's other addresses. Scoped
// by the userId index so the clear-then-set pair stays cheap.
func (s *AddressDB) clearDefault(ctx context.Context, userID int, keepID string) error {
	_, err := s.addresses.UpdateMany(ctx,
		bson.M{"userId": userID, "id": bson.M{"$ne": keepID}},
		bson.M{"$set": bson.M{"isDefault": false}},
	)
	return err
}

func (s *AddressDB) Create(ctx context.Context, a models.Address) (models.Address, error) {
	if a.IsDefault {
		if err := s.clearDefault(ctx, a.UserID, a.ID); err != nil {
			return models.Address{}, err
		}
	}
	if _, err := s.addresses.InsertOne(ctx, a); err != nil {
		return models.Address{}, err
	}
	return a, nil
}

func (s *AddressDB) Update(ctx context.Context, a models.Address) (models.Address, error) {
	res, err := s.addresses.UpdateOne(ctx,
		bson.M{"id": a.ID, "userId": a.UserID},
		bson.M{"$set": bson.M{
			"recipientName":  a.RecipientName,
			"recipientPhone": a.RecipientPhone,
			"fullAddress":    a.FullAddress,
			"isDefault":      a.IsDefault,
		}},
	)
	if err != nil {
		return models.Address{}, err
	}
	if res.MatchedCount == 0 {
		return models.Address{}, stores.ErrNotFound
	}
	if a.IsDefault {
		if err := s.clearDefault(ctx, a.UserID, a.ID); err != nil {
			return models.Address{}, err
		}
	}
	return a, nil
}

func (s *AddressDB) Delete(ctx context.Context, userID int, id string) error {
	res, err := s.addresses.DeleteOne(ctx, bson.M{"id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return stores.ErrNotFound
	}
	return nil
}
