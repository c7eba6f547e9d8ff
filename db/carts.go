package db

import (
	"context"

	"pharmahub/models"
	"pharmahub/stores"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartDB struct {
	carts *mongo.Collection
}

func (s *CartDB) Lines(ctx context.Context, userID int) ([]models.CartLine, error) {
	cursor, err := s.carts.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	lines := []models.CartLine{}
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Add upserts on (userId, productId, unit): an existing line gets its
// quantity incremented, a new line keeps the id, price and timestamp it
// arrived with.
func (s *CartDB) Add(ctx context.Context, line models.CartLine) error {
	filter := bson.M{
		"userId":    line.UserID,
		"productId": line.ProductID,
		"unit":      line.Unit,
	}
	update := bson.M{
		"$inc": bson.M{"quantity": line.Quantity},
		"$setOnInsert": bson.M{
			"id":      line.ID,
			"price":   line.Price,
			"addedAt": line.AddedAt,
		},
	}
	_, err := s.carts.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (s *CartDB) SetQuantity(ctx context.Context, userID int, lineID string, qty int) error {
	if qty <= 0 {
		return s.Remove(ctx, userID, lineID)
	}
	res, err := s.carts.UpdateOne(ctx,
		bson.M{"id": lineID, "userId": userID},
		bson.M{"$set": bson.M{"quantity": qty}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return stores.ErrNotFound
	}
	return nil
}

func (s *CartDB) Remove(ctx context.Context, userID int, lineID string) error {
	res, err := s.carts.DeleteOne(ctx, bson.M{"id": lineID, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return stores.ErrNotFound
	}
	return nil
}

func (s *CartDB) Clear(ctx context.Context, userID int) error {
	_, err := s.carts.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
