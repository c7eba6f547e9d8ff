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

type OrderDB struct {
	orders *mongo.Collection
}

func (s *OrderDB) Insert(ctx context.Context, o models.Order) error {
	_, err := s.orders.InsertOne(ctx, o)
	return err
}

func (s *OrderDB) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := s.orders.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderDB) All(ctx context.Context) ([]models.Order, error) {
	return s.find(ctx, bson.M{})
}

func (s *OrderDB) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	return s.find(ctx, bson.M{"userId": userID})
}

func (s *OrderDB) GetByID(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	err := s.orders.FindOne(ctx, bson.M{"id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, stores.ErrNotFound
	}
	return o, err
}

func (s *OrderDB) SetStatus(ctx context.Context, id, status string, at time.Time) (models.Order, error) {
	var o models.Order
	err := s.orders.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": at}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, stores.ErrNotFound
	}
	return o, err
}
