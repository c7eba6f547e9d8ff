// Package db implements the stores interfaces on MongoDB. One collection
// per entity, keyed by the entity id, plus a counters collection for the
// sequential user id.
package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Mongo struct {
	Client    *mongo.Client
	Users     *UserDB
	Addresses *AddressDB
	Carts     *CartDB
	Orders    *OrderDB
}

// Connect opens the client and prepares the collections and indexes.
func Connect(ctx context.Context, uri string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	database := client.Database("pharmahub")
	m := &Mongo{
		Client:    client,
		Users:     &UserDB{users: database.Collection("users"), counters: database.Collection("counters")},
		Addresses: &AddressDB{addresses: database.Collection("addresses")},
		Carts:     &CartDB{carts: database.Collection("carts")},
		Orders:    &OrderDB{orders: database.Collection("orders")},
	}
	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	_, err := m.Users.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = m.Addresses.addresses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	if err != nil {
		return err
	}
	_, err = m.Carts.carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	if err != nil {
		return err
	}
	_, err = m.Orders.orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
