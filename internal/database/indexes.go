// server/internal/database/indexes.go
package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes tạo các index mà nghiệp vụ dựa vào:
// displayID và merchantID phải duy nhất, các truy vấn theo store/uid có index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection(CollBookings).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "displayID", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(CollVendorCreds).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "merchantID", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(CollUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "uid", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(CollBookings).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "storeID", Value: 1}, {Key: "status", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(CollUserBookings).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "uid", Value: 1}},
	})
	return err
}
