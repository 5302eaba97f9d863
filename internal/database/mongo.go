// server/internal/database/mongo.go
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Tên các collection trong namespace của ứng dụng.
const (
	CollStores       = "stores"
	CollBookings     = "bookings"
	CollUserBookings = "user_bookings"
	CollRequests     = "requests"
	CollVendorCreds  = "vendor_creds"
	CollUsers        = "users"
)

// Connect mở kết nối tới MongoDB và ping để chắc chắn server sẵn sàng.
func Connect(uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client.Database(dbName), nil
}
