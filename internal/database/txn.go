// server/internal/database/txn.go
package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// WithTransaction chạy fn trong một session transaction của Mongo.
// Các chuỗi ghi nhiều document (duyệt đơn, purge, tạo booking + mirror)
// đi qua đây để không bao giờ để lại trạng thái dở dang khi một bước lỗi.
func WithTransaction(ctx context.Context, db *mongo.Database, fn func(sc mongo.SessionContext) error) error {
	session, err := db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
