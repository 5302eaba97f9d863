// server/internal/models/request.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request là một đơn đăng ký mở cửa hàng đang chờ admin duyệt.
// Đơn bị xóa khi admin approve hoặc reject.
type Request struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID string             `bson:"requestID" json:"requestID"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	BizName   string             `bson:"bizName" json:"bizName"`
	Category  string             `bson:"category" json:"category"`
	Address   string             `bson:"address" json:"address"`
	UID       string             `bson:"uid" json:"uid"`
	Status    string             `bson:"status" json:"status"` // PENDING
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
