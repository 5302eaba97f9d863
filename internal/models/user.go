// server/internal/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vai trò của một user.
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)

// User là profile của một phiên đăng nhập (ẩn danh hoặc theo token).
// Được tạo lazy ở lần sign-in đầu tiên; chuyển role sang vendor khi
// đăng nhập merchant thành công.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID          string             `bson:"uid" json:"uid"`
	Role         string             `bson:"role" json:"role"` // customer, vendor
	BusinessID   string             `bson:"businessID,omitempty" json:"businessID,omitempty"`
	BusinessName string             `bson:"businessName,omitempty" json:"businessName,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
