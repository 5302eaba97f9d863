// server/internal/models/vendor_credential.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VendorCredential là thông tin đăng nhập cấp cho merchant khi được duyệt.
// MerchantID luôn được lưu ở dạng viết hoa; SecretHash là bcrypt của security key.
type VendorCredential struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MerchantID   string             `bson:"merchantID" json:"merchantID"`
	SecretHash   string             `bson:"secretHash" json:"-"`
	StoreID      string             `bson:"storeID" json:"storeID"`
	BusinessName string             `bson:"businessName" json:"businessName"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
