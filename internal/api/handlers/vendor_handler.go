// server/internal/api/handlers/vendor_handler.go
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"cityhub-marketplace-api-server/internal/auth"
	"cityhub-marketplace-api-server/internal/database"
	"cityhub-marketplace-api-server/internal/market"
	"cityhub-marketplace-api-server/internal/metrics"
	"cityhub-marketplace-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type VendorHandler struct {
	DB *mongo.Database
}

type VendorLoginRequest struct {
	MerchantID  string `json:"merchantID" binding:"required"`
	SecurityKey string `json:"securityKey" binding:"required"`
}

// Login đăng nhập merchant: tra credential theo ID viết hoa, so khớp
// security key. ID không tồn tại hay key sai đều trả về cùng một thông báo
// để không lộ danh sách merchant.
func (h *VendorHandler) Login(c *gin.Context) {
	uidInterface, _ := c.Get("uid")
	uid := uidInterface.(string)

	var req VendorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merchantID := strings.ToUpper(strings.TrimSpace(req.MerchantID))

	var cred models.VendorCredential
	err := h.DB.Collection(database.CollVendorCreds).FindOne(context.Background(), bson.M{"merchantID": merchantID}).Decode(&cred)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check credentials"})
		}
		return
	}

	if !auth.CheckPasswordHash(req.SecurityKey, cred.SecretHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	// Chuyển profile của phiên hiện tại sang vai trò vendor
	_, err = h.DB.Collection(database.CollUsers).UpdateOne(
		context.Background(),
		bson.M{"uid": uid},
		bson.M{"$set": bson.M{
			"role":         models.RoleVendor,
			"businessID":   cred.StoreID,
			"businessName": cred.BusinessName,
			"updatedAt":    time.Now(),
		}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	token, err := auth.GenerateJWT(uid, models.RoleVendor, cred.StoreID, cred.BusinessName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        token,
		"businessID":   cred.StoreID,
		"businessName": cred.BusinessName,
	})
}

// Dashboard trả về doanh thu (tổng totalPrice của booking completed) và
// hàng đợi booking pending của store mà vendor sở hữu.
func (h *VendorHandler) Dashboard(c *gin.Context) {
	businessIDInterface, _ := c.Get("business_id")
	storeID := businessIDInterface.(string)
	if storeID == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "No business linked to this session"})
		return
	}

	cursor, err := h.DB.Collection(database.CollBookings).Find(context.Background(), bson.M{"storeID": storeID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query bookings"})
		return
	}
	defer cursor.Close(context.Background())

	var bookings []models.Booking
	if err := cursor.All(context.Background(), &bookings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"revenue": market.Revenue(bookings, storeID),
		"queue":   market.PendingQueue(bookings, storeID),
	})
}

// CompleteBooking đánh dấu một booking là hoàn tất. Chỉ merchant sở hữu
// store của booking mới được phép; mirror của khách cũng được cập nhật.
func (h *VendorHandler) CompleteBooking(c *gin.Context) {
	businessIDInterface, _ := c.Get("business_id")
	storeID := businessIDInterface.(string)

	displayID := market.NormalizeDisplayID(c.Param("id"))

	var booking models.Booking
	err := h.DB.Collection(database.CollBookings).FindOne(context.Background(), bson.M{"displayID": displayID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve booking"})
		}
		return
	}

	if booking.StoreID != storeID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Booking belongs to another store"})
		return
	}
	if booking.Status == models.BookingCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "Booking already completed"})
		return
	}

	update := bson.M{"$set": bson.M{"status": models.BookingCompleted}}
	err = database.WithTransaction(context.Background(), h.DB, func(sc mongo.SessionContext) error {
		if _, err := h.DB.Collection(database.CollBookings).UpdateOne(sc, bson.M{"displayID": displayID}, update); err != nil {
			return err
		}
		_, err := h.DB.Collection(database.CollUserBookings).UpdateOne(sc, bson.M{"displayID": displayID}, update)
		return err
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete booking", "details": err.Error()})
		return
	}

	metrics.BookingsCompleted.Inc()
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Booking " + displayID + " completed"})
}
