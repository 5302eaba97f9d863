// server/internal/api/handlers/admin_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cityhub-marketplace-api-server/config"
	"cityhub-marketplace-api-server/internal/auth"
	"cityhub-marketplace-api-server/internal/database"
	"cityhub-marketplace-api-server/internal/metrics"
	"cityhub-marketplace-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminHandler struct {
	DB  *mongo.Database
	Cfg config.Config
}

type AdminLoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// Login là PIN gate của operator console: PIN đúng thì phát hành
// token admin cho hai tab (đơn chờ duyệt và merchant đang hoạt động).
func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.Cfg.Admin.PIN == "" || req.PIN != h.Cfg.Admin.PIN {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid PIN"})
		return
	}

	token, err := auth.GenerateJWT("operator", models.RoleAdmin, "", "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListRequests trả về các đơn đăng ký đang chờ duyệt (tab 1).
func (h *AdminHandler) ListRequests(c *gin.Context) {
	cursor, err := h.DB.Collection(database.CollRequests).Find(context.Background(), bson.M{"status": "PENDING"})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query requests"})
		return
	}
	defer cursor.Close(context.Background())

	var requests []models.Request
	if err := cursor.All(context.Background(), &requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode requests"})
		return
	}
	if requests == nil {
		requests = []models.Request{}
	}
	c.JSON(http.StatusOK, requests)
}

// ListStores trả về toàn bộ store cho tab merchant đang hoạt động (tab 2).
func (h *AdminHandler) ListStores(c *gin.Context) {
	cursor, err := h.DB.Collection(database.CollStores).Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query stores"})
		return
	}
	defer cursor.Close(context.Background())

	var stores []models.Store
	if err := cursor.All(context.Background(), &stores); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode stores"})
		return
	}
	if stores == nil {
		stores = []models.Store{}
	}
	c.JSON(http.StatusOK, stores)
}

type ApproveRequestBody struct {
	MerchantID  string `json:"merchantID" binding:"required"`
	SecurityKey string `json:"securityKey" binding:"required"`
}

// ApproveRequest duyệt một đơn đăng ký: tạo Store (live, kèm một dịch vụ và
// một nhân viên placeholder), tạo VendorCredential và xóa đơn — tất cả trong
// MỘT transaction, nửa chừng lỗi thì không còn gì được ghi.
func (h *AdminHandler) ApproveRequest(c *gin.Context) {
	requestID := c.Param("id")

	var body ApproveRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	merchantID := strings.ToUpper(strings.TrimSpace(body.MerchantID))

	var request models.Request
	err := h.DB.Collection(database.CollRequests).FindOne(context.Background(), bson.M{"requestID": requestID}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve request"})
		}
		return
	}

	// Merchant ID do operator nhập phải chưa được cấp cho ai khác
	count, err := h.DB.Collection(database.CollVendorCreds).CountDocuments(context.Background(), bson.M{"merchantID": merchantID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking merchant ID"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Merchant ID already in use"})
		return
	}

	secretHash, err := auth.HashPassword(body.SecurityKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash security key"})
		return
	}

	now := time.Now()
	newStore := models.Store{
		StoreID:    fmt.Sprintf("ST-%s", strings.ToUpper(uuid.New().String()[:8])),
		Name:       request.BizName,
		Category:   request.Category,
		Address:    request.Address,
		IsLive:     true,
		MerchantID: merchantID,
		Services:   []models.Service{{Name: "Standard Service", Price: 100, Duration: 30}},
		Staff:      []models.Staff{{Name: request.Name}},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	newCred := models.VendorCredential{
		MerchantID:   merchantID,
		SecretHash:   secretHash,
		StoreID:      newStore.StoreID,
		BusinessName: newStore.Name,
		CreatedAt:    now,
	}

	err = database.WithTransaction(context.Background(), h.DB, func(sc mongo.SessionContext) error {
		if _, err := h.DB.Collection(database.CollStores).InsertOne(sc, newStore); err != nil {
			return err
		}
		if _, err := h.DB.Collection(database.CollVendorCreds).InsertOne(sc, newCred); err != nil {
			return err
		}
		_, err := h.DB.Collection(database.CollRequests).DeleteOne(sc, bson.M{"requestID": requestID})
		return err
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve request", "details": err.Error()})
		return
	}

	metrics.RequestsApproved.Inc()
	c.JSON(http.StatusCreated, gin.H{"status": "success", "storeID": newStore.StoreID, "merchantID": merchantID})
}

// RejectRequest từ chối một đơn đăng ký: chỉ xóa đơn.
func (h *AdminHandler) RejectRequest(c *gin.Context) {
	requestID := c.Param("id")

	result, err := h.DB.Collection(database.CollRequests).DeleteOne(context.Background(), bson.M{"requestID": requestID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject request"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	metrics.RequestsRejected.Inc()
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Request " + requestID + " rejected"})
}

// PurgeStore gỡ một merchant khỏi sàn: xóa Store và VendorCredential
// tương ứng trong một transaction. Booking cũ được giữ nguyên để tra cứu.
func (h *AdminHandler) PurgeStore(c *gin.Context) {
	storeID := c.Param("id")

	var store models.Store
	err := h.DB.Collection(database.CollStores).FindOne(context.Background(), bson.M{"storeID": storeID}).Decode(&store)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve store"})
		}
		return
	}

	merchantID := strings.ToUpper(store.MerchantID)

	err = database.WithTransaction(context.Background(), h.DB, func(sc mongo.SessionContext) error {
		if _, err := h.DB.Collection(database.CollStores).DeleteOne(sc, bson.M{"storeID": storeID}); err != nil {
			return err
		}
		// Credential có thể đã mất từ trước; DeleteOne không tìm thấy không phải lỗi
		_, err := h.DB.Collection(database.CollVendorCreds).DeleteOne(sc, bson.M{"merchantID": merchantID})
		return err
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purge store", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Store " + storeID + " purged"})
}
