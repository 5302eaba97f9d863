// server/internal/api/handlers/request_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cityhub-marketplace-api-server/internal/database"
	"cityhub-marketplace-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RequestHandler struct {
	DB *mongo.Database
}

type CreateRegistrationRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	BizName  string `json:"bizName" binding:"required"`
	Category string `json:"category" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

// CreateRequest nhận đơn đăng ký mở cửa hàng của một merchant tương lai.
// Đơn nằm ở trạng thái PENDING cho tới khi admin approve hoặc reject.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	uidInterface, _ := c.Get("uid")
	uid := uidInterface.(string)

	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	collection := h.DB.Collection(database.CollRequests)

	// Một uid chỉ có một đơn đang chờ
	count, err := collection.CountDocuments(context.Background(), bson.M{"uid": uid, "status": "PENDING"})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for request"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "A pending request already exists for this account"})
		return
	}

	newRequest := models.Request{
		RequestID: fmt.Sprintf("RQ-%s", uuid.New().String()[:8]),
		Name:      req.Name,
		Phone:     req.Phone,
		BizName:   req.BizName,
		Category:  req.Category,
		Address:   req.Address,
		UID:       uid,
		Status:    "PENDING",
		CreatedAt: time.Now(),
	}

	if _, err := collection.InsertOne(context.Background(), newRequest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}

	c.JSON(http.StatusCreated, newRequest)
}
