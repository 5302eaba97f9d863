// server/internal/api/handlers/auth_handler.go
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"cityhub-marketplace-api-server/internal/auth"
	"cityhub-marketplace-api-server/internal/database"
	"cityhub-marketplace-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuthHandler struct {
	DB *mongo.Database
}

// StartSession là bootstrap identity: nếu request mang token hợp lệ thì
// resume phiên cũ, nếu không thì tạo phiên ẩn danh mới với profile customer.
// Profile được tạo lazy ở lần sign-in đầu tiên.
func (h *AuthHandler) StartSession(c *gin.Context) {
	users := h.DB.Collection(database.CollUsers)

	// Thử resume phiên cũ từ header Authorization (nếu có)
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if claims, err := auth.ParseJWT(tokenString); err == nil {
			var profile models.User
			err := users.FindOne(context.Background(), bson.M{"uid": claims.UID}).Decode(&profile)
			if err == nil {
				c.JSON(http.StatusOK, gin.H{"token": tokenString, "profile": profile})
				return
			}
			// Token hợp lệ nhưng profile đã mất -> rơi xuống tạo phiên mới
		}
	}

	newProfile := models.User{
		UID:       uuid.New().String(),
		Role:      models.RoleCustomer,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := users.InsertOne(context.Background(), newProfile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}

	token, err := auth.GenerateJWT(newProfile.UID, newProfile.Role, "", "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "profile": newProfile})
}

// GetProfile trả về profile của phiên hiện tại.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	uidInterface, _ := c.Get("uid")
	uid := uidInterface.(string)

	var profile models.User
	err := h.DB.Collection(database.CollUsers).FindOne(context.Background(), bson.M{"uid": uid}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}
