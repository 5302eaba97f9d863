// server/internal/api/handlers/store_handler.go
package handlers

import (
	"context"
	"net/http"

	"cityhub-marketplace-api-server/internal/database"
	"cityhub-marketplace-api-server/internal/market"
	"cityhub-marketplace-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StoreHandler struct {
	DB *mongo.Database
}

// ListStores trả về danh sách store cho trang chủ, đã lọc theo
// category và chuỗi tìm kiếm. Store chưa live không bao giờ xuất hiện.
func (h *StoreHandler) ListStores(c *gin.Context) {
	category := c.Query("category")
	query := c.Query("q")

	if category != "" && !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	collection := h.DB.Collection(database.CollStores)
	cursor, err := collection.Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query stores"})
		return
	}
	defer cursor.Close(context.Background())

	var stores []models.Store
	if err = cursor.All(context.Background(), &stores); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode stores"})
		return
	}

	c.JSON(http.StatusOK, market.FilterStores(stores, category, query))
}

// GetStoreByID trả về chi tiết một store cho màn detail.
func (h *StoreHandler) GetStoreByID(c *gin.Context) {
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

	c.JSON(http.StatusOK, store)
}
