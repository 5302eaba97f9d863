// server/internal/api/handlers/upload_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cityhub-marketplace-api-server/internal/database"
	"cityhub-marketplace-api-server/internal/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UploadHandler struct {
	DB         *mongo.Database
	S3Uploader *s3.Uploader
}

// UploadStoreImage nhận ảnh đại diện của store từ operator console,
// đẩy lên S3 và lưu URL vào document store.
func (h *UploadHandler) UploadStoreImage(c *gin.Context) {
	storeID := c.Param("id")

	count, err := h.DB.Collection(database.CollStores).CountDocuments(context.Background(), bson.M{"storeID": storeID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for store"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	objectKey := fmt.Sprintf("stores/%s/%s", storeID, uuid.New().String())
	url, err := h.S3Uploader.UploadFile(context.Background(), file, objectKey, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image", "details": err.Error()})
		return
	}

	_, err = h.DB.Collection(database.CollStores).UpdateOne(
		context.Background(),
		bson.M{"storeID": storeID},
		bson.M{"$set": bson.M{"imageUrl": url, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "imageUrl": url})
}
