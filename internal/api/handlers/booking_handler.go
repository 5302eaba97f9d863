// server/internal/api/handlers/booking_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"cityhub-marketplace-api-server/internal/database"
	"cityhub-marketplace-api-server/internal/market"
	"cityhub-marketplace-api-server/internal/metrics"
	"cityhub-marketplace-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingHandler struct {
	DB *mongo.Database
}

type CreateBookingRequest struct {
	StoreID       string `json:"storeID" binding:"required"`
	ServiceName   string `json:"serviceName" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	Date          string `json:"date" binding:"required"`

	// Metadata theo category của store: salon/clinic/repair cần Time,
	// travel cần Source + Destination (NumSeats mặc định 1).
	Time        string `json:"time"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	NumSeats    int    `json:"numSeats"`
}

// Số lần thử lại khi displayID sinh ra bị trùng.
const displayIDRetries = 3

// CreateBooking tạo booking mới: ghi bản ghi toàn cục và bản mirror trong
// lịch sử của khách trong CÙNG một transaction, giá được tính phía server.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	uidInterface, _ := c.Get("uid")
	uid := uidInterface.(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var store models.Store
	err := h.DB.Collection(database.CollStores).FindOne(context.Background(), bson.M{"storeID": req.StoreID}).Decode(&store)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve store"})
		}
		return
	}
	if !store.IsLive {
		c.JSON(http.StatusConflict, gin.H{"error": "Store is not accepting bookings"})
		return
	}

	service, ok := market.FindService(store, req.ServiceName)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Service does not belong to this store"})
		return
	}

	// Metadata bắt buộc phụ thuộc vào category của store, không phải của client
	if store.Category == models.CategoryTravel {
		if req.Source == "" || req.Destination == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Source and destination are required for travel bookings"})
			return
		}
	} else {
		if req.Time == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Time slot is required"})
			return
		}
	}

	numSeats := req.NumSeats
	if store.Category != models.CategoryTravel {
		numSeats = 0
	} else if numSeats < 1 {
		numSeats = 1
	}

	booking := models.Booking{
		StoreID:       store.StoreID,
		StoreName:     store.Name,
		Category:      store.Category,
		ServiceName:   service.Name,
		TotalPrice:    market.FinalPrice(store.Category, service, numSeats),
		Status:        models.BookingPending,
		UID:           uid,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		Time:          req.Time,
		Source:        req.Source,
		Destination:   req.Destination,
		NumSeats:      numSeats,
		CreatedAt:     time.Now(),
	}

	// Unique index trên displayID bắt va chạm; thử lại với token mới.
	var lastErr error
	for attempt := 0; attempt < displayIDRetries; attempt++ {
		booking.DisplayID = market.NewDisplayID()

		lastErr = database.WithTransaction(context.Background(), h.DB, func(sc mongo.SessionContext) error {
			if _, err := h.DB.Collection(database.CollBookings).InsertOne(sc, booking); err != nil {
				return err
			}
			_, err := h.DB.Collection(database.CollUserBookings).InsertOne(sc, booking)
			return err
		})
		if lastErr == nil {
			break
		}
		if !mongo.IsDuplicateKeyError(lastErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking", "details": lastErr.Error()})
			return
		}
	}
	if lastErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking", "details": lastErr.Error()})
		return
	}

	metrics.BookingsCreated.Inc()
	c.JSON(http.StatusCreated, booking)
}

// TrackBooking tra cứu booking theo token hiển thị, không phân biệt hoa thường.
func (h *BookingHandler) TrackBooking(c *gin.Context) {
	token := market.NormalizeDisplayID(c.Param("token"))

	var booking models.Booking
	err := h.DB.Collection(database.CollBookings).FindOne(context.Background(), bson.M{"displayID": token}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve booking"})
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// MyBookings trả về lịch sử booking của phiên hiện tại (đọc từ mirror).
func (h *BookingHandler) MyBookings(c *gin.Context) {
	uidInterface, _ := c.Get("uid")
	uid := uidInterface.(string)

	cursor, err := h.DB.Collection(database.CollUserBookings).Find(context.Background(), bson.M{"uid": uid})
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

	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
