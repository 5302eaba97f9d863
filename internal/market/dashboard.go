// server/internal/market/dashboard.go
package market

import "cityhub-marketplace-api-server/internal/models"

// Revenue là tổng totalPrice của các booking đã hoàn tất của một store.
func Revenue(bookings []models.Booking, storeID string) float64 {
	var total float64
	for _, b := range bookings {
		if b.StoreID == storeID && b.Status == models.BookingCompleted {
			total += b.TotalPrice
		}
	}
	return total
}

// PendingQueue trả về các booking đang chờ xử lý của một store,
// giữ nguyên thứ tự đầu vào.
func PendingQueue(bookings []models.Booking, storeID string) []models.Booking {
	queue := []models.Booking{}
	for _, b := range bookings {
		if b.StoreID == storeID && b.Status == models.BookingPending {
			queue = append(queue, b)
		}
	}
	return queue
}
