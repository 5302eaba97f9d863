// server/internal/market/pricing.go
package market

import "cityhub-marketplace-api-server/internal/models"

// FinalPrice tính giá phải trả cho một booking.
// Với store loại travel, giá nhân theo số ghế (mặc định 1); các loại khác
// lấy nguyên giá dịch vụ.
func FinalPrice(category string, service models.Service, numSeats int) float64 {
	if category != models.CategoryTravel {
		return service.Price
	}
	if numSeats < 1 {
		numSeats = 1
	}
	return service.Price * float64(numSeats)
}
