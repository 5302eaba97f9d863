package market

import (
	"strings"
	"testing"

	"cityhub-marketplace-api-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStores() []models.Store {
	return []models.Store{
		{StoreID: "ST-1", Name: "Glow Salon", Category: models.CategorySalon, IsLive: true},
		{StoreID: "ST-2", Name: "Sunrise Travel", Category: models.CategoryTravel, IsLive: true},
		{StoreID: "ST-3", Name: "Hidden Clinic", Category: models.CategoryClinic, IsLive: false},
		{StoreID: "ST-4", Name: "FixIt Repair", Category: models.CategoryRepair, IsLive: true},
	}
}

func TestFilterStoresNeverIncludesOffline(t *testing.T) {
	tests := []struct {
		name     string
		category string
		query    string
	}{
		{"no filter", "", ""},
		{"category filter", models.CategoryClinic, ""},
		{"query filter", "", "clinic"},
		{"both", models.CategoryClinic, "hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterStores(sampleStores(), tt.category, tt.query)
			for _, s := range got {
				assert.True(t, s.IsLive, "offline store %s leaked into results", s.StoreID)
			}
		})
	}
}

func TestFilterStoresCategory(t *testing.T) {
	got := FilterStores(sampleStores(), models.CategoryTravel, "")
	require.Len(t, got, 1)
	assert.Equal(t, "ST-2", got[0].StoreID)
}

func TestFilterStoresQuery(t *testing.T) {
	// So khớp substring, không phân biệt hoa thường, trên cả tên và category
	got := FilterStores(sampleStores(), "", "SALON")
	require.Len(t, got, 1)
	assert.Equal(t, "ST-1", got[0].StoreID)

	got = FilterStores(sampleStores(), "", "repair")
	require.Len(t, got, 1)
	assert.Equal(t, "ST-4", got[0].StoreID)

	got = FilterStores(sampleStores(), "", "no-such-store")
	assert.Empty(t, got)
}

func TestFilterStoresEmptyResultIsNotNil(t *testing.T) {
	got := FilterStores(nil, "", "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindService(t *testing.T) {
	store := models.Store{Services: []models.Service{
		{Name: "Haircut", Price: 150},
		{Name: "Hair Spa", Price: 350},
	}}

	svc, ok := FindService(store, "Haircut")
	require.True(t, ok)
	assert.Equal(t, 150.0, svc.Price)

	_, ok = FindService(store, "Massage")
	assert.False(t, ok)
}

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		category string
		price    float64
		numSeats int
		want     float64
	}{
		{"salon ignores seats", models.CategorySalon, 150, 3, 150},
		{"clinic ignores seats", models.CategoryClinic, 200, 0, 200},
		{"repair plain price", models.CategoryRepair, 80, 1, 80},
		{"travel multiplies seats", models.CategoryTravel, 100, 3, 300},
		{"travel default one seat", models.CategoryTravel, 100, 0, 100},
		{"travel negative seats clamps", models.CategoryTravel, 100, -2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FinalPrice(tt.category, models.Service{Price: tt.price}, tt.numSeats)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewDisplayIDFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewDisplayID()
		require.Len(t, id, 8)
		assert.True(t, strings.HasPrefix(id, DisplayIDPrefix))
		for _, r := range id[len(DisplayIDPrefix):] {
			assert.Contains(t, base36Chars, string(r))
		}
		// Token đã ở dạng chuẩn hóa sẵn
		assert.Equal(t, id, NormalizeDisplayID(id))
	}
}

func TestNormalizeDisplayID(t *testing.T) {
	assert.Equal(t, "CH-AB12C", NormalizeDisplayID("ch-ab12c"))
	assert.Equal(t, "CH-AB12C", NormalizeDisplayID("  Ch-Ab12c "))
}

func TestRevenueCountsOnlyCompleted(t *testing.T) {
	bookings := []models.Booking{
		{StoreID: "ST-1", Status: models.BookingCompleted, TotalPrice: 150},
		{StoreID: "ST-1", Status: models.BookingPending, TotalPrice: 999},
		{StoreID: "ST-1", Status: models.BookingCompleted, TotalPrice: 350},
		{StoreID: "ST-2", Status: models.BookingCompleted, TotalPrice: 500},
	}

	assert.Equal(t, 500.0, Revenue(bookings, "ST-1"))
	assert.Equal(t, 500.0, Revenue(bookings, "ST-2"))
	assert.Equal(t, 0.0, Revenue(bookings, "ST-3"))
}

func TestRevenueChangesOnlyAfterCompletion(t *testing.T) {
	bookings := []models.Booking{
		{StoreID: "ST-1", Status: models.BookingPending, TotalPrice: 150},
	}
	assert.Equal(t, 0.0, Revenue(bookings, "ST-1"))

	bookings[0].Status = models.BookingCompleted
	assert.Equal(t, 150.0, Revenue(bookings, "ST-1"))
}

func TestPendingQueue(t *testing.T) {
	bookings := []models.Booking{
		{DisplayID: "CH-AAAAA", StoreID: "ST-1", Status: models.BookingPending},
		{DisplayID: "CH-BBBBB", StoreID: "ST-1", Status: models.BookingCompleted},
		{DisplayID: "CH-CCCCC", StoreID: "ST-2", Status: models.BookingPending},
		{DisplayID: "CH-DDDDD", StoreID: "ST-1", Status: models.BookingPending},
	}

	queue := PendingQueue(bookings, "ST-1")
	require.Len(t, queue, 2)
	// Giữ nguyên thứ tự đầu vào
	assert.Equal(t, "CH-AAAAA", queue[0].DisplayID)
	assert.Equal(t, "CH-DDDDD", queue[1].DisplayID)

	assert.Empty(t, PendingQueue(bookings, "ST-9"))
}

// Kịch bản end-to-end về giá: khách đặt dịch vụ salon 150 không có khái niệm
// ghế -> phải trả 150; đặt tuyến travel 100 với 3 ghế -> phải trả 300.
func TestPriceScenarios(t *testing.T) {
	salonService := models.Service{Name: "Haircut", Price: 150}
	payable := FinalPrice(models.CategorySalon, salonService, 0)
	assert.Equal(t, 150.0, payable)

	travelService := models.Service{Name: "City - Dalat", Price: 100}
	payable = FinalPrice(models.CategoryTravel, travelService, 3)
	assert.Equal(t, 300.0, payable)
}
