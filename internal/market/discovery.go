// server/internal/market/discovery.go
package market

import (
	"strings"

	"cityhub-marketplace-api-server/internal/models"
)

// FilterStores lọc danh sách store cho trang chủ:
// chỉ lấy store đang live, đúng category nếu có filter, và tên hoặc category
// chứa chuỗi tìm kiếm (so khớp substring, không phân biệt hoa thường).
func FilterStores(stores []models.Store, category, query string) []models.Store {
	q := strings.ToLower(strings.TrimSpace(query))

	filtered := []models.Store{}
	for _, s := range stores {
		if !s.IsLive {
			continue
		}
		if category != "" && s.Category != category {
			continue
		}
		if q != "" {
			name := strings.ToLower(s.Name)
			cat := strings.ToLower(s.Category)
			if !strings.Contains(name, q) && !strings.Contains(cat, q) {
				continue
			}
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// FindService tìm dịch vụ theo tên trong danh sách dịch vụ của store.
func FindService(store models.Store, serviceName string) (models.Service, bool) {
	for _, svc := range store.Services {
		if svc.Name == serviceName {
			return svc, true
		}
	}
	return models.Service{}, false
}
