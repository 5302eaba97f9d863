// server/internal/database/seeder.go
package database

import (
	"context"
	"log"
	"time"

	"cityhub-marketplace-api-server/internal/auth"
	"cityhub-marketplace-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedDemoCatalog tạo một store mẫu nếu database còn trống,
// để front-end có dữ liệu hiển thị ngay sau khi dựng môi trường.
func SeedDemoCatalog(db *mongo.Database) error {
	collection := db.Collection(CollStores)

	count, err := collection.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Store catalog not empty. Seeding skipped.")
		return nil
	}

	log.Println("Empty store catalog. Seeding demo stores...")
	now := time.Now()
	demoStores := []interface{}{
		models.Store{
			StoreID:    "ST-DEMO0001",
			Name:       "Glow Salon",
			Category:   models.CategorySalon,
			Address:    "12 Nguyen Trai, District 1",
			IsLive:     true,
			MerchantID: "CH-DEMO1",
			Services: []models.Service{
				{Name: "Haircut", Price: 150, Duration: 45},
				{Name: "Hair Spa", Price: 350, Duration: 60},
			},
			Staff:     []models.Staff{{Name: "Linh"}, {Name: "Mai"}},
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Store{
			StoreID:    "ST-DEMO0002",
			Name:       "Sunrise Travel",
			Category:   models.CategoryTravel,
			Address:    "45 Le Loi, District 3",
			IsLive:     true,
			MerchantID: "CH-DEMO2",
			Services: []models.Service{
				{Name: "City - Dalat", Price: 100, DistanceKM: 300},
				{Name: "City - Nha Trang", Price: 120, DistanceKM: 430},
			},
			Staff:     []models.Staff{{Name: "Tuan"}},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := collection.InsertMany(context.Background(), demoStores); err != nil {
		return err
	}

	// Mỗi store phải có đúng một credential tương ứng, kể cả store demo.
	demoSecret, err := auth.HashPassword("demo-secret")
	if err != nil {
		return err
	}
	demoCreds := []interface{}{
		models.VendorCredential{MerchantID: "CH-DEMO1", SecretHash: demoSecret, StoreID: "ST-DEMO0001", BusinessName: "Glow Salon", CreatedAt: now},
		models.VendorCredential{MerchantID: "CH-DEMO2", SecretHash: demoSecret, StoreID: "ST-DEMO0002", BusinessName: "Sunrise Travel", CreatedAt: now},
	}
	if _, err := db.Collection(CollVendorCreds).InsertMany(context.Background(), demoCreds); err != nil {
		return err
	}

	log.Println("Demo stores seeded successfully.")
	return nil
}
