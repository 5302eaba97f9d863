// server/cmd/api/main.go
package main

import (
	"context"
	"log"

	"cityhub-marketplace-api-server/config"
	"cityhub-marketplace-api-server/internal/api/routes"
	"cityhub-marketplace-api-server/internal/auth"
	"cityhub-marketplace-api-server/internal/database"
	"cityhub-marketplace-api-server/internal/s3"
	"cityhub-marketplace-api-server/internal/socket"
	"cityhub-marketplace-api-server/internal/watch"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Nạp .env (nếu có) rồi load configuration
	_ = godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	auth.Init(cfg.JWT.Secret, cfg.JWT.Expiration)

	// 2. Kết nối MongoDB
	db, err := database.Connect(cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Client().Disconnect(context.Background())

	// 3. Index + seed dữ liệu demo khi database trống
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	if err := database.SeedDemoCatalog(db); err != nil {
		log.Fatalf("Failed to seed demo catalog: %v", err)
	}

	// 4. Khởi tạo S3 uploader (ảnh đại diện store)
	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Failed to initialize S3 uploader: %v", err)
	}

	// 5. Hub WebSocket + watcher đẩy snapshot khi collection thay đổi
	wsHub := socket.NewHub()
	watcher := &watch.Watcher{DB: db, Hub: wsHub}
	watcher.Start(context.Background())

	// 6. Truyền tất cả các thành phần cần thiết vào router
	router := routes.SetupRouter(cfg, db, s3Uploader, wsHub, watcher)

	// 7. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
