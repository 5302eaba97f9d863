// server/internal/api/routes/routes.go
package routes

import (
	"net/http"

	"cityhub-marketplace-api-server/config"
	"cityhub-marketplace-api-server/internal/api/handlers"
	"cityhub-marketplace-api-server/internal/api/middleware"
	"cityhub-marketplace-api-server/internal/models"
	"cityhub-marketplace-api-server/internal/s3"
	"cityhub-marketplace-api-server/internal/socket"
	"cityhub-marketplace-api-server/internal/watch"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter nhận vào các thành phần phụ thuộc và thiết lập các route
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
	watcher *watch.Watcher,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	// Khởi tạo các handlers
	authHandler := &handlers.AuthHandler{DB: db}
	storeHandler := &handlers.StoreHandler{DB: db}
	bookingHandler := &handlers.BookingHandler{DB: db}
	requestHandler := &handlers.RequestHandler{DB: db}
	vendorHandler := &handlers.VendorHandler{DB: db}
	adminHandler := &handlers.AdminHandler{DB: db, Cfg: cfg}
	uploadHandler := &handlers.UploadHandler{DB: db, S3Uploader: s3Uploader}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub, Watcher: watcher}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		// Route cho WebSocket (snapshot subscriptions + view-state session)
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// === CÁC ROUTE KHÔNG YÊU CẦU XÁC THỰC ===

		auth := apiV1.Group("/auth")
		{
			auth.POST("/session", authHandler.StartSession)
		}

		public := apiV1.Group("/")
		{
			// Khám phá store và tra cứu booking không cần JWT
			public.GET("/stores", storeHandler.ListStores)
			public.GET("/stores/:id", storeHandler.GetStoreByID)
			public.GET("/bookings/track/:token", bookingHandler.TrackBooking)
		}

		// PIN gate của operator console
		apiV1.POST("/admin/login", adminHandler.Login)

		// === CÁC ROUTE YÊU CẦU XÁC THỰC (PROTECTED) ===

		// Nhóm API quản trị, yêu cầu vai trò "admin"
		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate())
		admin.Use(middleware.Authorize(models.RoleAdmin))
		{
			admin.GET("/requests", adminHandler.ListRequests)
			admin.POST("/requests/:id/approve", adminHandler.ApproveRequest)
			admin.POST("/requests/:id/reject", adminHandler.RejectRequest)

			admin.GET("/stores", adminHandler.ListStores)
			admin.DELETE("/stores/:id", adminHandler.PurgeStore)
			admin.POST("/stores/:id/image", uploadHandler.UploadStoreImage)
		}

		// Nhóm các API nghiệp vụ chính, yêu cầu phiên đăng nhập
		sessionRoutes := apiV1.Group("/")
		sessionRoutes.Use(middleware.Authenticate())
		sessionRoutes.Use(middleware.Authorize(models.RoleCustomer, models.RoleVendor, models.RoleAdmin))
		{
			sessionRoutes.GET("/profile", authHandler.GetProfile)

			// Booking
			bookings := sessionRoutes.Group("/bookings")
			{
				bookings.POST("/", bookingHandler.CreateBooking)
				bookings.GET("/my", bookingHandler.MyBookings)
			}

			// Đơn đăng ký mở cửa hàng
			sessionRoutes.POST("/requests", requestHandler.CreateRequest)

			// Đăng nhập merchant (phiên nào cũng gọi được, role đổi sau khi thành công)
			sessionRoutes.POST("/vendors/login", vendorHandler.Login)

			// Dashboard merchant, chỉ cho vendor
			vendorRoutes := sessionRoutes.Group("/vendors")
			vendorRoutes.Use(middleware.Authorize(models.RoleVendor))
			{
				vendorRoutes.GET("/dashboard", vendorHandler.Dashboard)
				vendorRoutes.POST("/bookings/:id/complete", vendorHandler.CompleteBooking)
			}
		}
	}

	return router
}
