package router

import (
	"fmt"
	"strings"

	"github.com/foodgo-next/internal/cache"
	"github.com/foodgo-next/internal/config"
	"github.com/foodgo-next/internal/http/handlers"
	"github.com/foodgo-next/internal/http/response"
	"github.com/foodgo-next/internal/logger"
	"github.com/foodgo-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := handlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "fg"
	}
	redisClient := cache.Client()
	orderRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:order", redisPrefix),
		WindowSeconds: cfg.Security.OrderRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.OrderRateLimit.MaxAttempts,
		Message:       "order creation too frequent",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static("/uploads", "./"+strings.TrimPrefix(cfg.Upload.Dir, "./"))

	r.GET("/healthz", func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")
	{
		users := apiV1.Group("/users")
		{
			users.POST("", handler.CreateUser)
			users.GET("", handler.ListUsers)
			users.GET("/:uid", handler.GetUser)
			users.PATCH("/:uid", handler.UpdateUser)
			users.DELETE("/:uid", handler.DeleteUser)

			users.GET("/:uid/addresses", handler.ListUserAddresses)
			users.GET("/:uid/addresses/default", handler.GetUserDefaultAddress)
			users.GET("/:uid/cart", handler.ListUserCart)
			users.DELETE("/:uid/cart", handler.ClearUserCart)
			users.GET("/:uid/wallet", handler.GetWallet)
			users.POST("/:uid/wallet/topup", handler.TopupWallet)
			users.POST("/:uid/wallet/deduct", handler.DeductWallet)
			users.POST("/:uid/wallet/refund", handler.RefundWallet)
			users.GET("/:uid/wallet/transactions", handler.ListWalletTransactions)
			users.GET("/:uid/search-history", handler.ListSearchHistory)
			users.DELETE("/:uid/search-history", handler.ClearSearchHistory)
		}

		addresses := apiV1.Group("/addresses")
		{
			addresses.POST("", handler.CreateAddress)
			addresses.GET("/:id", handler.GetAddress)
			addresses.PATCH("/:id", handler.UpdateAddress)
			addresses.DELETE("/:id", handler.DeleteAddress)
		}

		restaurants := apiV1.Group("/restaurants")
		{
			restaurants.POST("", handler.CreateRestaurant)
			restaurants.GET("", handler.ListRestaurants)
			restaurants.GET("/:id", handler.GetRestaurant)
			restaurants.PATCH("/:id", handler.UpdateRestaurant)
			restaurants.POST("/:id/image", handler.UploadRestaurantImage)
			restaurants.DELETE("/:id/image", handler.DeleteRestaurantImage)
			restaurants.DELETE("/:id", handler.DeleteRestaurant)
		}

		categories := apiV1.Group("/categories")
		{
			categories.POST("", handler.CreateCategory)
			categories.GET("", handler.ListCategories)
			categories.GET("/:id", handler.GetCategory)
			categories.PATCH("/:id", handler.UpdateCategory)
			categories.DELETE("/:id", handler.DeleteCategory)
		}

		menuItems := apiV1.Group("/menu-items")
		{
			menuItems.POST("", handler.CreateMenuItem)
			menuItems.GET("", handler.ListMenuItems)
			menuItems.GET("/:id", handler.GetMenuItem)
			menuItems.PATCH("/:id", handler.UpdateMenuItem)
			menuItems.DELETE("/:id", handler.DeleteMenuItem)

			menuItems.GET("/:id/images", handler.ListMenuItemImages)
			menuItems.POST("/:id/images", handler.AddMenuItemImage)
			menuItems.POST("/:id/images/upload", handler.UploadMenuItemImage)
			menuItems.POST("/:id/images/upload-batch", handler.UploadMenuItemImages)
		}
		apiV1.DELETE("/menu-images/:image_id", handler.DeleteMenuItemImage)

		cart := apiV1.Group("/cart")
		{
			cart.POST("/items", handler.AddCartItem)
			cart.PATCH("/items/:id", handler.UpdateCartItem)
			cart.DELETE("/items/:id", handler.RemoveCartItem)
		}

		orders := apiV1.Group("/orders")
		{
			orders.POST("", RateLimitMiddleware(redisClient, orderRule, KeyByIPAndJSONField("user_uid")), handler.CreateOrder)
			orders.GET("", handler.ListOrders)
			orders.GET("/:id", handler.GetOrder)
			orders.PATCH("/:id", handler.UpdateOrder)
			orders.DELETE("/:id", handler.DeleteOrder)
			orders.GET("/:id/items", handler.ListOrderItems)
		}

		orderItems := apiV1.Group("/order-items")
		{
			orderItems.POST("", handler.CreateOrderItem)
			orderItems.GET("/:id", handler.GetOrderItem)
			orderItems.PATCH("/:id", handler.UpdateOrderItem)
			orderItems.DELETE("/:id", handler.DeleteOrderItem)
		}

		vouchers := apiV1.Group("/vouchers")
		{
			vouchers.POST("", handler.CreateVoucher)
			vouchers.GET("", handler.ListVouchers)
			vouchers.GET("/:id", handler.GetVoucher)
			vouchers.GET("/by-code/:code", handler.GetVoucherByCode)
			vouchers.PATCH("/:id", handler.UpdateVoucher)
			vouchers.DELETE("/:id", handler.DeleteVoucher)
		}

		reviews := apiV1.Group("/reviews")
		{
			reviews.POST("", handler.CreateReview)
			reviews.GET("", handler.ListReviews)
			reviews.GET("/:id", handler.GetReview)
			reviews.PATCH("/:id", handler.UpdateReview)
			reviews.DELETE("/:id", handler.DeleteReview)
		}

		banners := apiV1.Group("/banners")
		{
			banners.POST("", handler.CreateBanner)
			banners.POST("/upload", handler.UploadBanner)
			banners.GET("", handler.ListBanners)
			banners.GET("/:id", handler.GetBanner)
			banners.PATCH("/:id", handler.UpdateBanner)
			banners.DELETE("/:id", handler.DeleteBanner)
		}
	}

	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "route not found")
	})

	return r
}
