package main

import (
	"time"

	"github.com/foodgo-next/internal/config"
	"github.com/foodgo-next/internal/constants"
	"github.com/foodgo-next/internal/logger"
	"github.com/foodgo-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "快餐", Description: "汉堡、炸鸡、便当"},
		{Name: "面食", Description: "拉面、米线、意面"},
		{Name: "甜品饮品", Description: "蛋糕、奶茶、咖啡"},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Name)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
		}
	}

	var fastFood models.Category
	if err := models.DB.Where("name = ?", "快餐").First(&fastFood).Error; err != nil {
		stdLog.Fatalf("Failed to load category: %v", err)
	}

	// 添加示例用户
	users := []models.User{
		{UID: "demo-customer", Email: "customer@example.com", Name: "演示顾客", Role: constants.UserRoleCustomer},
		{UID: "demo-merchant", Email: "merchant@example.com", Name: "演示商家", Role: constants.UserRoleMerchant},
		{UID: "demo-shipper", Email: "shipper@example.com", Name: "演示骑手", Role: constants.UserRoleShipper},
	}
	for _, user := range users {
		var existing models.User
		if err := models.DB.Where("uid = ?", user.UID).First(&existing).Error; err != nil {
			if err := models.DB.Create(&user).Error; err != nil {
				stdLog.Printf("Failed to create user %s: %v", user.UID, err)
			} else {
				stdLog.Printf("Created user: %s", user.UID)
			}
		} else {
			stdLog.Printf("User already exists: %s", user.UID)
		}
	}

	// 添加示例餐厅与菜品
	var restaurant models.Restaurant
	if err := models.DB.Where("name = ?", "示例汉堡店").First(&restaurant).Error; err != nil {
		restaurant = models.Restaurant{
			OwnerUID:  "demo-merchant",
			Name:      "示例汉堡店",
			Address:   "示例路 1 号",
			Phone:     "13800000000",
			OpenTime:  "09:00",
			CloseTime: "22:00",
			Status:    constants.RestaurantStatusOpen,
		}
		if err := models.DB.Create(&restaurant).Error; err != nil {
			stdLog.Fatalf("Failed to create restaurant: %v", err)
		}
		stdLog.Printf("Created restaurant: %s", restaurant.Name)
	}

	menuItems := []models.MenuItem{
		{RestaurantID: restaurant.ID, CategoryID: fastFood.ID, Name: "经典牛肉堡", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(28.00)), Available: true},
		{RestaurantID: restaurant.ID, CategoryID: fastFood.ID, Name: "香辣鸡腿堡", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(22.50)), Available: true},
		{RestaurantID: restaurant.ID, CategoryID: fastFood.ID, Name: "薯条(大)", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(12.00)), Available: true},
	}
	for _, item := range menuItems {
		var existing models.MenuItem
		if err := models.DB.Where("restaurant_id = ? AND name = ?", item.RestaurantID, item.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create menu item %s: %v", item.Name, err)
			} else {
				stdLog.Printf("Created menu item: %s", item.Name)
			}
		} else {
			stdLog.Printf("Menu item already exists: %s", item.Name)
		}
	}

	// 添加示例优惠券
	end := time.Now().AddDate(0, 1, 0)
	vouchers := []models.Voucher{
		{Code: "WELCOME10", Title: "新客立减 10 元", DiscountType: constants.DiscountTypeFixed, DiscountValue: models.NewMoneyFromDecimal(decimal.NewFromInt(10)), EndDate: &end, Status: constants.VoucherStatusActive, CreatedByAdmin: true},
		{Code: "SHOP5", Title: "店铺满减 5 元", DiscountType: constants.DiscountTypeFixed, DiscountValue: models.NewMoneyFromDecimal(decimal.NewFromInt(5)), EndDate: &end, Status: constants.VoucherStatusActive, RestaurantID: &restaurant.ID},
	}
	for _, voucher := range vouchers {
		var existing models.Voucher
		if err := models.DB.Where("code = ?", voucher.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&voucher).Error; err != nil {
				stdLog.Printf("Failed to create voucher %s: %v", voucher.Code, err)
			} else {
				stdLog.Printf("Created voucher: %s", voucher.Code)
			}
		} else {
			stdLog.Printf("Voucher already exists: %s", voucher.Code)
		}
	}

	stdLog.Println("Seed completed")
}
