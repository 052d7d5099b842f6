package provider

import (
	"github.com/foodgo-next/internal/cache"
	"github.com/foodgo-next/internal/config"
	"github.com/foodgo-next/internal/logger"
	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"
	"github.com/foodgo-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo          repository.UserRepository
	AddressRepo       repository.AddressRepository
	RestaurantRepo    repository.RestaurantRepository
	CategoryRepo      repository.CategoryRepository
	MenuItemRepo      repository.MenuItemRepository
	CartRepo          repository.CartRepository
	OrderRepo         repository.OrderRepository
	VoucherRepo       repository.VoucherRepository
	WalletRepo        repository.WalletRepository
	ReviewRepo        repository.ReviewRepository
	BannerRepo        repository.BannerRepository
	SearchHistoryRepo repository.SearchHistoryRepository

	// Services
	UploadService        *service.UploadService
	UserService          *service.UserService
	AddressService       *service.AddressService
	RestaurantService    *service.RestaurantService
	CategoryService      *service.CategoryService
	MenuService          *service.MenuService
	CartService          *service.CartService
	OrderService         *service.OrderService
	VoucherService       *service.VoucherService
	WalletService        *service.WalletService
	ReviewService        *service.ReviewService
	BannerService        *service.BannerService
	SearchHistoryService *service.SearchHistoryService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.RestaurantRepo = repository.NewRestaurantRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.MenuItemRepo = repository.NewMenuItemRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.VoucherRepo = repository.NewVoucherRepository(db)
	c.WalletRepo = repository.NewWalletRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.BannerRepo = repository.NewBannerRepository(db)
	c.SearchHistoryRepo = repository.NewSearchHistoryRepository(db)
}

func (c *Container) initServices() {
	c.UploadService = service.NewUploadService(c.Config)
	c.UserService = service.NewUserService(c.UserRepo)
	c.AddressService = service.NewAddressService(c.AddressRepo)
	c.RestaurantService = service.NewRestaurantService(c.RestaurantRepo, c.UploadService)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.MenuService = service.NewMenuService(c.MenuItemRepo, c.UploadService)
	c.CartService = service.NewCartService(c.CartRepo, c.MenuItemRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.VoucherRepo)
	c.VoucherService = service.NewVoucherService(c.VoucherRepo)
	c.WalletService = service.NewWalletService(c.WalletRepo)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.OrderRepo)
	c.BannerService = service.NewBannerService(c.BannerRepo, c.UploadService)
	c.SearchHistoryService = service.NewSearchHistoryService(c.SearchHistoryRepo)
}
