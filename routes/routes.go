package routes

import (
	"github.com/Ayush29kumar/Restraunt-SaaS/configs"
	"github.com/Ayush29kumar/Restraunt-SaaS/controllers"
	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/middlewares"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
	"github.com/Ayush29kumar/Restraunt-SaaS/services"
	"github.com/Ayush29kumar/Restraunt-SaaS/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store *session.Store, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	restRepo := repository.NewRestaurantRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, userRepo)
	menuSvc := services.NewMenuService(menuRepo)
	tableSvc := services.NewTableService(tableRepo, restRepo, cfg.BaseURL)
	staffSvc := services.NewStaffService(userRepo)
	restSvc := services.NewRestaurantService(db, restRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	customerCtrl := controllers.NewCustomerController(store, cartSvc, orderSvc, menuSvc, restRepo, tableRepo)
	staffCtrl := controllers.NewStaffController(orderSvc)
	adminCtrl := controllers.NewAdminController(menuSvc, tableSvc, staffSvc, orderSvc)
	superCtrl := controllers.NewSuperAdminController(restSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Customer flow (browsing session, no JWT)
	cust := r.Group("/r/:restaurantSlug", middlewares.SessionMiddleware(store))
	{
		cust.POST("/table/:tableNumber", customerCtrl.TableEntry)
		cust.GET("/menu", customerCtrl.ViewMenu)
		cust.GET("/cart", customerCtrl.ViewCart)
		cust.POST("/cart/items", customerCtrl.AddToCart)
		cust.PATCH("/cart/items/:itemId", customerCtrl.UpdateCartItem)
		cust.POST("/checkout", customerCtrl.Checkout)
		cust.GET("/orders/:id/status", customerCtrl.OrderStatus)
		cust.GET("/my-orders", customerCtrl.MyOrders)
	}

	// Staff (staff/admin/superadmin)
	staff := r.Group("/staff", middlewares.AuthMiddleware(cfg.JWTSecret,
		entity.RoleStaff, entity.RoleAdmin, entity.RoleSuperAdmin))
	{
		staff.GET("/dashboard", staffCtrl.Dashboard)
		staff.GET("/orders", staffCtrl.ListOrders)
		staff.GET("/orders/:id", staffCtrl.OrderDetail)
		staff.PATCH("/orders/:id/status",
			middlewares.RequirePermission(entity.PermUpdateOrderStatus), staffCtrl.UpdateOrderStatus)
		staff.PATCH("/orders/:id/payment",
			middlewares.RequirePermission(entity.PermManageOrders), staffCtrl.UpdatePayment)
		staff.GET("/tables/:tableNumber/order", staffCtrl.OrderByTable)
	}

	// Admin (admin/superadmin)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret,
		entity.RoleAdmin, entity.RoleSuperAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.GET("/menu-items", adminCtrl.ListMenuItems)
		admin.POST("/menu-items", adminCtrl.CreateMenuItem)
		admin.GET("/menu-items/:id", adminCtrl.MenuItemDetail)
		admin.PATCH("/menu-items/:id", adminCtrl.UpdateMenuItem)
		admin.PATCH("/menu-items/:id/availability", adminCtrl.SetMenuItemAvailability)
		admin.DELETE("/menu-items/:id", adminCtrl.DeleteMenuItem)

		admin.GET("/tables", adminCtrl.ListTables)
		admin.POST("/tables", adminCtrl.CreateTable)
		admin.GET("/tables/:id", adminCtrl.TableDetail)
		admin.PATCH("/tables/:id/status", adminCtrl.UpdateTableStatus)
		admin.DELETE("/tables/:id", adminCtrl.DeleteTable)

		admin.GET("/staff", adminCtrl.ListStaff)
		admin.POST("/staff", adminCtrl.CreateStaff)
		admin.PATCH("/staff/:id/toggle", adminCtrl.ToggleStaff)
		admin.DELETE("/staff/:id", adminCtrl.DeleteStaff)

		admin.GET("/orders", adminCtrl.ListOrders)
		admin.GET("/orders/:id", adminCtrl.OrderDetail)
	}

	// Superadmin
	super := r.Group("/superadmin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleSuperAdmin))
	{
		super.GET("/dashboard", superCtrl.Dashboard)
		super.GET("/restaurants", superCtrl.List)
		super.POST("/restaurants", superCtrl.Create)
		super.GET("/restaurants/:id", superCtrl.Detail)
		super.PATCH("/restaurants/:id", superCtrl.Update)
		super.DELETE("/restaurants/:id", superCtrl.Delete)
	}
}
