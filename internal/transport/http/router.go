package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/Aben-G/E-commerce-main/internal/handlers"
	"github.com/Aben-G/E-commerce-main/internal/middleware/auth"
)

type Deps struct {
	DB               *gorm.DB
	Gate             *auth.Gate
	AuthHandler      *handlers.AuthHandler
	ProductHandler   *handlers.ProductHandler
	UserHandler      *handlers.UserHandler
	UploadHandler    *handlers.UploadHandler
	DashboardHandler *handlers.DashboardHandler
	SearchHandler    *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.Static("/uploads", d.UploadHandler.Dir)

	api := e.Group("/api")

	api.POST("/register", d.AuthHandler.Register)
	api.POST("/login", d.AuthHandler.Login)

	api.GET("/products", d.ProductHandler.GetProducts)
	api.GET("/products/search", d.SearchHandler.Search)
	api.GET("/products/:id", d.ProductHandler.GetProduct)

	// the admin gate applies per-route, public routes above bypass it
	admin := api.Group("", d.Gate.AdminOnly)

	admin.POST("/upload", d.UploadHandler.Upload, middleware.BodyLimit("5M"))

	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.PUT("/products/:id", d.ProductHandler.UpdateProduct)
	admin.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
	admin.GET("/products/top", d.DashboardHandler.TopProducts)

	admin.GET("/dashboard/stats", d.DashboardHandler.Stats)
	admin.GET("/dashboard/recent-product", d.DashboardHandler.RecentProduct)
	admin.GET("/sales", d.DashboardHandler.Sales)

	admin.GET("/users", d.UserHandler.GetUsers)
	admin.POST("/users", d.UserHandler.CreateUser)
	admin.PUT("/users/:id", d.UserHandler.UpdateUser)
	admin.DELETE("/users/:id", d.UserHandler.DeleteUser)
}
