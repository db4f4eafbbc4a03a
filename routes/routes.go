package routes

import (
	"net/http"

	"orderdesk-backend/config"
	"orderdesk-backend/controllers"
	"orderdesk-backend/operations"
	"orderdesk-backend/services"
	"orderdesk-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps are the components the router hands to its controllers.
type Deps struct {
	Ops         *operations.Operations
	Accounts    *services.AdminAccounts
	Tokens      utils.TokenConfig
	CORSOrigins []string
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	allowed := make(map[string]bool, len(deps.CORSOrigins))
	for _, o := range deps.CORSOrigins {
		allowed[o] = true
	}
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return allowed[origin]
		},
	}))

	r.Use(config.PerformanceLogger())

	authController := &controllers.AuthController{Accounts: deps.Accounts, Tokens: deps.Tokens}
	serviceController := &controllers.ServiceController{Ops: deps.Ops}
	orderController := &controllers.OrderController{Ops: deps.Ops}
	dashboardController := &controllers.DashboardController{Ops: deps.Ops}
	adminOnly := utils.AdminMiddleware(deps.Tokens)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", adminOnly, authController.Me)
	}

	api := r.Group("/api")
	{
		api.GET("/services", serviceController.GetServices)
		api.POST("/orders", orderController.SubmitOrder)
		api.GET("/orders/track", orderController.TrackOrders)
	}

	admin := api.Group("/admin", adminOnly)
	{
		admin.GET("/dashboard", dashboardController.GetDashboardOverview)

		orders := admin.Group("/orders")
		{
			orders.GET("", orderController.GetOrders)
			orders.PUT("/:id", orderController.UpdateOrder)
			orders.PATCH("/:id/status", orderController.UpdateOrderStatus)
			orders.DELETE("/:id", orderController.DeleteOrder)
		}

		catalog := admin.Group("/services")
		{
			catalog.GET("", serviceController.GetAllServices)
			catalog.GET("/:id", serviceController.GetService)
			catalog.POST("", serviceController.CreateService)
			catalog.PUT("/:id", serviceController.UpdateService)
			catalog.DELETE("/:id", serviceController.DeleteService)
		}
	}

	return r
}
