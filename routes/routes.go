package routes

import (
	"go-postgres-optics/controllers"
	"go-postgres-optics/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		api.POST("/login", controllers.Login)

		// ================= ADMIN (stock management) =================
		admin := api.Group("/admin", middlewares.AdminAuth())
		{
			stocks := admin.Group("/stocks")
			{
				stocks.GET("/", controllers.GetAllStocks)
				stocks.POST("/", controllers.AddStock)
				stocks.PUT("/:id", controllers.UpdateStock)
			}

			reports := admin.Group("/reports")
			{
				reports.GET("/sales/daily", controllers.ReportDailySales)
				reports.GET("/sales/monthly", controllers.ReportMonthlySales)
			}
		}

		// ================= USER (order intake) =================
		user := api.Group("/user", middlewares.UserAuth())
		{
			catalog := user.Group("/catalog")
			{
				catalog.GET("/frames", controllers.ListFrames)
				catalog.GET("/types", controllers.ListTypes)
				catalog.POST("/refresh", controllers.RefreshCatalog)
			}

			customers := user.Group("/customers")
			{
				customers.POST("/", controllers.CreateCustomer)
				customers.GET("/unpaid", controllers.GetUnpaidCustomers)
				customers.POST("/settle", controllers.SettleBalance)
			}

			user.GET("/spectacles", controllers.SearchSpectacles)
		}
	}
}
