package router

import (
	"tracker/api"
	"tracker/config"
	_ "tracker/docs"
	"tracker/ledger"
	"tracker/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, store *ledger.Store) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	transactionHandler := api.NewTransactionHandler(store)
	summaryHandler := api.NewSummaryHandler(store)
	exportHandler := api.NewExportHandler(store)
	writeLimit := middleware.WriteRateLimit(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	v1 := r.Group("/api/v1")
	{
		// 筛选选项（无需认证）
		v1.GET("/filters", summaryHandler.FilterOptions)

		authorized := v1.Group("")
		if cfg.JWT.Enabled {
			authorized.Use(middleware.JWTAuth())
		}
		{
			transactions := authorized.Group("/transactions")
			{
				transactions.POST("", writeLimit, transactionHandler.Create)
				transactions.GET("", transactionHandler.List)
				transactions.DELETE("/:id", writeLimit, transactionHandler.Delete)
			}

			authorized.GET("/summary", summaryHandler.Summary)

			charts := authorized.Group("/charts")
			{
				charts.GET("/monthly", summaryHandler.Monthly)
				charts.GET("/categories", summaryHandler.Categories)
			}

			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
