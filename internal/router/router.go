package router

import (
	"github.com/gin-gonic/gin"

	"github.com/textgen-tools/textgen/internal/handler"
	"github.com/textgen-tools/textgen/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// System 状态与凭证
		api.GET("/status", h.System.GetStatus)
		api.POST("/config/api-key", h.System.SetAPIKey)

		// Tool 工具定义
		tools := api.Group("/tools")
		{
			tools.GET("", h.Tool.ListTools)
			tools.POST("", h.Tool.CreateTool)
			tools.GET("/:id", h.Tool.GetTool)
			tools.PUT("/:id", h.Tool.UpdateTool)
			tools.DELETE("/:id", h.Tool.DeleteTool)
			tools.POST("/:id/duplicate", h.Tool.DuplicateTool)
		}

		// Generate 生成
		api.POST("/generate", h.Generate.Generate)

		// History 履历
		api.GET("/history", h.History.ListHistory)
		api.DELETE("/history/:id", h.History.DeleteHistory)
	}

	return r
}
