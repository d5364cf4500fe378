package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urbansim/signals-backend-go/internal/config"
	"github.com/urbansim/signals-backend-go/internal/handler"
	"github.com/urbansim/signals-backend-go/internal/middleware"
	"github.com/urbansim/signals-backend-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, signalSvc *service.SignalService, coordSvc *service.CoordinationService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Signals Backend API is running",
		})
	})

	signalHandler := handler.NewSignalHandler(signalSvc)
	coordHandler := handler.NewCoordinationHandler(coordSvc)

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		// 信号灯接口
		signals := api.Group("/signals")
		{
			signals.GET("", signalHandler.GetSignals)
			signals.GET("/:id/coordination", signalHandler.GetSignalCoordination)
		}

		// 绿波走廊接口
		corridors := api.Group("/corridors")
		{
			corridors.GET("", coordHandler.GetCorridors)
			corridors.GET("/:id", coordHandler.GetCorridor)
			corridors.PUT("/:id/speed", middleware.Auth(cfg.JWTSecret), coordHandler.UpdateCorridorSpeed)
		}

		// 协调控制接口
		coordinationGroup := api.Group("/coordination")
		{
			coordinationGroup.GET("/stats", coordHandler.GetStats)
			coordinationGroup.POST("/analyze", middleware.Auth(cfg.JWTSecret), coordHandler.Analyze)
			coordinationGroup.POST("/reset", middleware.Auth(cfg.JWTSecret), coordHandler.Reset)
		}
	}

	return r
}
