package api

import (
	"CafeX/internal/api/middleware"
	"CafeX/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		postGroup := apiGroup.Group("/posts")
		{
			// 官网公开接口
			postGroup.GET("/public", group.PostHandler.ListPublic)
			postGroup.GET("/featured", group.PostHandler.ListFeatured)

			// 管理端接口，鉴权由部署层处理
			postGroup.GET("", group.PostHandler.ListAdmin)
			postGroup.GET("/stats", group.PostHandler.EngagementStats)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
			postGroup.POST("", group.PostHandler.CreatePost)
			postGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
			postGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
			postGroup.POST("/sweep", group.PostHandler.Sweep)
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
			mediaGroup.DELETE("", group.MediaHandler.Delete)
		}
	}

	return r
}
