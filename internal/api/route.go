package api

import (
	"Pulse/internal/api/middleware"
	"Pulse/internal/pkg/logger"
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

		// 读接口：匿名可用，带 Token 则个性化
		readGroup := apiGroup.Group("")
		readGroup.Use(middleware.AuthOptionalMiddleware())
		{
			readGroup.GET("/scores/:post_id", group.ScoreHandler.GetScore)
			readGroup.GET("/feed", group.ScoreHandler.GetFeed)
			readGroup.GET("/trending", group.TrendingHandler.GetTrending)
		}

		// 运维接口：需要登录 & OPS 角色
		jobGroup := apiGroup.Group("/jobs")
		jobGroup.Use(middleware.AuthMiddleware())
		jobGroup.Use(middleware.CheckRoles("OPS"))
		{
			jobGroup.POST("/:name/trigger", group.JobHandler.TriggerJob)
			jobGroup.GET("/:name/history", group.JobHandler.GetJobHistory)
		}
	}

	return r
}
