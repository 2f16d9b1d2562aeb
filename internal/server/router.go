package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) SetUpRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestId())
	router.Use(Logger())
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		if err := s.store.Ping(c.Request.Context()); err != nil {
			s.writeError(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(200, gin.H{
			"message": "ok",
		})
	})
	// Serve static files from web/build
	router.Static("/static", "./web/build/static")
	router.NoRoute(func(c *gin.Context) {
		// API requests should 404
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{"error": "not found"})
			return
		}
		// All other routes go to index.html for client-side routing
		c.File("./web/build/index.html")
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	apiV1 := router.Group("/api/v1")
	s.SetUpApiV1Router(apiV1)

	return router
}

func (s *Server) SetUpApiV1Router(apiV1 *gin.RouterGroup) {
	apiV1.POST("/records", s.handleCreateRecord)
	apiV1.GET("/records", s.handleListRecords)
	apiV1.GET("/records/summary", s.handleRecordsSummary)

	record := apiV1.Group("/record/:record_id")
	record.Use(s.SetRecordToContext())
	record.GET("", s.handleGetRecord)

	{
		v1Admin := apiV1.Group("/admin")

		v1Admin.POST("/records/seed", s.handleSeedRecord)
	}
}
