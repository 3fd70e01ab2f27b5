package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"alexandria-backend/internal/shared/middleware"
	"alexandria-backend/internal/shared/response"
	"alexandria-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupPublisherRoutes(router, c)
	setupBookRoutes(router, c)

	return router
}

func setupPublisherRoutes(r gin.IRouter, c *container.Container) {
	publishers := r.Group("/publishers")
	{
		publishers.GET("", c.PublisherHandler.GetAll)
		publishers.POST("", c.PublisherHandler.Create)
		publishers.GET("/:id", c.PublisherHandler.GetByID)
		publishers.PUT("/:id", c.PublisherHandler.Update)
		publishers.DELETE("/:id", c.PublisherHandler.Delete)
	}
}

func setupBookRoutes(r gin.IRouter, c *container.Container) {
	books := r.Group("/books")
	{
		books.GET("", c.BookHandler.GetAll)
		books.POST("", c.BookHandler.Create)
		books.GET("/:id", c.BookHandler.GetByID)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)

		books.POST("/:id/detail", c.BookHandler.CreateDetail)
		books.GET("/:id/detail", c.BookHandler.GetDetail)
		books.PUT("/:id/detail", c.BookHandler.UpdateDetail)
		books.DELETE("/:id/detail", c.BookHandler.RemoveDetail)

		books.PUT("/:id/publisher/:publisherId", c.BookHandler.SetPublisher)
		books.DELETE("/:id/publisher", c.BookHandler.RemovePublisher)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services, healthy := appCtx.HealthCheck(ctx)

		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		}

		if !healthy {
			health["status"] = "degraded"
			response.ServiceUnavailable(c, health)
			return
		}

		response.Success(c, http.StatusOK, health)
	}
}
