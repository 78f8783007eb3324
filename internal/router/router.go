package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetAvailability(c *ginext.Context)
	Reserve(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	CreateCommission(c *ginext.Context)
	CreateItem(c *ginext.Context)
	GetItem(c *ginext.Context)
	CreateUser(c *ginext.Context)
}

type WebhookHandler interface {
	HandleProviderEvent(c *ginext.Context)
}

func InitRouter(mode string, h Handler, wh WebhookHandler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Items & availability
		api.POST("/items", h.CreateItem)
		api.GET("/items/:type/:id", h.GetItem)
		api.GET("/items/:type/:id/availability", h.GetAvailability)

		// Bookings
		api.POST("/bookings", h.Reserve)

		// Commissions
		api.POST("/commissions", h.CreateCommission)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	// Provider callbacks bypass the /api group: the payload is signed, not
	// authenticated like client traffic.
	router.POST("/webhooks/provider", wh.HandleProviderEvent)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
