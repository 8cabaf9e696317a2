package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	ChangePassword(c *ginext.Context)
	GetProfile(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
	ListComplexes(c *ginext.Context)
	ListSpots(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	ExtendReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/complexes", h.ListComplexes)
		api.GET("/spots", h.ListSpots)

		// Authenticated
		authed := api.Group("", authMW)
		{
			authed.POST("/auth/password", h.ChangePassword)
			authed.GET("/profile", h.GetProfile)
			authed.PUT("/profile", h.UpdateProfile)

			authed.POST("/reservations", h.CreateReservation)
			authed.GET("/reservations", h.ListReservations)
			authed.POST("/reservations/:id/extend", h.ExtendReservation)
			authed.DELETE("/reservations/:id", h.CancelReservation)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
