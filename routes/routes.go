package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/freelancer-robiul/study-mate-b12-a10-server/config"
	"github.com/freelancer-robiul/study-mate-b12-a10-server/handlers"
	"github.com/freelancer-robiul/study-mate-b12-a10-server/utils"
)

func RegisterRoutes(e *echo.Echo, db *config.DB, cache *utils.Cache) {
	pc := handlers.NewPartnerController(db, cache)
	rc := handlers.NewRequestController(db)

	e.GET("/", handlers.HealthCheck)

	api := e.Group("/api")

	api.GET("/partners", pc.ListPartners)
	api.GET("/partners/top", pc.TopPartners)
	api.GET("/partners/:id", pc.GetPartner)
	api.POST("/partners", pc.CreatePartner)
	api.PATCH("/partners/:id", pc.UpdatePartner)
	api.PATCH("/partners/:id/increment", pc.IncrementPartner)
	api.DELETE("/partners/:id", pc.DeletePartner)
	api.POST("/partners/:id/request", pc.RequestPartner)

	api.GET("/requests", rc.ListRequests)
	api.PATCH("/requests/:id", rc.UpdateRequest)
	api.DELETE("/requests/:id", rc.DeleteRequest)

	e.RouteNotFound("/*", handlers.RouteNotFound)
}
