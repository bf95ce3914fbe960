package router

import (
	"gulhajiPlaza/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	reco := api.Group("/recommendations")

	reco.POST("", handler.Recommend)
	reco.POST("/refresh", handler.RefreshSnapshot)
}

func SetupLaptopRoutes(api *echo.Group, handler *rest.LaptopHandler) {
	laptops := api.Group("/laptops")

	laptops.GET("", handler.GetAllLaptops)
	laptops.GET("/:id", handler.GetLaptopByID)
	laptops.POST("", handler.CreateLaptop)
	laptops.PUT("/:id", handler.UpdateLaptop)
	laptops.DELETE("/:id", handler.DeleteLaptop)

	laptops.GET("/:id/offers", handler.GetOffers)
	laptops.PUT("/:id/offers", handler.UpsertOffer)
}
