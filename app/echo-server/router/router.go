package router

import (
	"github.com/ismaelallamtaoui/eco-score/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetScoreRoutes(api *echo.Group, handler *rest.ScoresHandler, partnerRequired echo.MiddlewareFunc) {
	scores := api.Group("/scores")
	scores.GET("", handler.GetScores)
	scores.GET("/:gtin", handler.GetScore)
	scores.POST("/export", handler.ExportScores, partnerRequired)
}

func SetBasketRoutes(api *echo.Group, handler *rest.BasketHandler) {
	baskets := api.Group("/baskets")
	baskets.POST("", handler.CreateBasket)
	baskets.GET("/:token", handler.GetSummary)
	baskets.PUT("/:token/items", handler.SetItem)
}

func SetWeightsRoutes(api *echo.Group, handler *rest.WeightsHandler) {
	weights := api.Group("/weights")
	weights.GET("", handler.GetWeights)
	weights.PUT("", handler.SaveWeights)
}

func SetPartnerRoutes(api *echo.Group, handler *rest.PartnerHandler, partnerRequired echo.MiddlewareFunc) {
	partner := api.Group("/partner")
	partner.POST("/token", handler.IssueToken)
	partner.POST("/products", handler.UploadCatalog, partnerRequired)
}
