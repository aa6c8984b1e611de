package routes

import (
	"invoice_intake/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathExtractions   = "/extractions"
	PathOrders        = "/orders"
	PathCurrencyRates = "/currency-rates"
)

func addIntakeRoutes(
	rg *gin.RouterGroup,
	intakeHandler *handlers.IntakeHandler,
	orderHistoryHandler *handlers.OrderHistoryHandler,
	currencyRateHandler *handlers.CurrencyRateHandler,
) {
	rg.POST(PathExtractions, intakeHandler.ExtractText)

	orders := rg.Group(PathOrders)
	{
		orders.POST("/validate", intakeHandler.Validate)
		orders.POST("", intakeHandler.Create)
		orders.GET("", orderHistoryHandler.ListOrders)
		orders.GET("/:id", orderHistoryHandler.GetOrder)
	}

	rates := rg.Group(PathCurrencyRates)
	{
		rates.GET("", currencyRateHandler.ListRates)
		rates.GET("/:from/:to", currencyRateHandler.GetRate)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
