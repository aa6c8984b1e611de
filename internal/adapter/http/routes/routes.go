package routes

import (
	"context"
	"log"
	"os"
	"time"

	_ "invoice_intake/docs" // generated by swag init
	"invoice_intake/internal/adapter/http/handlers"
	"invoice_intake/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const (
	defaultPort    = "8080"
	startupTimeout = 30 * time.Second
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	c, err := app.Build(ctx)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	intakeHandler := handlers.NewIntakeHandler(c.Intake)
	orderHistoryHandler := handlers.NewOrderHistoryHandler(c.OrderHistory)
	currencyRateHandler := handlers.NewCurrencyRateHandler(c.Rates)

	router.GET("/metrics", gin.WrapH(c.Metrics.Handler()))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addIntakeRoutes(v1, intakeHandler, orderHistoryHandler, currencyRateHandler)
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
