package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/gin-restaurant-pizzas/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/controllers"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// indexPage is served at the root path
const indexPage = "<h1>Code challenge</h1>"

// @title Restaurant Pizzas API
// @version 1.0
// @description Restaurants, pizzas and the price of each pizza at each restaurant
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()
	log.SetLevel(configuration.Level())
	controllers.SetLogLevel(configuration.Level())

	// Initialize database connection
	db := setupDatabase(configuration)

	// Initialize Gin router
	router := setupRouter(db, configuration)

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development")))
	if config.GetEnvWithDefault("APP_ENV", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects to the configured store, migrates the schema
// and seeds sample data when the store is empty
func setupDatabase(conf *config.Config) *gorm.DB {
	dbConfig, err := database.ConfigFromURL(conf.DatabaseURL)
	checkPanicErr(err)
	log.Infof("Using %s", dbConfig.String())

	db, err := database.InitDatabase(dbConfig)
	checkPanicErr(err)

	if !conf.SeedDatabase {
		return db
	}

	// Create only if is empty
	empty, err := database.IsEmpty(db)
	checkPanicErr(err)
	if empty {
		log.Info("Database is empty, seeding initial data")
		checkPanicErr(database.Seed(db))
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// setupRouter initializes the Gin router, wires services into controllers
// and sets up the routes. It returns the configured router
func setupRouter(db *gorm.DB, conf *config.Config) *gin.Engine {
	restaurantService := services.NewRestaurantService(db)
	pizzaService := services.NewPizzaService(db)
	restaurantPizzaService := services.NewRestaurantPizzaService(db, restaurantService, pizzaService)

	metrics := middleware.NewMetrics()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log.StandardLogger()),
		metrics.Middleware(),
		middleware.CORS(conf.AllowedOrigins),
	)

	setupRoutes(router, routeHandlers{
		restaurants:      controllers.NewRestaurantController(restaurantService),
		pizzas:           controllers.NewPizzaController(pizzaService),
		restaurantPizzas: controllers.NewRestaurantPizzaController(restaurantPizzaService),
		metrics:          metrics.Handler(),
	})

	return router
}

// routeHandlers groups everything setupRoutes mounts
type routeHandlers struct {
	restaurants      controllers.RestaurantController
	pizzas           controllers.PizzaController
	restaurantPizzas controllers.RestaurantPizzaController
	metrics          http.Handler
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, h routeHandlers) {
	router.GET("/", indexHandler)

	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(h.metrics))

	router.GET("/restaurants", h.restaurants.GetAllRestaurants)
	router.GET("/restaurants/:id", h.restaurants.GetRestaurantByID)
	router.DELETE("/restaurants/:id", h.restaurants.DeleteRestaurant)

	router.GET("/pizzas", h.pizzas.GetAllPizzas)

	router.POST("/restaurant_pizzas", h.restaurantPizzas.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// indexHandler serves the HTML placeholder page
func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-restaurant-pizzas",
	})
}
