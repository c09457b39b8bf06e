package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles HTTP requests that price pizzas at restaurants
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a pizza to a restaurant menu
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Add a pizza to a restaurant menu at a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.RestaurantPizzaInput true "Price, pizza and restaurant"
// @Success 201 {object} models.RestaurantPizzaCreated
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var input models.RestaurantPizzaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Debug("Rejected restaurant pizza payload")
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
		return
	}

	restaurantPizza, err := c.service.CreateRestaurantPizza(input)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
			return
		}
		log.WithError(err).Error("Failed to create restaurant pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to create restaurant pizza"))
		return
	}

	log.WithFields(logrus.Fields{
		"restaurant_pizza_id": restaurantPizza.ID,
		"restaurant_id":       restaurantPizza.RestaurantID,
		"pizza_id":            restaurantPizza.PizzaID,
	}).Info("Restaurant pizza created")
	ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaCreated(restaurantPizza))
}
