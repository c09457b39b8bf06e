package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService manages the prices of pizzas at restaurants
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the input and stores a new RestaurantPizza.
	// The returned value has Pizza and Restaurant populated.
	CreateRestaurantPizza(input models.RestaurantPizzaInput) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db          *gorm.DB
	restaurants RestaurantService
	pizzas      PizzaService
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB, restaurants RestaurantService, pizzas PizzaService) RestaurantPizzaService {
	return &restaurantPizzaService{db: db, restaurants: restaurants, pizzas: pizzas}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(input models.RestaurantPizzaInput) (models.RestaurantPizza, error) {
	if input.Price == nil || input.PizzaID == nil || input.RestaurantID == nil {
		return models.RestaurantPizza{}, ErrValidation
	}
	if *input.Price < models.MinPrice || *input.Price > models.MaxPrice {
		return models.RestaurantPizza{}, ErrValidation
	}

	pizza, err := s.pizzas.GetPizzaByID(*input.PizzaID)
	if err != nil {
		return models.RestaurantPizza{}, lookupError(err, ErrPizzaNotFound)
	}

	restaurant, err := s.restaurants.GetRestaurantByID(*input.RestaurantID)
	if err != nil {
		return models.RestaurantPizza{}, lookupError(err, ErrRestaurantNotFound)
	}

	restaurantPizza := models.RestaurantPizza{
		Price:        *input.Price,
		RestaurantID: restaurant.ID,
		PizzaID:      pizza.ID,
	}
	if err := s.db.Omit("Restaurant", "Pizza").Create(&restaurantPizza).Error; err != nil {
		return models.RestaurantPizza{}, fmt.Errorf("failed to create restaurant pizza: %w", err)
	}

	restaurantPizza.Pizza = pizza
	restaurantPizza.Restaurant = models.Restaurant{ID: restaurant.ID, Name: restaurant.Name, Address: restaurant.Address}
	return restaurantPizza, nil
}

// lookupError maps a not-found lookup to ErrValidation and keeps other errors
func lookupError(err, notFound error) error {
	if errors.Is(err, notFound) {
		return ErrValidation
	}
	return err
}
