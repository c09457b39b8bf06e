package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants ordered by ID
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its menu and the pizzas on it
	GetRestaurantByID(id uint) (models.Restaurant, error)
	// CreateRestaurant creates a new restaurant in the database
	CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and every RestaurantPizza referencing it
	DeleteRestaurant(id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB {
			return db.Order("restaurant_pizzas.id")
		}).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, ErrRestaurantNotFound
		}
		return models.Restaurant{}, fmt.Errorf("failed to get restaurant %d: %w", id, err)
	}
	return restaurant, nil
}

func (s *restaurantService) CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error) {
	if err := s.db.Create(&restaurant).Error; err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to create restaurant: %w", err)
	}
	return restaurant, nil
}

// DeleteRestaurant removes the menu entries explicitly inside the same
// transaction, so the cascade holds even where FK enforcement is off.
func (s *restaurantService) DeleteRestaurant(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return fmt.Errorf("failed to delete menu of restaurant %d: %w", id, err)
		}
		result := tx.Delete(&models.Restaurant{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete restaurant %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrRestaurantNotFound
		}
		return nil
	})
}
