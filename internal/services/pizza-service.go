package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas ordered by ID
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(id uint) (models.Pizza, error)
	// CreatePizza creates a new pizza in the database
	CreatePizza(pizza models.Pizza) (models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("failed to list pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, ErrPizzaNotFound
		}
		return models.Pizza{}, fmt.Errorf("failed to get pizza %d: %w", id, err)
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(pizza models.Pizza) (models.Pizza, error) {
	if err := s.db.Create(&pizza).Error; err != nil {
		return models.Pizza{}, fmt.Errorf("failed to create pizza: %w", err)
	}
	return pizza, nil
}
