package database

import (
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/models"
	"gorm.io/gorm"
)

// seedRestaurants and seedPizzas are the sample data loaded into an empty store
var (
	seedRestaurants = []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "address1"},
		{Name: "Sanjay's Pizza", Address: "address2"},
		{Name: "Kiki's Pizza", Address: "address3"},
	}
	seedPizzas = []models.Pizza{
		{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}
	// seedPrices maps restaurant index to pizza index to price
	seedPrices = []struct {
		restaurant, pizza, price int
	}{
		{0, 0, 1},
		{1, 1, 4},
		{2, 2, 5},
	}
)

// IsEmpty reports whether no restaurants have been stored yet
func IsEmpty(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count restaurants: %w", err)
	}
	return count == 0, nil
}

// Reset removes every row from the three tables, children first
func Reset(db *gorm.DB) error {
	log.Info("Clearing restaurant, pizza and restaurant_pizza data")
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear table: %w", err)
			}
		}
		return nil
	})
}

// Seed inserts the sample restaurants, pizzas and prices in one transaction
func Seed(db *gorm.DB) error {
	log.Info("Seeding database with initial data")
	err := db.Transaction(func(tx *gorm.DB) error {
		restaurants := make([]models.Restaurant, len(seedRestaurants))
		copy(restaurants, seedRestaurants)
		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("failed to seed restaurants: %w", err)
		}

		pizzas := make([]models.Pizza, len(seedPizzas))
		copy(pizzas, seedPizzas)
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("failed to seed pizzas: %w", err)
		}

		for _, p := range seedPrices {
			rp := models.RestaurantPizza{
				Price:        p.price,
				RestaurantID: restaurants[p.restaurant].ID,
				PizzaID:      pizzas[p.pizza].ID,
			}
			if err := tx.Create(&rp).Error; err != nil {
				return fmt.Errorf("failed to seed restaurant pizzas: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info("Database seeded successfully")
	return nil
}
