package models

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Ingredients string

	// Pizzas referenced by a restaurant menu cannot be removed
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:PizzaID;constraint:OnDelete:RESTRICT"`
}
