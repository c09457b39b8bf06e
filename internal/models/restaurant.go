package models

// Restaurant represents a restaurant and the pizzas it sells
type Restaurant struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Address string

	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}
