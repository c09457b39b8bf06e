package models

// Price bounds for a pizza on a restaurant menu
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza is the price of a pizza at a given restaurant
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey"`
	Price        int  `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30"`
	RestaurantID uint `gorm:"not null;index"`
	PizzaID      uint `gorm:"not null;index"`

	Restaurant Restaurant
	Pizza      Pizza
}

// RestaurantPizzaInput is the request body for creating a RestaurantPizza.
// Pointers keep a missing field distinguishable from a zero value.
type RestaurantPizzaInput struct {
	Price        *int  `json:"price" binding:"required,min=1,max=30"`
	PizzaID      *uint `json:"pizza_id" binding:"required"`
	RestaurantID *uint `json:"restaurant_id" binding:"required"`
}
