package models

import (
	"github.com/jinzhu/copier"
)

// RestaurantSummary is the restaurant shape used in listings
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaResponse is the pizza shape used in listings and nested objects
type PizzaResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaEntry is a menu entry nested in a RestaurantDetail
type RestaurantPizzaEntry struct {
	ID           uint          `json:"id"`
	Price        int           `json:"price"`
	RestaurantID uint          `json:"restaurant_id"`
	PizzaID      uint          `json:"pizza_id"`
	Pizza        PizzaResponse `json:"pizza"`
}

// RestaurantDetail is a restaurant with its full menu
type RestaurantDetail struct {
	ID               uint                   `json:"id"`
	Name             string                 `json:"name"`
	Address          string                 `json:"address"`
	RestaurantPizzas []RestaurantPizzaEntry `json:"restaurant_pizzas"`
}

// RestaurantPizzaCreated is returned after a RestaurantPizza is created.
// Unlike RestaurantPizzaEntry it embeds both sides of the association.
type RestaurantPizzaCreated struct {
	ID           uint              `json:"id"`
	Price        int               `json:"price"`
	PizzaID      uint              `json:"pizza_id"`
	RestaurantID uint              `json:"restaurant_id"`
	Pizza        PizzaResponse     `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

// NewRestaurantSummary maps a Restaurant to its listing shape
func NewRestaurantSummary(r Restaurant) RestaurantSummary {
	var summary RestaurantSummary
	copyFields(&summary, &r)
	return summary
}

// NewRestaurantSummaries maps restaurants to listing shapes, never returning nil
func NewRestaurantSummaries(restaurants []Restaurant) []RestaurantSummary {
	summaries := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		summaries = append(summaries, NewRestaurantSummary(r))
	}
	return summaries
}

// NewPizzaResponse maps a Pizza to its public shape
func NewPizzaResponse(p Pizza) PizzaResponse {
	var resp PizzaResponse
	copyFields(&resp, &p)
	return resp
}

// NewPizzaResponses maps pizzas to public shapes, never returning nil
func NewPizzaResponses(pizzas []Pizza) []PizzaResponse {
	responses := make([]PizzaResponse, 0, len(pizzas))
	for _, p := range pizzas {
		responses = append(responses, NewPizzaResponse(p))
	}
	return responses
}

// NewRestaurantDetail maps a Restaurant with preloaded menu entries
func NewRestaurantDetail(r Restaurant) RestaurantDetail {
	detail := RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: make([]RestaurantPizzaEntry, 0, len(r.RestaurantPizzas)),
	}
	for _, rp := range r.RestaurantPizzas {
		detail.RestaurantPizzas = append(detail.RestaurantPizzas, RestaurantPizzaEntry{
			ID:           rp.ID,
			Price:        rp.Price,
			RestaurantID: rp.RestaurantID,
			PizzaID:      rp.PizzaID,
			Pizza:        NewPizzaResponse(rp.Pizza),
		})
	}
	return detail
}

// NewRestaurantPizzaCreated maps a RestaurantPizza with both associations loaded
func NewRestaurantPizzaCreated(rp RestaurantPizza) RestaurantPizzaCreated {
	return RestaurantPizzaCreated{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        NewPizzaResponse(rp.Pizza),
		Restaurant:   NewRestaurantSummary(rp.Restaurant),
	}
}

// copyFields copies same-named fields between entity and response structs
func copyFields(to, from interface{}) {
	_ = copier.Copy(to, from)
}
