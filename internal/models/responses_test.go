package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureRestaurant() Restaurant {
	pizza := Pizza{ID: 2, Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"}
	return Restaurant{
		ID:      1,
		Name:    "Sanjay's Pizza",
		Address: "address2",
		RestaurantPizzas: []RestaurantPizza{
			{ID: 7, Price: 4, RestaurantID: 1, PizzaID: 2, Pizza: pizza},
		},
	}
}

func marshal(t *testing.T, v interface{}) string {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestRestaurantSummaryShape(t *testing.T) {
	summary := NewRestaurantSummary(fixtureRestaurant())

	assert.Equal(t, `{"id":1,"name":"Sanjay's Pizza","address":"address2"}`, marshal(t, summary))
}

func TestRestaurantDetailShape(t *testing.T) {
	detail := NewRestaurantDetail(fixtureRestaurant())

	expected := `{"id":1,"name":"Sanjay's Pizza","address":"address2","restaurant_pizzas":[` +
		`{"id":7,"price":4,"restaurant_id":1,"pizza_id":2,` +
		`"pizza":{"id":2,"name":"Geri","ingredients":"Dough, Tomato Sauce, Cheese, Pepperoni"}}]}`
	assert.Equal(t, expected, marshal(t, detail))
}

func TestRestaurantDetailWithoutMenuIsEmptyArray(t *testing.T) {
	detail := NewRestaurantDetail(Restaurant{ID: 3, Name: "Kiki's Pizza", Address: "address3"})

	assert.Equal(t, `{"id":3,"name":"Kiki's Pizza","address":"address3","restaurant_pizzas":[]}`, marshal(t, detail))
}

func TestRestaurantPizzaCreatedShape(t *testing.T) {
	restaurant := fixtureRestaurant()
	rp := restaurant.RestaurantPizzas[0]
	rp.Restaurant = restaurant

	expected := `{"id":7,"price":4,"pizza_id":2,"restaurant_id":1,` +
		`"pizza":{"id":2,"name":"Geri","ingredients":"Dough, Tomato Sauce, Cheese, Pepperoni"},` +
		`"restaurant":{"id":1,"name":"Sanjay's Pizza","address":"address2"}}`
	assert.Equal(t, expected, marshal(t, NewRestaurantPizzaCreated(rp)))
}

func TestListMappingsNeverNull(t *testing.T) {
	assert.Equal(t, `[]`, marshal(t, NewRestaurantSummaries(nil)))
	assert.Equal(t, `[]`, marshal(t, NewPizzaResponses(nil)))
}

func TestPizzaResponses(t *testing.T) {
	pizzas := []Pizza{
		{ID: 1, Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{ID: 2, Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	}

	responses := NewPizzaResponses(pizzas)

	require.Len(t, responses, 2)
	assert.Equal(t, PizzaResponse{ID: 2, Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"}, responses[1])
}

func TestErrorBodies(t *testing.T) {
	assert.Equal(t, `{"error":"Restaurant not found"}`, marshal(t, NewErrorResponse(MsgRestaurantNotFound)))
	assert.Equal(t, `{"errors":["validation errors"]}`, marshal(t, NewValidationErrorResponse()))
}
