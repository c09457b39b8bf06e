package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Seed(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	conf := &config.Config{AllowedOrigins: []string{"*"}}
	return &testServer{db: db, router: setupRouter(db, conf)}
}

func (s *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) firstRestaurant(t *testing.T) models.Restaurant {
	var restaurant models.Restaurant
	require.NoError(t, s.db.Order("id").First(&restaurant).Error)
	return restaurant
}

func (s *testServer) firstPizza(t *testing.T) models.Pizza {
	var pizza models.Pizza
	require.NoError(t, s.db.Order("id").First(&pizza).Error)
	return pizza
}

func (s *testServer) countRestaurantPizzas(t *testing.T) int64 {
	var count int64
	require.NoError(t, s.db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>Code challenge</h1>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestListRestaurants(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/restaurants", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	var restaurants []models.Restaurant
	require.NoError(t, s.db.Order("id").Find(&restaurants).Error)
	require.Len(t, body, len(restaurants))
	for i, r := range restaurants {
		assert.Equal(t, map[string]interface{}{
			"id":      float64(r.ID),
			"name":    r.Name,
			"address": r.Address,
		}, body[i])
	}
}

func TestListingsAreStable(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/restaurants", "/pizzas"} {
		first := s.do(http.MethodGet, path, nil).Body.String()
		second := s.do(http.MethodGet, path, nil).Body.String()
		assert.Equal(t, first, second, path)
	}
}

func TestListPizzas(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/pizzas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 3)
	for _, pizza := range body {
		assert.Len(t, pizza, 3)
		assert.Contains(t, pizza, "id")
		assert.Contains(t, pizza, "name")
		assert.Contains(t, pizza, "ingredients")
	}
}

func TestGetRestaurant(t *testing.T) {
	s := newTestServer(t)
	restaurant := s.firstRestaurant(t)

	w := s.do(http.MethodGet, fmt.Sprintf("/restaurants/%d", restaurant.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body models.RestaurantDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	var rows int64
	require.NoError(t, s.db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurant.ID).Count(&rows).Error)
	assert.Equal(t, restaurant.Name, body.Name)
	assert.Len(t, body.RestaurantPizzas, int(rows))
	for _, rp := range body.RestaurantPizzas {
		assert.Equal(t, restaurant.ID, rp.RestaurantID)
		assert.Equal(t, rp.PizzaID, rp.Pizza.ID)
		assert.NotEmpty(t, rp.Pizza.Name)
	}
}

func TestGetRestaurantNotFound(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/restaurants/999999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
}

func TestDeleteRestaurant(t *testing.T) {
	s := newTestServer(t)
	restaurant := s.firstRestaurant(t)
	path := fmt.Sprintf("/restaurants/%d", restaurant.ID)

	w := s.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = s.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())

	var orphans int64
	require.NoError(t, s.db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurant.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	w = s.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
}

func TestCreateRestaurantPizza(t *testing.T) {
	s := newTestServer(t)
	restaurant := s.firstRestaurant(t)
	pizza := s.firstPizza(t)

	w := s.do(http.MethodPost, "/restaurant_pizzas", map[string]interface{}{
		"price":         15,
		"pizza_id":      pizza.ID,
		"restaurant_id": restaurant.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.RestaurantPizzaCreated
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, 15, created.Price)
	assert.Equal(t, pizza.ID, created.PizzaID)
	assert.Equal(t, restaurant.ID, created.RestaurantID)
	assert.Equal(t, models.PizzaResponse{ID: pizza.ID, Name: pizza.Name, Ingredients: pizza.Ingredients}, created.Pizza)
	assert.Equal(t, models.RestaurantSummary{ID: restaurant.ID, Name: restaurant.Name, Address: restaurant.Address}, created.Restaurant)

	w = s.do(http.MethodGet, fmt.Sprintf("/restaurants/%d", restaurant.ID), nil)
	var detail models.RestaurantDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	found := false
	for _, rp := range detail.RestaurantPizzas {
		if rp.ID == created.ID {
			found = true
			assert.Equal(t, 15, rp.Price)
		}
	}
	assert.True(t, found, "new restaurant pizza should be listed on the restaurant")
}

func TestCreateRestaurantPizzaValidationErrors(t *testing.T) {
	s := newTestServer(t)
	restaurant := s.firstRestaurant(t)
	pizza := s.firstPizza(t)
	before := s.countRestaurantPizzas(t)

	testCases := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "price zero", body: map[string]interface{}{"price": 0, "pizza_id": pizza.ID, "restaurant_id": restaurant.ID}},
		{name: "price 31", body: map[string]interface{}{"price": 31, "pizza_id": pizza.ID, "restaurant_id": restaurant.ID}},
		{name: "missing pizza_id", body: map[string]interface{}{"price": 15, "restaurant_id": restaurant.ID}},
		{name: "unknown pizza_id", body: map[string]interface{}{"price": 15, "pizza_id": 999999, "restaurant_id": restaurant.ID}},
		{name: "unknown restaurant_id", body: map[string]interface{}{"price": 15, "pizza_id": pizza.ID, "restaurant_id": 999999}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/restaurant_pizzas", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"errors": ["validation errors"]}`, w.Body.String())
			assert.Equal(t, before, s.countRestaurantPizzas(t))
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(http.MethodGet, "/pizzas", nil)

	w := s.do(http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/pizzas"`)
}
