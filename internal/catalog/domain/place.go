package domain

import "time"

// FoodPlace represents a single restaurant entry in the directory.
type FoodPlace struct {
	ID        string
	Name      string
	Cuisine   string
	Location  string
	Rating    float64
	Images    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
