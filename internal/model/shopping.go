package model

import "time"

type ShoppingItem struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit,omitempty"`
	AddedBy     string    `json:"added_by"`
	Completed   bool      `json:"completed"`
	Urgent      bool      `json:"urgent"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
