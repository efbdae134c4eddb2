package model

type Reward struct {
	ID             string `json:"id"`
	HouseholdID    string `json:"household_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsRequired int    `json:"points_required"`
	Icon           string `json:"icon"`
	Category       string `json:"category"`
	CreatedBy      string `json:"created_by"`
	Available      bool   `json:"available"`
}
