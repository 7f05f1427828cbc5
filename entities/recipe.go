package entities

import (
	"time"

	"github.com/google/uuid"
)

type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Notes    string  `json:"notes,omitempty"`
}

type Instruction struct {
	Step            int    `json:"step"`
	Text            string `json:"text"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
}

type RecipeImage struct {
	URL       string `json:"url"`
	Alt       string `json:"alt,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

// Dietary flags are stored exactly as supplied. Vegan does not imply
// vegetarian; no cross-flag inference happens anywhere.
type DietaryInfo struct {
	IsVegetarian bool `json:"is_vegetarian"`
	IsVegan      bool `json:"is_vegan"`
	IsGlutenFree bool `json:"is_gluten_free"`
	IsDairyFree  bool `json:"is_dairy_free"`
	IsNutFree    bool `json:"is_nut_free"`
	IsKeto       bool `json:"is_keto"`
	IsPaleo      bool `json:"is_paleo"`
}

type NutritionFacts struct {
	Calories      int `json:"calories"`
	Protein       int `json:"protein"`
	Carbohydrates int `json:"carbohydrates"`
	Fat           int `json:"fat"`
	Fiber         int `json:"fiber"`
	Sugar         int `json:"sugar"`
}

type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	OwnerSubject string    `gorm:"index" json:"owner_subject"`

	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Ingredients  []Ingredient  `gorm:"serializer:json;type:text" json:"ingredients"`
	Instructions []Instruction `gorm:"serializer:json;type:text" json:"instructions"`
	Images       []RecipeImage `gorm:"serializer:json;type:text" json:"images"`
	Tags         []string      `gorm:"serializer:json;type:text" json:"tags"`

	Category   string `gorm:"index" json:"category"`
	Cuisine    string `gorm:"index" json:"cuisine"`
	Difficulty string `json:"difficulty"`

	PrepTimeMinutes  int `json:"prep_time_minutes"`
	CookTimeMinutes  int `json:"cook_time_minutes"`
	TotalTimeMinutes int `json:"total_time_minutes"`
	Servings         int `json:"servings"`

	DietaryInfo DietaryInfo     `gorm:"embedded" json:"dietary_info"`
	Nutrition   *NutritionFacts `gorm:"serializer:json;type:text" json:"nutrition,omitempty"`

	Views         int     `json:"views"`
	Likes         int     `json:"likes"`
	Saves         int     `json:"saves"`
	CommentsCount int     `json:"comments_count"`
	RatingAverage float64 `json:"rating_average"`
	RatingCount   int     `json:"rating_count"`

	Status      string     `gorm:"index" json:"status"`
	PublishedAt *time.Time `gorm:"type:timestamp" json:"published_at,omitempty"`
	IsPublic    bool       `json:"is_public"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
