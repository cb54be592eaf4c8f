package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalizedText maps a locale code ("en", "de", ...) to display text.
type LocalizedText map[string]string

// In returns the text for the given locale, falling back to English.
func (t LocalizedText) In(locale string) string {
	if v, ok := t[locale]; ok && v != "" {
		return v
	}
	return t["en"]
}

type Meal struct {
	ID                     primitive.ObjectID `bson:"_id"`
	Meal_id                string             `json:"meal_id"`
	Name                   LocalizedText      `json:"name" validate:"required"`
	Price                  *float64           `json:"price" validate:"required,min=0"`
	Category_slug          string             `json:"category_slug" validate:"required"`
	Image                  *string            `json:"image"`
	Default_ingredient_ids []string           `json:"default_ingredient_ids"`
	Add_on_ids             []string           `json:"add_on_ids"`
	Created_at             time.Time          `json:"created_at"`
	Updated_at             time.Time          `json:"updated_at"`
}

type Drink struct {
	ID         primitive.ObjectID `bson:"_id"`
	Drink_id   string             `json:"drink_id"`
	Name       LocalizedText      `json:"name" validate:"required"`
	Price      *float64           `json:"price" validate:"required,min=0"`
	Image      *string            `json:"image"`
	Created_at time.Time          `json:"created_at"`
	Updated_at time.Time          `json:"updated_at"`
}

type Category struct {
	ID          primitive.ObjectID `bson:"_id"`
	Category_id string             `json:"category_id"`
	Slug        string             `json:"slug" validate:"required"`
	Name        LocalizedText      `json:"name" validate:"required"`
	Sort_order  int                `json:"sort_order"`
	Created_at  time.Time          `json:"created_at"`
	Updated_at  time.Time          `json:"updated_at"`
}

type Ingredient struct {
	ID            primitive.ObjectID `bson:"_id"`
	Ingredient_id string             `json:"ingredient_id"`
	Name          LocalizedText      `json:"name" validate:"required"`
	Price         float64            `json:"price" validate:"min=0"`
	Is_add_on     bool               `json:"is_add_on"`
	Created_at    time.Time          `json:"created_at"`
	Updated_at    time.Time          `json:"updated_at"`
}
