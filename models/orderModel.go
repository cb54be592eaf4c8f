package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID               primitive.ObjectID `bson:"_id"`
	Order_id         string             `json:"order_id"`
	Order_number     string             `json:"order_number" bson:"order_number"`
	Customer_name    string             `json:"customer_name" validate:"required"`
	Customer_email   *string            `json:"customer_email"`
	Customer_phone   *string            `json:"customer_phone"`
	Customer_address *string            `json:"customer_address"`
	// Items holds the order line items as one serialized JSON array value.
	// Readers must tolerate a malformed value and fall back to no items.
	Items           string    `json:"items"`
	Subtotal        float64   `json:"subtotal"`
	Delivery_fee    float64   `json:"delivery_fee"`
	Total           float64   `json:"total"`
	Payment_method  string    `json:"payment_method" validate:"required,eq=cash|eq=card"`
	Delivery_method string    `json:"delivery_method" validate:"required,eq=pickup|eq=delivery"`
	Notes           *string   `json:"notes"`
	Status          string    `json:"status"`
	Created_at      time.Time `json:"created_at"`
	Updated_at      time.Time `json:"updated_at"`
}
