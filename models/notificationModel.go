package models

import "time"

// StatusNotification is pushed to websocket subscribers whenever an order
// status changes.
type StatusNotification struct {
	Order_number string    `json:"order_number"`
	Status       string    `json:"status"`
	Updated_at   time.Time `json:"updated_at"`
}
