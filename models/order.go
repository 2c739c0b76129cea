package models

import "time"

// Order is written once at checkout and never modified.
type Order struct {
	ID          string     `json:"id"`
	UserID      int        `json:"user_id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	PaymentInfo string     `json:"payment_info"`
	Items       []CartItem `json:"items"`
	TotalCost   Money      `json:"total_cost"`
	OrderTime   time.Time  `json:"order_time"`
}
