package model

import "time"

// Order is one row of the pre-joined e-commerce export: an order item with
// its payment, review and customer data. Missing numbers are NaN, a missing
// timestamp is the zero time and missing strings are empty.
type Order struct {
	PurchasedAt time.Time `json:"order_purchase_timestamp"`
	ReviewScore float64   `json:"review_score"`
	City        string    `json:"customer_city"`
	Payment     float64   `json:"payment_value"`
	Category    string    `json:"product_category_name_english"`
	ProductID   string    `json:"product_id"`
}
