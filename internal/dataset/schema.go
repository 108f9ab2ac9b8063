package dataset

import (
	"ecommerce-dashboard/internal/model"
	"ecommerce-dashboard/internal/report"
	"math"
)

// Columns of the pre-joined e-commerce export
const (
	ColPurchasedAt = "order_purchase_timestamp"
	ColReviewScore = "review_score"
	ColCity        = "customer_city"
	ColPayment     = "payment_value"
	ColCategory    = "product_category_name_english"
	ColProductID   = "product_id"
)

// Schema declares the columns every report reads
var Schema = report.Schema{
	{Name: ColPurchasedAt, Kind: report.KindTime},
	{Name: ColReviewScore, Kind: report.KindNumber},
	{Name: ColCity, Kind: report.KindString},
	{Name: ColPayment, Kind: report.KindNumber},
	{Name: ColCategory, Kind: report.KindString},
	{Name: ColProductID, Kind: report.KindString},
}

// Columns returns the column names of Schema in order
func Columns() []string {
	names := make([]string, len(Schema))
	for i, c := range Schema {
		names[i] = c.Name
	}
	return names
}

// NewTable builds the report table from orders. Missing fields become nulls.
func NewTable(orders []model.Order) (*report.Table, error) {
	rows := make([]report.Row, len(orders))
	for i, o := range orders {
		rows[i] = report.Row{
			ColPurchasedAt: timeValue(o),
			ColReviewScore: numberValue(o.ReviewScore),
			ColCity:        stringValue(o.City),
			ColPayment:     numberValue(o.Payment),
			ColCategory:    stringValue(o.Category),
			ColProductID:   stringValue(o.ProductID),
		}
	}
	return report.NewTable(Schema, rows)
}

func timeValue(o model.Order) report.Value {
	if o.PurchasedAt.IsZero() {
		return report.Null(report.KindTime)
	}
	return report.Time(o.PurchasedAt)
}

func numberValue(f float64) report.Value {
	if math.IsNaN(f) {
		return report.Null(report.KindNumber)
	}
	return report.Number(f)
}

func stringValue(s string) report.Value {
	if s == "" {
		return report.Null(report.KindString)
	}
	return report.String(s)
}
