package model

import "github.com/shopspring/decimal"

// CompetitorRanking is one exporter ranked by accumulated FOB value.
type CompetitorRanking struct {
	ExporterName  string          `json:"exporter_name"`
	Shipments     int64           `json:"shipments"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalFob      decimal.Decimal `json:"total_fob"`
	Destinations  int64           `json:"destinations"`
}

// ClientRanking is one consignee ranked by accumulated FOB value.
type ClientRanking struct {
	ConsigneeName string          `json:"consignee_name"`
	Shipments     int64           `json:"shipments"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalFob      decimal.Decimal `json:"total_fob"`
	Suppliers     int64           `json:"suppliers"`
}

// ProductBreakdown aggregates shipments of one product (HS code) within a
// category, used on both sides of cross-sell discovery.
type ProductBreakdown struct {
	HsCode             string          `json:"hs_code"`
	ProductDescription string          `json:"product_description"`
	Shipments          int64           `json:"shipments"`
	TotalQuantity      decimal.Decimal `json:"total_quantity"`
	TotalFob           decimal.Decimal `json:"total_fob"`
}

// CrossSellReport pairs what a consignee already buys in a category with the
// category's top products they do not buy yet.
type CrossSellReport struct {
	ConsigneeName string             `json:"consignee_name"`
	Category      string             `json:"category"`
	Buying        []ProductBreakdown `json:"buying"`
	Untapped      []ProductBreakdown `json:"untapped"`
}

// MonthlyTrend is one month-year bucket of aggregate shipment activity.
type MonthlyTrend struct {
	MonthYear     string          `json:"month_year"`
	Shipments     int64           `json:"shipments"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalFob      decimal.Decimal `json:"total_fob"`
}
