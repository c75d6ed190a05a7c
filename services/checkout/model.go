package checkout

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat tax applied to the subtotal at checkout.
var TaxRate = decimal.NewFromFloat(0.08)

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Receipt is an immutable snapshot taken at checkout. It owns copies of the
// cart's line items, so later cart mutations cannot alter it.
type Receipt struct {
	OrderUID   string          `json:"orderId"`
	CreatedAt  time.Time       `json:"timestamp"`
	SessionUID string          `json:"sessionId"`
	Items      []ReceiptItem   `json:"items"`
	Customer   CustomerInfo    `json:"customerInfo"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// ReceiptItem denormalizes the product detail known at checkout time.
type ReceiptItem struct {
	ProductUID  string          `json:"productId"`
	Name        string          `json:"name"`
	Description string          `json:"description" datastore:",noindex"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image" datastore:",noindex"`
	UnitPrice   decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}
