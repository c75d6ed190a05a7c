package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultSessionUID is the session used for anonymous shoppers. The web
// boundary substitutes it whenever a request does not carry a session id;
// the commands below always receive an explicit session.
const DefaultSessionUID = "default-session"

type Cart struct {
	SessionUID   string          `json:"sessionId"`
	CreatedAt    time.Time       `json:"createdAt"`
	LastModified *time.Time      `json:"lastModified,omitempty"`
	Items        []LineItem      `json:"items"`
	Total        decimal.Decimal `json:"total"`
}

// LineItem captures the unit price at add-time, so a later catalog price
// change does not alter an existing cart.
type LineItem struct {
	UID         string          `json:"id"`
	ProductUID  string          `json:"productId"`
	ProductName string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

func (li LineItem) TotalPrice() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// ResolveSessionUID maps an absent session id onto the default session.
func ResolveSessionUID(sessionUID string) string {
	if sessionUID == "" {
		return DefaultSessionUID
	}
	return sessionUID
}

func emptyCart(sessionUID string) Cart {
	return Cart{
		SessionUID: sessionUID,
		Items:      []LineItem{},
		Total:      decimal.Zero,
	}
}

// calculateTotal is a full re-sum over all line items. Every mutation goes
// through this instead of adjusting the stored total incrementally, so the
// total can never drift from the line-item data.
func calculateTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.TotalPrice())
	}
	return total
}
