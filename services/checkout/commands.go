package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vibecommerce/shopapi/lib/myerrors"
	"github.com/vibecommerce/shopapi/lib/mylog"
	"github.com/vibecommerce/shopapi/services/cart"
	"github.com/vibecommerce/shopapi/services/catalog"
	"github.com/vibecommerce/shopapi/services/checkout/checkoutevents"
)

func (s *service) checkout(c context.Context, sessionUID string, customer CustomerInfo) (Receipt, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Checkout for session %s", sessionUID)

	err := validateCustomer(customer)
	if err != nil {
		return Receipt{}, err
	}

	// Resolve product details outside the cart transaction: the catalog is
	// a different store with its own synchronization. Lines whose product
	// has meanwhile left the catalog keep the detail captured at add-time.
	products, err := s.resolveProducts(c, sessionUID)
	if err != nil {
		return Receipt{}, err
	}

	now := s.nower.Now()
	orderUID := s.uuider.CreateShortRef()

	var receipt Receipt
	err = s.cartStore.RunInTransaction(c, func(c context.Context) error {
		shoppingCart, found, err := s.cartStore.Get(c, sessionUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found || len(shoppingCart.Items) == 0 {
			return myerrors.NewPreconditionFailedError(errCartEmpty(sessionUID))
		}

		subtotal := shoppingCart.Total
		tax := subtotal.Mul(TaxRate).Round(2)
		grandTotal := subtotal.Add(tax)

		receipt = Receipt{
			OrderUID:   orderUID,
			CreatedAt:  now,
			SessionUID: sessionUID,
			Items:      snapshotItems(shoppingCart.Items, products),
			Customer:   customer,
			Subtotal:   subtotal,
			Tax:        tax,
			GrandTotal: grandTotal,
		}

		err = s.receiptStore.Put(c, orderUID, receipt)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.CheckoutCompleted{
			OrderUID:   orderUID,
			SessionUID: sessionUID,
			GrandTotal: grandTotal.StringFixed(2),
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		// Clearing the cart is the final step: any earlier failure leaves
		// the cart untouched.
		shoppingCart.Items = []cart.LineItem{}
		shoppingCart.Total = decimal.Zero
		shoppingCart.LastModified = &now

		err = s.cartStore.Put(c, sessionUID, shoppingCart)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Receipt{}, err
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Created order %s for session %s", orderUID, sessionUID)

	return receipt, nil
}

func (s *service) getReceipt(c context.Context, orderUID string) (Receipt, error) {
	receipt, found, err := s.receiptStore.Get(c, orderUID)
	if err != nil {
		return Receipt{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Receipt{}, myerrors.NewNotFoundErrorf("order with uid %s not found", orderUID)
	}

	return receipt, nil
}

func (s *service) resolveProducts(c context.Context, sessionUID string) (map[string]catalog.Product, error) {
	shoppingCart, found, err := s.cartStore.Get(c, sessionUID)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	if !found || len(shoppingCart.Items) == 0 {
		return nil, myerrors.NewPreconditionFailedError(errCartEmpty(sessionUID))
	}

	products := map[string]catalog.Product{}
	for _, li := range shoppingCart.Items {
		product, found, err := s.productStore.Get(c, li.ProductUID)
		if err != nil {
			return nil, myerrors.NewInternalError(err)
		}
		if found {
			products[li.ProductUID] = product
		}
	}

	return products, nil
}

func snapshotItems(items []cart.LineItem, products map[string]catalog.Product) []ReceiptItem {
	snapshot := make([]ReceiptItem, 0, len(items))
	for _, li := range items {
		ri := ReceiptItem{
			ProductUID: li.ProductUID,
			Name:       li.ProductName,
			UnitPrice:  li.UnitPrice,
			Quantity:   li.Quantity,
			TotalPrice: li.TotalPrice(),
		}
		if product, found := products[li.ProductUID]; found {
			ri.Name = product.Name
			ri.Description = product.Description
			ri.Category = product.Category
			ri.ImageURL = product.ImageURL
		}
		snapshot = append(snapshot, ri)
	}

	return snapshot
}

func errCartEmpty(sessionUID string) error {
	return fmt.Errorf("cart for session %s is empty", sessionUID)
}

func validateCustomer(customer CustomerInfo) error {
	missing := []string{}
	if strings.TrimSpace(customer.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(customer.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(customer.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return myerrors.NewInvalidInputErrorf("missing customer fields: %s", strings.Join(missing, ", "))
	}

	return nil
}
