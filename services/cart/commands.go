package cart

import (
	"context"

	"github.com/vibecommerce/shopapi/lib/myerrors"
	"github.com/vibecommerce/shopapi/lib/mylog"
)

func (s *service) viewCart(c context.Context, sessionUID string) (Cart, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Fetch cart for session %s", sessionUID)

	cart, found, err := s.cartStore.Get(c, sessionUID)
	if err != nil {
		return Cart{}, myerrors.NewInternalError(err)
	}
	if !found {
		// Viewing never persists a cart: a session gets a stored cart on
		// its first mutation only.
		return emptyCart(sessionUID), nil
	}

	return cart, nil
}

func (s *service) addItem(c context.Context, sessionUID string, productUID string, quantity int) (Cart, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Add %d x product %s to cart of session %s", quantity, productUID, sessionUID)

	if quantity < 1 {
		return Cart{}, myerrors.NewInvalidInputErrorf("quantity must be at least 1, got %d", quantity)
	}

	// Resolve the product before entering the cart transaction: the catalog
	// is a different store with its own synchronization.
	product, found, err := s.productStore.Get(c, productUID)
	if err != nil {
		return Cart{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Cart{}, myerrors.NewNotFoundErrorf("product with uid %s not found", productUID)
	}

	now := s.nower.Now()

	var cart Cart
	err = s.cartStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		cart, found, err = s.cartStore.Get(c, sessionUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			cart = emptyCart(sessionUID)
			cart.CreatedAt = now
		}

		// Same product again increments the existing line instead of
		// duplicating it.
		existing := -1
		for i, li := range cart.Items {
			if li.ProductUID == productUID {
				existing = i
				break
			}
		}

		// Earlier readers of this cart share the stored backing array, so
		// mutate a copy.
		items := append([]LineItem(nil), cart.Items...)
		if existing >= 0 {
			items[existing].Quantity += quantity
		} else {
			items = append(items, LineItem{
				UID:         s.uuider.Create(),
				ProductUID:  product.UID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    quantity,
			})
		}
		cart.Items = items

		cart.Total = calculateTotal(cart.Items)
		cart.LastModified = &now

		err = s.cartStore.Put(c, sessionUID, cart)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Cart{}, err
	}

	return cart, nil
}

func (s *service) removeItem(c context.Context, sessionUID string, lineItemUID string) (Cart, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Remove item %s from cart of session %s", lineItemUID, sessionUID)

	now := s.nower.Now()

	var cart Cart
	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		cart, found, err = s.cartStore.Get(c, sessionUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundErrorf("cart for session %s not found", sessionUID)
		}

		idx := indexOfLineItem(cart.Items, lineItemUID)
		if idx < 0 {
			return myerrors.NewNotFoundErrorf("cart item with uid %s not found", lineItemUID)
		}

		// Earlier readers of this cart share the stored backing array, so
		// build a fresh one.
		items := make([]LineItem, 0, len(cart.Items)-1)
		items = append(items, cart.Items[:idx]...)
		items = append(items, cart.Items[idx+1:]...)
		cart.Items = items
		cart.Total = calculateTotal(cart.Items)
		cart.LastModified = &now

		err = s.cartStore.Put(c, sessionUID, cart)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Cart{}, err
	}

	return cart, nil
}

func (s *service) updateQuantity(c context.Context, sessionUID string, lineItemUID string, quantity int) (Cart, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Set quantity of item %s to %d for session %s", lineItemUID, quantity, sessionUID)

	// Reducing to zero is a remove, never an update.
	if quantity < 1 {
		return Cart{}, myerrors.NewInvalidInputErrorf("quantity must be at least 1, got %d", quantity)
	}

	now := s.nower.Now()

	var cart Cart
	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		cart, found, err = s.cartStore.Get(c, sessionUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundErrorf("cart for session %s not found", sessionUID)
		}

		idx := indexOfLineItem(cart.Items, lineItemUID)
		if idx < 0 {
			return myerrors.NewNotFoundErrorf("cart item with uid %s not found", lineItemUID)
		}

		// Earlier readers of this cart share the stored backing array, so
		// mutate a copy.
		items := append([]LineItem(nil), cart.Items...)
		items[idx].Quantity = quantity
		cart.Items = items
		cart.Total = calculateTotal(cart.Items)
		cart.LastModified = &now

		err = s.cartStore.Put(c, sessionUID, cart)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Cart{}, err
	}

	return cart, nil
}

func indexOfLineItem(items []LineItem, lineItemUID string) int {
	for i, li := range items {
		if li.UID == lineItemUID {
			return i
		}
	}
	return -1
}
