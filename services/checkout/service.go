package checkout

import (
	"github.com/vibecommerce/shopapi/lib/mylog"
	"github.com/vibecommerce/shopapi/lib/mypublisher"
	"github.com/vibecommerce/shopapi/lib/mystore"
	"github.com/vibecommerce/shopapi/lib/mytime"
	"github.com/vibecommerce/shopapi/lib/myuuid"
	"github.com/vibecommerce/shopapi/services/cart"
	"github.com/vibecommerce/shopapi/services/catalog"
)

type service struct {
	cartStore    mystore.Store[cart.Cart]
	productStore mystore.Store[catalog.Product]
	receiptStore mystore.Store[Receipt]
	publisher    mypublisher.Publisher
	nower        mytime.Nower
	uuider       myuuid.UUIDer
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(cartStore mystore.Store[cart.Cart], productStore mystore.Store[catalog.Product], receiptStore mystore.Store[Receipt], nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *service {
	return &service{
		cartStore:    cartStore,
		productStore: productStore,
		receiptStore: receiptStore,
		publisher:    pub,
		nower:        nower,
		uuider:       uuider,
		logger:       logger,
	}
}
