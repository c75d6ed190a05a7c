package cart

import (
	"github.com/vibecommerce/shopapi/lib/mylog"
	"github.com/vibecommerce/shopapi/lib/mystore"
	"github.com/vibecommerce/shopapi/lib/mytime"
	"github.com/vibecommerce/shopapi/lib/myuuid"
	"github.com/vibecommerce/shopapi/services/catalog"
)

type service struct {
	cartStore    mystore.Store[Cart]
	productStore mystore.Store[catalog.Product]
	nower        mytime.Nower
	uuider       myuuid.UUIDer
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(cartStore mystore.Store[Cart], productStore mystore.Store[catalog.Product], nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	return &service{
		cartStore:    cartStore,
		productStore: productStore,
		nower:        nower,
		uuider:       uuider,
		logger:       logger,
	}
}
