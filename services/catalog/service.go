package catalog

import (
	"github.com/vibecommerce/shopapi/lib/mylog"
	"github.com/vibecommerce/shopapi/lib/mypublisher"
	"github.com/vibecommerce/shopapi/lib/mystore"
	"github.com/vibecommerce/shopapi/lib/myuuid"
)

type service struct {
	productStore mystore.Store[Product]
	feed         *FeedClient
	publisher    mypublisher.Publisher
	uuider       myuuid.UUIDer
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(store mystore.Store[Product], feed *FeedClient, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *service {
	return &service{
		productStore: store,
		feed:         feed,
		publisher:    pub,
		uuider:       uuider,
		logger:       logger,
	}
}
