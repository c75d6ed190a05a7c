package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vibecommerce/shopapi/lib/myhttpclient"
	"github.com/vibecommerce/shopapi/lib/mylog"
	"github.com/vibecommerce/shopapi/lib/mypublisher"
	"github.com/vibecommerce/shopapi/lib/mystore"
	"github.com/vibecommerce/shopapi/lib/myuuid"
	"github.com/vibecommerce/shopapi/services/catalog/catalogevents"
)

const feedResponse = `[
	{
		"id": 1,
		"title": "Fjallraven Backpack",
		"price": 109.95,
		"description": "Your perfect pack for everyday use",
		"category": "men's clothing",
		"image": "https://fakestoreapi.com/img/81fPKd-2AYL.jpg",
		"rating": {"rate": 3.9, "count": 120}
	},
	{
		"id": 2,
		"title": "Mens Casual T-Shirt",
		"price": 22.3,
		"description": "Slim-fitting style",
		"category": "men's clothing",
		"image": "https://fakestoreapi.com/img/71-3HjGNDUL.jpg"
	}
]`

func TestFeedFetch(t *testing.T) {
	c := context.TODO()

	t.Run("Fetch maps feed products", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(feedResponse))
		}))
		defer server.Close()

		feed := NewFeedClient(myhttpclient.New(), server.URL)

		products, err := feed.Fetch(c)
		assert.NoError(t, err)
		assert.Len(t, products, 2)

		assert.Equal(t, "1", products[0].UID)
		assert.Equal(t, "Fjallraven Backpack", products[0].Name)
		assert.Equal(t, "109.95", products[0].Price.StringFixed(2))
		assert.Equal(t, "men's clothing", products[0].Category)
		assert.NotNil(t, products[0].Rating)
		assert.Equal(t, 120, products[0].Rating.Count)

		assert.Nil(t, products[1].Rating)
	})

	t.Run("Fetch fails on non-200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		feed := NewFeedClient(myhttpclient.New(), server.URL)

		_, err := feed.Fetch(c)
		assert.Error(t, err)
	})
}

func TestInitialize(t *testing.T) {

	t.Run("Feed failure falls back to seed products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := context.TODO()
		store, _, _ := mystore.NewInMemoryStore[Product](c)
		publisher := mypublisher.NewMockPublisher(ctrl)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		feed := NewFeedClient(myhttpclient.New(), server.URL)
		sut := newService(store, feed, myuuid.RealUUIDer{}, mylog.New("catalog"), publisher)

		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, catalogevents.CatalogReplaced{Count: len(seedProducts())}).Return(nil)

		err := sut.Initialize(c)
		assert.NoError(t, err)

		all, err := store.List(c)
		assert.NoError(t, err)
		assert.Len(t, all, len(seedProducts()))
	})

	t.Run("Non-empty catalog is left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := context.TODO()
		store, _, _ := mystore.NewInMemoryStore[Product](c)
		publisher := mypublisher.NewMockPublisher(ctrl)

		existing := seedProducts()[0]
		err := store.Put(c, existing.UID, existing)
		assert.NoError(t, err)

		sut := newService(store, nil, myuuid.RealUUIDer{}, mylog.New("catalog"), publisher)

		err = sut.Initialize(c)
		assert.NoError(t, err)

		all, err := store.List(c)
		assert.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
