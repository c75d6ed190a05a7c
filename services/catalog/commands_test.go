package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vibecommerce/shopapi/lib/myerrors"
	"github.com/vibecommerce/shopapi/lib/mylog"
	"github.com/vibecommerce/shopapi/lib/mypublisher"
	"github.com/vibecommerce/shopapi/lib/mystore"
	"github.com/vibecommerce/shopapi/lib/myuuid"
	"github.com/vibecommerce/shopapi/services/catalog/catalogevents"
)

var categories = []string{"Electronics", "Clothing", "Kitchen"}

func fixtureProducts(count int) []Product {
	faker := gofakeit.New(42)

	products := make([]Product, 0, count)
	for i := 0; i < count; i++ {
		products = append(products, Product{
			UID:         fmt.Sprintf("p%02d", i),
			Name:        fmt.Sprintf("Product %02d", i),
			Price:       decimal.NewFromFloat(faker.Price(1, 100)).Round(2),
			Description: faker.Sentence(6),
			Category:    categories[i%len(categories)],
			ImageURL:    faker.ImageURL(400, 300),
		})
	}
	return products
}

func setupCatalog(t *testing.T, ctrl *gomock.Controller, products []Product) (context.Context, *service, mystore.Store[Product], *mypublisher.MockPublisher) {
	c := context.TODO()
	store, _, _ := mystore.NewInMemoryStore[Product](c)
	publisher := mypublisher.NewMockPublisher(ctrl)

	for _, p := range products {
		err := store.Put(c, p.UID, p)
		assert.NoError(t, err)
	}

	sut := newService(store, nil, myuuid.RealUUIDer{}, mylog.New("catalog"), publisher)

	return c, sut, store, publisher
}

func TestListProducts(t *testing.T) {

	t.Run("Pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sut, _, _ := setupCatalog(t, ctrl, fixtureProducts(30))

		// first page
		page, err := sut.listProducts(c, ListProductsRequest{})
		assert.NoError(t, err)
		assert.Len(t, page.Products, 12)
		assert.Equal(t, 1, page.Pagination.CurrentPage)
		assert.Equal(t, 3, page.Pagination.TotalPages)
		assert.Equal(t, 30, page.Pagination.TotalItems)
		assert.True(t, page.Pagination.HasNext)
		assert.False(t, page.Pagination.HasPrev)

		// last page holds the remainder
		page, err = sut.listProducts(c, ListProductsRequest{Page: 3})
		assert.NoError(t, err)
		assert.Len(t, page.Products, 6)
		assert.False(t, page.Pagination.HasNext)
		assert.True(t, page.Pagination.HasPrev)

		// beyond the last page
		page, err = sut.listProducts(c, ListProductsRequest{Page: 5})
		assert.NoError(t, err)
		assert.Empty(t, page.Products)
	})

	t.Run("Default sort is name ascending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sut, _, _ := setupCatalog(t, ctrl, fixtureProducts(15))

		page, err := sut.listProducts(c, ListProductsRequest{})
		assert.NoError(t, err)

		got := []string{}
		for _, p := range page.Products {
			got = append(got, p.Name)
		}
		want := []string{}
		for i := 0; i < 12; i++ {
			want = append(want, fmt.Sprintf("Product %02d", i))
		}
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("Sort by price descending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sut, _, _ := setupCatalog(t, ctrl, fixtureProducts(10))

		page, err := sut.listProducts(c, ListProductsRequest{SortBy: "price", SortOrder: "desc"})
		assert.NoError(t, err)
		for i := 1; i < len(page.Products); i++ {
			assert.True(t, page.Products[i].Price.LessThanOrEqual(page.Products[i-1].Price),
				"products not sorted by descending price")
		}
	})

	t.Run("Search matches name or description case-insensitively", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		products := fixtureProducts(5)
		products = append(products, Product{
			UID:         "headphones",
			Name:        "Wireless Headphones",
			Price:       decimal.NewFromFloat(99.99),
			Description: "Premium noise cancellation",
			Category:    "Electronics",
		})
		c, sut, _, _ := setupCatalog(t, ctrl, products)

		page, err := sut.listProducts(c, ListProductsRequest{Search: "HEADPH"})
		assert.NoError(t, err)
		assert.Len(t, page.Products, 1)
		assert.Equal(t, "headphones", page.Products[0].UID)

		page, err = sut.listProducts(c, ListProductsRequest{Search: "noise CANCEL"})
		assert.NoError(t, err)
		assert.Len(t, page.Products, 1)
	})

	t.Run("Category filter is a loose match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sut, _, _ := setupCatalog(t, ctrl, fixtureProducts(9))

		page, err := sut.listProducts(c, ListProductsRequest{Category: "electr"})
		assert.NoError(t, err)
		assert.Len(t, page.Products, 3)
		for _, p := range page.Products {
			assert.Equal(t, "Electronics", p.Category)
		}
	})

	t.Run("No matches is a valid empty page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sut, _, _ := setupCatalog(t, ctrl, fixtureProducts(9))

		page, err := sut.listProducts(c, ListProductsRequest{Search: "does-not-exist"})
		assert.NoError(t, err)
		assert.Empty(t, page.Products)
		assert.Equal(t, 0, page.Pagination.TotalPages)
		assert.Equal(t, 0, page.Pagination.TotalItems)
		assert.False(t, page.Pagination.HasNext)
		assert.False(t, page.Pagination.HasPrev)
	})
}

func TestReplaceCatalog(t *testing.T) {

	t.Run("Replace swaps the full set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sut, store, publisher := setupCatalog(t, ctrl, fixtureProducts(9))

		replacement := fixtureProducts(2)
		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, catalogevents.CatalogReplaced{Count: 2}).Return(nil)

		count, err := sut.replaceCatalog(c, replacement)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)

		all, err := store.List(c)
		assert.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestGetProduct(t *testing.T) {

	t.Run("Known product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sut, _, _ := setupCatalog(t, ctrl, fixtureProducts(3))

		product, err := sut.getProduct(c, "p01")
		assert.NoError(t, err)
		assert.Equal(t, "Product 01", product.Name)
	})

	t.Run("Unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sut, _, _ := setupCatalog(t, ctrl, fixtureProducts(3))

		_, err := sut.getProduct(c, "nope")
		assert.True(t, myerrors.IsNotFound(err))
	})
}
