package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vibecommerce/shopapi/lib/mystore"
	"github.com/vibecommerce/shopapi/lib/mytime"
	"github.com/vibecommerce/shopapi/lib/myuuid"
	"github.com/vibecommerce/shopapi/services/catalog"
)

func setupCartWeb(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *myuuid.MockUUIDer) {
	c := context.TODO()

	cartStore, _, _ := mystore.NewInMemoryStore[Cart](c)
	productStore, _, _ := mystore.NewInMemoryStore[catalog.Product](c)

	productStore.Put(c, "p-a", catalog.Product{
		UID:   "p-a",
		Name:  "Product A",
		Price: decimal.RequireFromString("10.00"),
	})

	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

	uuider := myuuid.NewMockUUIDer(ctrl)

	sut := NewWebService(cartStore, productStore, nower, uuider)
	router := mux.NewRouter()
	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, uuider
}

func TestCartWeb(t *testing.T) {

	t.Run("View cart defaults the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, router, _ := setupCartWeb(t, ctrl)

		request, err := http.NewRequest(http.MethodGet, "/api/cart", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, 200, response.Code)

		cart := Cart{}
		err = json.Unmarshal(response.Body.Bytes(), &cart)
		assert.NoError(t, err)
		assert.Equal(t, DefaultSessionUID, cart.SessionUID)
		assert.Empty(t, cart.Items)
	})

	t.Run("Add item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, router, uuider := setupCartWeb(t, ctrl)
		uuider.EXPECT().Create().Return("111")

		request, err := http.NewRequest(http.MethodPost, "/api/cart",
			strings.NewReader(`{"productId":"p-a","quantity":2,"sessionId":"session-x"}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, 200, response.Code)

		cart := Cart{}
		err = json.Unmarshal(response.Body.Bytes(), &cart)
		assert.NoError(t, err)
		assert.Equal(t, "session-x", cart.SessionUID)
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, "20.00", cart.Total.StringFixed(2))
	})

	t.Run("Add item without productId", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, router, _ := setupCartWeb(t, ctrl)

		request, err := http.NewRequest(http.MethodPost, "/api/cart",
			strings.NewReader(`{"quantity":2}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, 400, response.Code)
	})

	t.Run("Add unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, router, _ := setupCartWeb(t, ctrl)

		request, err := http.NewRequest(http.MethodPost, "/api/cart",
			strings.NewReader(`{"productId":"p-unknown","quantity":1}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, 404, response.Code)
	})

	t.Run("Update quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, router, uuider := setupCartWeb(t, ctrl)
		uuider.EXPECT().Create().Return("111")

		request, err := http.NewRequest(http.MethodPost, "/api/cart",
			strings.NewReader(`{"productId":"p-a","quantity":5,"sessionId":"session-x"}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)
		assert.Equal(t, 200, response.Code)

		request, err = http.NewRequest(http.MethodPut, "/api/cart/111",
			strings.NewReader(`{"quantity":1,"sessionId":"session-x"}`))
		assert.NoError(t, err)
		response = httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, 200, response.Code)

		cart := Cart{}
		err = json.Unmarshal(response.Body.Bytes(), &cart)
		assert.NoError(t, err)
		assert.Equal(t, 1, cart.Items[0].Quantity)
		assert.Equal(t, "10.00", cart.Total.StringFixed(2))
	})

	t.Run("Remove item from missing cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, router, _ := setupCartWeb(t, ctrl)

		request, err := http.NewRequest(http.MethodDelete, "/api/cart/111?sessionId=session-x", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, 404, response.Code)
	})
}
