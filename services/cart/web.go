package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vibecommerce/shopapi/lib/mycontext"
	"github.com/vibecommerce/shopapi/lib/myerrors"
	"github.com/vibecommerce/shopapi/lib/myhttp"
	"github.com/vibecommerce/shopapi/lib/mylog"
	"github.com/vibecommerce/shopapi/lib/mystore"
	"github.com/vibecommerce/shopapi/lib/mytime"
	"github.com/vibecommerce/shopapi/lib/myuuid"
	"github.com/vibecommerce/shopapi/services/catalog"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(cartStore mystore.Store[Cart], productStore mystore.Store[catalog.Product], nower mytime.Nower, uuider myuuid.UUIDer) *webService {
	logger := mylog.New("cart")
	return &webService{
		logger:  logger,
		service: newService(cartStore, productStore, nower, uuider, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/cart", s.viewCartPage()).Methods("GET")
	router.HandleFunc("/api/cart", s.addItemPage()).Methods("POST")
	router.HandleFunc("/api/cart/{itemUID}", s.updateQuantityPage()).Methods("PUT")
	router.HandleFunc("/api/cart/{itemUID}", s.removeItemPage()).Methods("DELETE")

	return nil
}

func (s *webService) viewCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := ResolveSessionUID(r.URL.Query().Get("sessionId"))

		cart, err := s.service.viewCart(c, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, cart)
	}
}

type addItemRequest struct {
	ProductUID string `json:"productId"`
	Quantity   int    `json:"quantity"`
	SessionUID string `json:"sessionId"`
}

func (s *webService) addItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := addItemRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}
		if req.ProductUID == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("missing productId"))
			return
		}

		cart, err := s.service.addItem(c, ResolveSessionUID(req.SessionUID), req.ProductUID, req.Quantity)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, cart)
	}
}

type updateQuantityRequest struct {
	Quantity   int    `json:"quantity"`
	SessionUID string `json:"sessionId"`
}

func (s *webService) updateQuantityPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		itemUID := mux.Vars(r)["itemUID"]

		req := updateQuantityRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		cart, err := s.service.updateQuantity(c, ResolveSessionUID(req.SessionUID), itemUID, req.Quantity)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, cart)
	}
}

func (s *webService) removeItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		itemUID := mux.Vars(r)["itemUID"]
		sessionUID := ResolveSessionUID(r.URL.Query().Get("sessionId"))

		cart, err := s.service.removeItem(c, sessionUID, itemUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, cart)
	}
}
