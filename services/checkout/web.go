package checkout

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
	"github.com/vibecommerce/shopapi/lib/mypublisher"
	"github.com/vibecommerce/shopapi/lib/mystore"
	"github.com/vibecommerce/shopapi/lib/mytime"
	"github.com/vibecommerce/shopapi/lib/myuuid"
	"github.com/vibecommerce/shopapi/services/cart"
	"github.com/vibecommerce/shopapi/services/catalog"
	"github.com/vibecommerce/shopapi/services/checkout/checkoutevents"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(cartStore mystore.Store[cart.Cart], productStore mystore.Store[catalog.Product], receiptStore mystore.Store[Receipt], nower mytime.Nower, uuider myuuid.UUIDer, publisher mypublisher.Publisher) *webService {
	logger := mylog.New("checkout")
	return &webService{
		logger:  logger,
		service: newService(cartStore, productStore, receiptStore, nower, uuider, logger, publisher),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.service.publisher.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}

	router.HandleFunc("/api/checkout", s.checkoutPage()).Methods("POST")
	router.HandleFunc("/api/orders/{orderUID}", s.orderDetailsPage()).Methods("GET")

	return nil
}

type checkoutRequest struct {
	SessionUID string       `json:"sessionId"`
	Customer   CustomerInfo `json:"customerInfo"`
}

func (s *webService) checkoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := checkoutRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		receipt, err := s.service.checkout(c, cart.ResolveSessionUID(req.SessionUID), req.Customer)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, receipt)
	}
}

func (s *webService) orderDetailsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		orderUID := mux.Vars(r)["orderUID"]

		receipt, err := s.service.getReceipt(c, orderUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, receipt)
	}
}
