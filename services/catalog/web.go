package catalog

import (
	"context"
	"fmt"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/vibecommerce/shopapi/lib/mycontext"
	"github.com/vibecommerce/shopapi/lib/myerrors"
	"github.com/vibecommerce/shopapi/lib/myhttp"
	"github.com/vibecommerce/shopapi/lib/mylog"
	"github.com/vibecommerce/shopapi/lib/mypublisher"
	"github.com/vibecommerce/shopapi/lib/mystore"
	"github.com/vibecommerce/shopapi/lib/myuuid"
	"github.com/vibecommerce/shopapi/services/catalog/catalogevents"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(store mystore.Store[Product], feed *FeedClient, uuider myuuid.UUIDer, publisher mypublisher.Publisher) *webService {
	logger := mylog.New("catalog")
	return &webService{
		logger:  logger,
		service: newService(store, feed, uuider, logger, publisher),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.service.publisher.CreateTopic(c, catalogevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", catalogevents.TopicName, err)
	}

	router.HandleFunc("/api/products", s.listProductsPage()).Methods("GET")
	router.HandleFunc("/api/products/sync", s.syncProductsPage()).Methods("POST")
	router.HandleFunc("/api/products/{productUID}", s.productDetailsPage()).Methods("GET")

	return nil
}

// Initialize populates an empty catalog before the server accepts traffic.
func (s *webService) Initialize(c context.Context) error {
	return s.service.Initialize(c)
}

func (s *webService) listProductsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := ListProductsRequest{}
		err := formcodec.NewDecoder().Decode(&req, r.URL.Query())
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error decoding query parameters: %s", err)))
			return
		}

		page, err := s.service.listProducts(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, page)
	}
}

func (s *webService) productDetailsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		product, err := s.service.getProduct(c, productUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, product)
	}
}

type syncResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func (s *webService) syncProductsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		count, err := s.service.syncFromFeed(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, syncResponse{
			Message: "Products synced successfully",
			Count:   count,
		})
	}
}
