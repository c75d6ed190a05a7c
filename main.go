package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/vibecommerce/shopapi/lib/myhttpclient"
	"github.com/vibecommerce/shopapi/lib/mypublisher"
	"github.com/vibecommerce/shopapi/lib/mypubsub"
	"github.com/vibecommerce/shopapi/lib/myqueue"
	"github.com/vibecommerce/shopapi/lib/mystore"
	"github.com/vibecommerce/shopapi/lib/mytime"
	"github.com/vibecommerce/shopapi/lib/myuuid"
	"github.com/vibecommerce/shopapi/services/cart"
	"github.com/vibecommerce/shopapi/services/catalog"
	"github.com/vibecommerce/shopapi/services/checkout"
)

func main() {
	c := context.Background()

	// Prices and totals are serialized as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	router := mux.NewRouter()
	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	productStore, productStoreCleanup, err := mystore.New[catalog.Product](c)
	if err != nil {
		log.Fatalf("Error creating product store: %s", err)
	}
	defer productStoreCleanup()

	cartStore, cartStoreCleanup, err := mystore.New[cart.Cart](c)
	if err != nil {
		log.Fatalf("Error creating cart store: %s", err)
	}
	defer cartStoreCleanup()

	receiptStore, receiptStoreCleanup, err := mystore.New[checkout.Receipt](c)
	if err != nil {
		log.Fatalf("Error creating receipt store: %s", err)
	}
	defer receiptStoreCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	feed := catalog.NewFeedClient(myhttpclient.New(), os.Getenv("CATALOG_FEED_URL"))

	catalogService := catalog.NewWebService(productStore, feed, uuider, publisher)
	err = catalogService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering catalog endpoints: %s", err)
	}
	err = catalogService.Initialize(c)
	if err != nil {
		log.Fatalf("Error initializing catalog: %s", err)
	}

	cartService := cart.NewWebService(cartStore, productStore, nower, uuider)
	err = cartService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering cart endpoints: %s", err)
	}

	checkoutService := checkout.NewWebService(cartStore, productStore, receiptStore, nower, uuider, publisher)
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout endpoints: %s", err)
	}

	router.HandleFunc("/health", healthPage).Methods("GET")

	startWebServerBlocking(router)
}

func healthPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"OK"}`)
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
