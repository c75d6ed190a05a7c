package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/vibecommerce/shopapi/lib/myhttpclient"
)

const DefaultFeedURL = "https://fakestoreapi.com/products"

// FeedClient fetches the upstream product feed.
type FeedClient struct {
	sender  myhttpclient.HTTPSender
	feedURL string
}

func NewFeedClient(sender myhttpclient.HTTPSender, feedURL string) *FeedClient {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	return &FeedClient{
		sender:  sender,
		feedURL: feedURL,
	}
}

type feedProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      *struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

func (f *FeedClient) Fetch(c context.Context) ([]Product, error) {
	httpStatus, respPayload, err := f.sender.Send(c, http.MethodGet, f.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching feed %s: %s", f.feedURL, err)
	}
	if httpStatus != http.StatusOK {
		return nil, fmt.Errorf("feed %s returned status %d", f.feedURL, httpStatus)
	}

	feedProducts := []feedProduct{}
	err = json.Unmarshal(respPayload, &feedProducts)
	if err != nil {
		return nil, fmt.Errorf("error parsing feed response: %s", err)
	}

	products := make([]Product, 0, len(feedProducts))
	for _, fp := range feedProducts {
		products = append(products, mapFeedProduct(fp))
	}

	return products, nil
}

func mapFeedProduct(fp feedProduct) Product {
	product := Product{
		UID:         strconv.Itoa(fp.ID),
		Name:        fp.Title,
		Price:       decimal.NewFromFloat(fp.Price).Round(2),
		Description: fp.Description,
		Category:    fp.Category,
		ImageURL:    fp.Image,
	}
	if fp.Rating != nil {
		product.Rating = &Rating{
			Rate:  decimal.NewFromFloat(fp.Rating.Rate),
			Count: fp.Rating.Count,
		}
	}

	return product
}
