package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vibecommerce/shopapi/lib/myerrors"
	"github.com/vibecommerce/shopapi/lib/mylog"
	"github.com/vibecommerce/shopapi/services/catalog/catalogevents"
)

func (s *service) listProducts(c context.Context, req ListProductsRequest) (ProductPage, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "List products (search:%q, category:%q)", req.Search, req.Category)

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = defaultPageSize
	}
	if req.SortBy == "" {
		req.SortBy = defaultSortField
	}

	products, err := s.productStore.List(c)
	if err != nil {
		return ProductPage{}, myerrors.NewInternalError(err)
	}

	matches := filterProducts(products, req.Search, req.Category)
	sortProducts(matches, req.SortBy, req.SortOrder == "desc")

	totalItems := len(matches)
	totalPages := (totalItems + req.PageSize - 1) / req.PageSize

	skip := (req.Page - 1) * req.PageSize
	if skip > totalItems {
		skip = totalItems
	}
	end := skip + req.PageSize
	if end > totalItems {
		end = totalItems
	}

	return ProductPage{
		Products: matches[skip:end],
		Pagination: Pagination{
			CurrentPage: req.Page,
			TotalPages:  totalPages,
			TotalItems:  totalItems,
			HasNext:     req.Page < totalPages,
			HasPrev:     req.Page > 1,
		},
	}, nil
}

func (s *service) getProduct(c context.Context, productUID string) (Product, error) {
	product, found, err := s.productStore.Get(c, productUID)
	if err != nil {
		return Product{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Product{}, myerrors.NewNotFoundErrorf("product with uid %s not found", productUID)
	}

	return product, nil
}

// replaceCatalog swaps the full product set in a single store operation, so
// concurrent readers never observe a partially replaced catalog.
func (s *service) replaceCatalog(c context.Context, products []Product) (int, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Replacing catalog with %d products", len(products))

	items := make(map[string]Product, len(products))
	for _, p := range products {
		if p.UID == "" {
			p.UID = s.uuider.Create()
		}
		items[p.UID] = p
	}

	err := s.productStore.ReplaceAll(c, items)
	if err != nil {
		return 0, myerrors.NewInternalError(err)
	}

	err = s.publisher.Publish(c, catalogevents.TopicName, catalogevents.CatalogReplaced{
		Count: len(items),
	})
	if err != nil {
		return 0, myerrors.NewInternalError(err)
	}

	return len(items), nil
}

func (s *service) syncFromFeed(c context.Context) (int, error) {
	products, err := s.feed.Fetch(c)
	if err != nil {
		return 0, myerrors.NewUnavailableError(fmt.Errorf("error fetching product feed: %s", err))
	}

	return s.replaceCatalog(c, products)
}

// Initialize populates an empty catalog from the upstream feed. A feed
// failure falls back to the static seed set so startup never depends on the
// feed being reachable.
func (s *service) Initialize(c context.Context) error {
	existing, err := s.productStore.List(c)
	if err != nil {
		return myerrors.NewInternalError(err)
	}
	if len(existing) > 0 {
		s.logger.Log(c, "", mylog.SeverityInfo, "Catalog already contains %d products", len(existing))
		return nil
	}

	products, err := s.feed.Fetch(c)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Product feed unavailable (%s), using seed products", err)
		products = seedProducts()
	}

	count, err := s.replaceCatalog(c, products)
	if err != nil {
		return err
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Catalog initialized with %d products", count)

	return nil
}

func filterProducts(products []Product, search string, category string) []Product {
	search = strings.ToLower(search)
	category = strings.ToLower(category)

	matches := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(p.Category), category) {
			continue
		}
		matches = append(matches, p)
	}

	return matches
}

func sortProducts(products []Product, sortBy string, descending bool) {
	less := func(a, b Product) bool {
		switch sortBy {
		case "price":
			return a.Price.LessThan(b.Price)
		case "category":
			return a.Category < b.Category
		case "description":
			return a.Description < b.Description
		case "id":
			return a.UID < b.UID
		default:
			return a.Name < b.Name
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		if descending {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
