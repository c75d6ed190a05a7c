package catalog

import (
	"github.com/shopspring/decimal"
)

// Product is immutable once synced from the upstream feed; a re-sync
// replaces the full set.
type Product struct {
	UID         string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description" datastore:",noindex"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image" datastore:",noindex"`
	Rating      *Rating         `json:"rating,omitempty"`
}

type Rating struct {
	Rate  decimal.Decimal `json:"rate"`
	Count int             `json:"count"`
}

const (
	defaultPageSize  = 12
	defaultSortField = "name"
)

type ListProductsRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
	Page      int    `form:"page"`
	PageSize  int    `form:"limit"`
}

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}
