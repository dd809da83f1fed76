package domain

import "strings"

// Book is the catalog record as served by the catalog service.
type Book struct {
	ItemNumber string  `json:"item_number"`
	Title      string  `json:"title"`
	Topic      string  `json:"topic"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

func (b Book) InStock() bool {
	return b.Quantity > 0
}

type PurchaseResult struct {
	Message string `json:"message"`
}

// NormalizeItem trims user input into an item number usable as a cache key
// and path segment.
func NormalizeItem(item string) (string, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return "", ErrEmptyInput
	}
	return item, nil
}
