package backend

import (
	"errors"
	"sort"
	"sync"

	"github.com/TemirB/bookstore-client/internal/domain"
)

var (
	ErrUnknownItem = errors.New("book not found")
	ErrSoldOut     = errors.New("item is out of stock")
)

// Inventory is the in-memory book table shared by every sandbox replica.
type Inventory struct {
	mu    sync.RWMutex
	books map[string]domain.Book
}

func NewInventory(books []domain.Book) *Inventory {
	inv := &Inventory{books: make(map[string]domain.Book, len(books))}
	for _, b := range books {
		inv.books[b.ItemNumber] = b
	}
	return inv
}

func DefaultBooks() []domain.Book {
	return []domain.Book{
		{ItemNumber: "1", Title: "How to get a good grade in DOS in 40 minutes a day", Topic: "distributed systems", Quantity: 10, Price: 50},
		{ItemNumber: "2", Title: "RPCs for Noobs", Topic: "distributed systems", Quantity: 5, Price: 40},
		{ItemNumber: "3", Title: "Xen and the Art of Surviving Undergraduate School", Topic: "undergraduate school", Quantity: 8, Price: 30},
		{ItemNumber: "4", Title: "Cooking for the Impatient Undergrad", Topic: "undergraduate school", Quantity: 2, Price: 20},
	}
}

// Search returns the books of topic ordered by item number.
func (inv *Inventory) Search(topic string) []domain.Book {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]domain.Book, 0)
	for _, b := range inv.books {
		if b.Topic == topic {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemNumber < out[j].ItemNumber })
	return out
}

func (inv *Inventory) Info(item string) (domain.Book, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	b, ok := inv.books[item]
	return b, ok
}

// Purchase takes one copy of item off the shelf.
func (inv *Inventory) Purchase(item string) (domain.Book, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	b, ok := inv.books[item]
	if !ok {
		return domain.Book{}, ErrUnknownItem
	}
	if !b.InStock() {
		return b, ErrSoldOut
	}
	b.Quantity--
	inv.books[item] = b
	return b, nil
}

// Restock sets the quantity of an existing item.
func (inv *Inventory) Restock(item string, quantity int) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	b, ok := inv.books[item]
	if !ok {
		return false
	}
	b.Quantity = quantity
	inv.books[item] = b
	return true
}
