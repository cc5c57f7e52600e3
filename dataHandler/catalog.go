package dataHandler

import (
	"fmt"
	"log/slog"
)

const NoBooksMessage = "No books in inventory."

type Comparison int

const (
	Different Comparison = iota
	Equal
)

func (c Comparison) String() string {
	if c == Equal {
		return "equal"
	}
	return "different"
}

// Catalog is the ordered book list of one session together with the count of
// books ever created through it. It is not safe for concurrent use.
type Catalog struct {
	books   []*Book
	created int
	logger  *slog.Logger
}

func NewCatalog(logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{logger: logger}
}

// Seed adds the sample books every session starts with.
func Seed(c *Catalog) {
	c.Add(c.NewFictionBook("The Hobbit", "J.R.R. Tolkien", 15.99, "Fantasy"))
	c.Add(c.NewNonFictionBook("Sapiens", "Yuval Noah Harari", 18.50, "History"))
}

// NewFictionBook creates a fiction book and counts it. An empty genre
// becomes DefaultGenre. The book is not added to the catalog.
func (c *Catalog) NewFictionBook(title, author string, price float64, genre string) *Book {
	return c.track(newFiction(title, author, price, genre))
}

// NewNonFictionBook creates a non-fiction book and counts it. An empty
// category becomes DefaultCategory. The book is not added to the catalog.
func (c *Catalog) NewNonFictionBook(title, author string, price float64, category string) *Book {
	return c.track(newNonFiction(title, author, price, category))
}

func (c *Catalog) track(b *Book) *Book {
	c.created++
	c.logger.Debug("book created", "id", b.ID(), "kind", b.Kind(), "total", c.created)
	return b
}

func (c *Catalog) Add(b *Book) {
	c.books = append(c.books, b)
	c.logger.Debug("book added", "id", b.ID(), "position", len(c.books))
}

func (c *Catalog) Len() int { return len(c.books) }

func (c *Catalog) TotalCreated() int { return c.created }

// At returns the book at the 1-based position i.
func (c *Catalog) At(i int) (*Book, error) {
	if i < 1 || i > len(c.books) {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrRange, i, len(c.books))
	}
	return c.books[i-1], nil
}

// ListAll returns one numbered display line per book, or NoBooksMessage
// alone when the catalog is empty.
func (c *Catalog) ListAll() []string {
	if len(c.books) == 0 {
		return []string{NoBooksMessage}
	}
	lines := make([]string, 0, len(c.books))
	for i, b := range c.books {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, b.Display()))
	}
	return lines
}

// Compare checks the prices of the books at positions i and j. Fewer than
// two books is ErrPrecondition whatever the positions are.
func (c *Catalog) Compare(i, j int) (Comparison, error) {
	if len(c.books) < 2 {
		return Different, fmt.Errorf("%w: need at least 2 books to compare, have %d", ErrPrecondition, len(c.books))
	}
	a, err := c.At(i)
	if err != nil {
		return Different, err
	}
	b, err := c.At(j)
	if err != nil {
		return Different, err
	}
	if PriceEquals(a, b) {
		return Equal, nil
	}
	return Different, nil
}

// ApplyDiscount reduces the price of the book at position i by the fraction
// d and returns that book. Nothing changes on error.
func (c *Catalog) ApplyDiscount(i int, d float64) (*Book, error) {
	if err := c.requireBooks(); err != nil {
		return nil, err
	}
	b, err := c.At(i)
	if err != nil {
		return nil, err
	}
	before := b.Price()
	b.ApplyDiscount(d)
	c.logger.Debug("discount applied", "id", b.ID(), "discount", d, "before", before, "after", b.Price())
	return b, nil
}

// CopyAt duplicates the book at position i, counts the copy and appends it.
func (c *Catalog) CopyAt(i int) (*Book, error) {
	if err := c.requireBooks(); err != nil {
		return nil, err
	}
	b, err := c.At(i)
	if err != nil {
		return nil, err
	}
	cp := c.track(b.duplicate())
	c.logger.Debug("book duplicated", "source", b.ID(), "copy", cp.ID(), "title", cp.Title(), "author", cp.Author())
	c.Add(cp)
	return cp, nil
}

func (c *Catalog) requireBooks() error {
	if len(c.books) == 0 {
		return fmt.Errorf("%w: no books available", ErrPrecondition)
	}
	return nil
}
