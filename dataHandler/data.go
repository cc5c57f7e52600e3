package dataHandler

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	DefaultGenre    = "Unknown"
	DefaultCategory = "General"
)

// Variant is the closed set of book kinds. Only Fiction and NonFiction
// implement it.
type Variant interface {
	variant()
}

type Fiction struct { // Fiction carries the genre of the story
	Genre string
}

type NonFiction struct { // NonFiction carries the subject category
	Category string
}

func (Fiction) variant()    {}
func (NonFiction) variant() {}

// Book is a single inventory record. Title, author and variant are fixed at
// construction; only the price changes, through ApplyDiscount.
type Book struct {
	id      uuid.UUID
	title   string
	author  string
	price   float64
	variant Variant
}

func newBook(title, author string, price float64, v Variant) *Book {
	return &Book{
		id:      uuid.Must(uuid.NewV7()),
		title:   title,
		author:  author,
		price:   price,
		variant: v,
	}
}

func newFiction(title, author string, price float64, genre string) *Book {
	if genre == "" {
		genre = DefaultGenre
	}
	return newBook(title, author, price, Fiction{Genre: genre})
}

func newNonFiction(title, author string, price float64, category string) *Book {
	if category == "" {
		category = DefaultCategory
	}
	return newBook(title, author, price, NonFiction{Category: category})
}

func (b *Book) ID() uuid.UUID    { return b.id }
func (b *Book) Title() string    { return b.title }
func (b *Book) Author() string   { return b.author }
func (b *Book) Price() float64   { return b.price }
func (b *Book) Variant() Variant { return b.variant }

// Kind returns the display tag of the book's variant.
func (b *Book) Kind() string {
	switch b.variant.(type) {
	case Fiction:
		return "FICTION"
	case NonFiction:
		return "NON-FICTION"
	}
	return "UNKNOWN"
}

func (b *Book) Display() string {
	var attr string
	switch v := b.variant.(type) {
	case Fiction:
		attr = "Genre: " + v.Genre
	case NonFiction:
		attr = "Category: " + v.Category
	}
	return fmt.Sprintf("[%s] %s by %s | %s | Price: $%.2f", b.Kind(), b.title, b.author, attr, b.price)
}

// ApplyDiscount multiplies the price by (1 - d) in place and returns b.
// d is expected in [0,1) but is not checked.
func (b *Book) ApplyDiscount(d float64) *Book {
	b.price = b.price * (1 - d)
	return b
}

// duplicate returns an independent copy of b under a new record ID.
// Variants hold only strings, so copying the value is a deep copy.
func (b *Book) duplicate() *Book {
	return newBook(b.title, b.author, b.price, b.variant)
}

// PriceEquals reports whether a and b have exactly the same price. No other
// field takes part. The comparison is exact float equality, so prices reached
// through different discount paths may differ in the last bit.
func PriceEquals(a, b *Book) bool {
	return a.price == b.price
}
