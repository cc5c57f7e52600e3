package dataHandler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrParse is returned when user text cannot be converted to a number.
	ErrParse = errors.New("cannot parse input")
	// ErrRange is returned when a book number is outside [1, catalog size].
	ErrRange = errors.New("book number out of range")
	// ErrPrecondition is returned when the catalog is too small for an operation.
	ErrPrecondition = errors.New("not enough books")
)

// ParseIndex converts a 1-based book number typed by the user.
func ParseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: book number %q", ErrParse, s)
	}
	return n, nil
}

func ParsePrice(s string) (float64, error) {
	return parseFloat("price", s)
}

func ParseDiscount(s string) (float64, error) {
	return parseFloat("discount", s)
}

func parseFloat(what, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrParse, what, s)
	}
	return f, nil
}
