package shellHandler

import (
	dh "github.com/Sabnaj-42/BookStore-CLI/dataHandler"
)

const (
	msgBookAdded      = "✓ Book added!"
	msgNoBooks        = "No books available!"
	msgNeedTwo        = "Need at least 2 books to compare!"
	msgInvalidChoice  = "Invalid choice!"
	msgInvalidPrice   = "Invalid price!"
	msgInvalidInput   = "Invalid input!"
	msgSamePrice      = "Both books have the same price!"
	msgDifferentPrice = "Books have different prices."
)

func listBooks(s *Shell) bool {
	lines := s.catalog.ListAll()
	if s.catalog.Len() > 0 {
		s.printf("\n--- Books in Inventory ---\n")
	}
	for _, line := range lines {
		s.printf("%s\n", line)
	}
	return false
}

func addFictionBook(s *Shell) bool {
	return addBook(s, "Genre: ", s.catalog.NewFictionBook)
}

func addNonFictionBook(s *Shell) bool {
	return addBook(s, "Category: ", s.catalog.NewNonFictionBook)
}

type bookConstructor func(title, author string, price float64, attr string) *dh.Book

func addBook(s *Shell, attrPrompt string, newBook bookConstructor) bool {
	title, ok := s.readLine("Title: ")
	if !ok {
		return true
	}
	author, ok := s.readLine("Author: ")
	if !ok {
		return true
	}
	rawPrice, ok := s.readLine("Price: ")
	if !ok {
		return true
	}
	price, err := dh.ParsePrice(rawPrice)
	if err != nil {
		s.logger.Debug("request rejected", "error", err)
		s.printf("%s\n", msgInvalidPrice)
		return false
	}
	attr, ok := s.readLine(attrPrompt)
	if !ok {
		return true
	}
	s.catalog.Add(newBook(title, author, price, attr))
	s.printf("%s\n", msgBookAdded)
	return false
}

func compareBooks(s *Shell) bool {
	if s.catalog.Len() < 2 {
		s.printf("%s\n", msgNeedTwo)
		return false
	}
	first, quit, ok := readIndex(s, "Enter first book number: ")
	if quit || !ok {
		return quit
	}
	second, quit, ok := readIndex(s, "Enter second book number: ")
	if quit || !ok {
		return quit
	}
	result, err := s.catalog.Compare(first, second)
	if err != nil {
		s.report(err, msgNeedTwo)
		return false
	}
	s.logger.Debug("books compared", "first", first, "second", second, "result", result.String())
	if result == dh.Equal {
		s.printf("%s\n", msgSamePrice)
	} else {
		s.printf("%s\n", msgDifferentPrice)
	}
	return false
}

func applyDiscount(s *Shell) bool {
	if s.catalog.Len() == 0 {
		s.printf("%s\n", msgNoBooks)
		return false
	}
	idx, quit, ok := readIndex(s, "Enter book number: ")
	if quit || !ok {
		return quit
	}
	rawDiscount, ok := s.readLine("Enter discount (0.1 for 10%): ")
	if !ok {
		return true
	}
	d, err := dh.ParseDiscount(rawDiscount)
	if err != nil {
		s.logger.Debug("request rejected", "error", err)
		s.printf("%s\n", msgInvalidInput)
		return false
	}
	b, err := s.catalog.ApplyDiscount(idx, d)
	if err != nil {
		s.report(err, msgNoBooks)
		return false
	}
	s.printf("✓ Discount applied!\n%s\n", b.Display())
	return false
}

func copyBook(s *Shell) bool {
	if s.catalog.Len() == 0 {
		s.printf("%s\n", msgNoBooks)
		return false
	}
	idx, quit, ok := readIndex(s, "Enter book number to copy: ")
	if quit || !ok {
		return quit
	}
	if _, err := s.catalog.CopyAt(idx); err != nil {
		s.report(err, msgNoBooks)
		return false
	}
	s.printf("%s\n", msgBookAdded)
	return false
}

func showTotal(s *Shell) bool {
	s.printf("Total books in system: %d\n", s.catalog.TotalCreated())
	return false
}

func exit(s *Shell) bool {
	s.printf("Goodbye!\n")
	return true
}

// readIndex prompts for a book number and checks it against the catalog.
// quit is set at end of input; ok is false when the number was rejected and
// the user has already been told.
func readIndex(s *Shell, prompt string) (idx int, quit, ok bool) {
	raw, read := s.readLine(prompt)
	if !read {
		return 0, true, false
	}
	idx, err := dh.ParseIndex(raw)
	if err == nil {
		_, err = s.catalog.At(idx)
	}
	if err != nil {
		s.report(err, msgNoBooks)
		return 0, false, false
	}
	return idx, false, true
}
