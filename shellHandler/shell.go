package shellHandler

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"

	dh "github.com/Sabnaj-42/BookStore-CLI/dataHandler"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// handlerFunc runs one menu action. It returns true when the session is over.
type handlerFunc func(s *Shell) bool

type route struct {
	key     string
	label   string
	handler handlerFunc
}

var menu = []route{
	{"1", "View All Books", listBooks},
	{"2", "Add Fiction Book", addFictionBook},
	{"3", "Add Non-Fiction Book", addNonFictionBook},
	{"4", "Compare Book Prices", compareBooks},
	{"5", "Apply Discount", applyDiscount},
	{"6", "Copy a Book", copyBook},
	{"7", "Show Total Books", showTotal},
	{"8", "Exit", exit},
}

// maxLineSize bounds one input line. Titles are free text of any length.
const maxLineSize = math.MaxInt32

type Options struct {
	Lang   language.Tag
	Logger *slog.Logger
}

// Shell is the interactive menu loop around a catalog. It owns the catalog
// for the whole session.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	printer *message.Printer
	catalog *dh.Catalog
	logger  *slog.Logger
	err     error
}

func New(in io.Reader, out io.Writer, catalog *dh.Catalog, opts Options) *Shell {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Lang == language.Und {
		opts.Lang = language.English
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Shell{
		in:      scanner,
		out:     out,
		printer: message.NewPrinter(opts.Lang),
		catalog: catalog,
		logger:  opts.Logger,
	}
}

// Run shows the menu and serves choices until Exit is chosen, the input ends
// or ctx is cancelled. Input mistakes are reported to the user; only
// terminal I/O failures and ctx errors are returned.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("=== Bookstore Management System ===\n\n")
	for s.err == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printMenu()
		choice, ok := s.readLine("\nChoice: ")
		if !ok {
			break
		}
		h := lookup(strings.TrimSpace(choice))
		if h == nil {
			s.logger.Debug("unknown menu choice", "choice", choice)
			s.printf("%s\n", msgInvalidChoice)
			continue
		}
		if h(s) {
			break
		}
	}
	return s.err
}

func lookup(choice string) handlerFunc {
	for _, r := range menu {
		if r.key == choice {
			return r.handler
		}
	}
	return nil
}

func (s *Shell) printMenu() {
	s.printf("\n--- Menu ---\n")
	for _, r := range menu {
		s.printf("%s. %s\n", r.key, r.label)
	}
}

// readLine prompts and reads one line. It reports false at end of input.
func (s *Shell) readLine(prompt string) (string, bool) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil && s.err == nil {
			s.err = err
		}
		return "", false
	}
	return s.in.Text(), true
}

// printf keeps the first write error; later writes are dropped.
func (s *Shell) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	if _, err := s.printer.Fprintf(s.out, format, args...); err != nil {
		s.err = err
	}
}

// report turns a catalog error into the message the user sees.
func (s *Shell) report(err error, precondition string) {
	s.logger.Debug("request rejected", "error", err)
	switch {
	case errors.Is(err, dh.ErrPrecondition):
		s.printf("%s\n", precondition)
	case errors.Is(err, dh.ErrParse), errors.Is(err, dh.ErrRange):
		s.printf("%s\n", msgInvalidChoice)
	default:
		s.printf("Error: %v\n", err)
	}
}
