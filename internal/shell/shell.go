package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/TemirB/bookstore-client/internal/application/service"
	"github.com/TemirB/bookstore-client/internal/domain"
	"github.com/TemirB/bookstore-client/internal/observability"
)

//go:generate mockgen -source internal/shell/shell.go -destination=internal/shell/shell_mock_test.go -package=shell

type Bookstore interface {
	SearchByTopic(ctx context.Context, topic string) ([]domain.Book, service.LookupStats, error)
	GetInfo(ctx context.Context, item string) (*domain.Book, service.LookupStats, error)
	Purchase(ctx context.Context, item string) (*domain.PurchaseResult, error)
}

type Session interface {
	Totals() observability.Totals
}

// Shell is the menu loop. It runs one operation at a time and always comes
// back to the menu, whatever the outcome.
type Shell struct {
	store   Bookstore
	session Session
	in      io.Reader
	out     io.Writer
	logger  *zap.Logger
}

// New builds a shell; session may be nil.
func New(store Bookstore, session Session, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		store:   store,
		session: session,
		in:      in,
		out:     out,
		logger:  logger,
	}
}

var errClosed = errors.New("input closed")

// Run serves the menu until the user exits, the input ends or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		s.showMenu()
		choice, err := s.ask(ctx, lines, "Enter your choice: ")
		if err != nil {
			return s.stop(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			topic, err := s.ask(ctx, lines, "Enter topic: ")
			if err != nil {
				return s.stop(err)
			}
			s.search(ctx, topic)
		case "2":
			item, err := s.ask(ctx, lines, "Enter item number: ")
			if err != nil {
				return s.stop(err)
			}
			s.info(ctx, item)
		case "3":
			item, err := s.ask(ctx, lines, "Enter item number to purchase: ")
			if err != nil {
				return s.stop(err)
			}
			s.purchase(ctx, item)
		case "4":
			fmt.Fprintln(s.out, "Exiting...")
			s.summary()
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
		}
	}
}

func (s *Shell) showMenu() {
	fmt.Fprintln(s.out, "\nSelect an option:")
	fmt.Fprintln(s.out, "1. Search Books by Topic")
	fmt.Fprintln(s.out, "2. Get Book Info by Item Number")
	fmt.Fprintln(s.out, "3. Purchase Book by Item Number")
	fmt.Fprintln(s.out, "4. Exit")
}

func (s *Shell) ask(ctx context.Context, lines <-chan string, prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	select {
	case line, ok := <-lines:
		if !ok {
			return "", errClosed
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// stop turns end of input and cancellation into a clean exit.
func (s *Shell) stop(err error) error {
	fmt.Fprintln(s.out)
	s.summary()
	if errors.Is(err, errClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Shell) search(ctx context.Context, topic string) {
	books, st, err := s.store.SearchByTopic(ctx, topic)
	if err != nil {
		s.fail(err)
		return
	}
	if len(books) == 0 {
		fmt.Fprintf(s.out, "No books found for topic %q.\n", strings.TrimSpace(topic))
		return
	}
	fmt.Fprintf(s.out, "Books found%s:\n", fromCache(st))
	s.table(books...)
}

func (s *Shell) info(ctx context.Context, item string) {
	book, st, err := s.store.GetInfo(ctx, item)
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "Book info%s:\n", fromCache(st))
	s.table(*book)
}

func (s *Shell) purchase(ctx context.Context, item string) {
	res, err := s.store.Purchase(ctx, item)
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintln(s.out, res.Message)
}

func (s *Shell) fail(err error) {
	s.logger.Debug("operation failed",
		zap.String("kind", domain.KindOf(err).String()),
		zap.Error(err),
	)
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

func (s *Shell) table(books ...domain.Book) {
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tTITLE\tTOPIC\tQUANTITY\tPRICE")
	for _, b := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f\n", b.ItemNumber, b.Title, b.Topic, b.Quantity, b.Price)
	}
	_ = tw.Flush()
}

func (s *Shell) summary() {
	if s.session == nil {
		return
	}
	t := s.session.Totals()
	fmt.Fprintf(s.out, "Session: %d cache hits, %d cache misses, %d invalidations, %d purchases\n",
		t.CacheHits, t.CacheMisses, t.Invalidations, t.Purchases["ok"])
}

func fromCache(st service.LookupStats) string {
	if st.Source == service.SourceCache {
		return " (from cache)"
	}
	return ""
}
