// Command seed populates a storage engine with a realistic demo data set:
// a book catalog, a student roster, and a mix of active, overdue, and
// returned loans.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
	"github.com/AntonStoeckl/library-circulation-go/example/shared/config"
)

type seedConfig struct {
	configPath string
	engine     string
	books      int
	students   int
	loanCycles int
}

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	appConfig, err := config.Load(cfg.configPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	if cfg.engine != "" {
		appConfig.Engine = cfg.engine
	}

	storage, cleanup, err := config.BuildStorage(ctx, appConfig)
	if err != nil {
		log.Fatal("Failed to build storage: ", err)
	}
	defer cleanup()

	store, err := circulation.NewStore(ctx, storage)
	if err != nil {
		log.Fatal("Failed to create store: ", err)
	}

	if err = seed(ctx, store, cfg); err != nil {
		log.Fatal("Seeding failed: ", err)
	}

	stats := store.Stats()
	fmt.Printf("Seeded %d books, %d students, %d active loans (%d overdue)\n",
		stats.TotalBooks, len(store.Students()), stats.ActiveLoans, stats.OverdueLoans)
}

func parseFlags() seedConfig {
	cfg := seedConfig{}

	flag.StringVar(&cfg.configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&cfg.engine, "engine", "", "storage engine: memory|file|sqlite|postgres|redis")
	flag.IntVar(&cfg.books, "books", 50, "number of books to create")
	flag.IntVar(&cfg.students, "students", 20, "number of students to create")
	flag.IntVar(&cfg.loanCycles, "loan-cycles", 100, "number of loan/return cycles to simulate")
	flag.Parse()

	if cfg.books < 1 || cfg.students < 1 || cfg.loanCycles < 0 {
		fmt.Fprintln(os.Stderr, "books and students must be positive, loan-cycles non-negative")
		os.Exit(2)
	}

	return cfg
}

var titles = []string{
	"The Master and Margarita", "One Hundred Years of Solitude", "Moby-Dick",
	"Dune", "Solaris", "The Name of the Rose", "Beloved", "Kindred",
	"The Left Hand of Darkness", "Invisible Cities",
}

var authors = []string{
	"Mikhail Bulgakov", "Gabriel García Márquez", "Herman Melville",
	"Frank Herbert", "Stanisław Lem", "Umberto Eco", "Toni Morrison",
	"Octavia E. Butler", "Ursula K. Le Guin", "Italo Calvino",
}

var firstNames = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Donald", "Margaret", "John", "Frances", "Tony"}
var lastNames = []string{"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Knuth", "Hamilton", "Backus", "Allen", "Hoare"}

func seed(ctx context.Context, store *circulation.Store, cfg seedConfig) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	books := make([]circulation.Book, 0, cfg.books)
	for i := 0; i < cfg.books; i++ {
		pick := i % len(titles)
		title := titles[pick]
		if i >= len(titles) {
			title = fmt.Sprintf("%s (copy %d)", title, i/len(titles)+1)
		}

		book, err := store.AddBook(ctx, circulation.BookInput{
			Title:  title,
			Author: authors[pick],
		})
		if err != nil {
			return err
		}

		books = append(books, book)
	}

	students := make([]circulation.Student, 0, cfg.students)
	for i := 0; i < cfg.students; i++ {
		name := fmt.Sprintf("%s %s",
			firstNames[rng.Intn(len(firstNames))],
			lastNames[rng.Intn(len(lastNames))])

		student, err := store.AddStudent(ctx, circulation.StudentInput{Name: name})
		if err != nil {
			return err
		}

		students = append(students, student)
	}

	// Loan/return cycles build up history; roughly a third of the loans at
	// the end stay active, and roughly a fifth of those are already overdue.
	for i := 0; i < cfg.loanCycles; i++ {
		book := books[rng.Intn(len(books))]
		student := students[rng.Intn(len(students))]

		days := 7 + rng.Intn(21)
		if rng.Intn(5) == 0 {
			// a due date in the past makes the loan overdue right away
			days = -(1 + rng.Intn(14))
		}

		_, err := store.LoanBook(ctx, book.ID, student.ID, circulation.ForDays(days))
		if err != nil {
			// the book is already out, pick another one next round
			continue
		}

		if rng.Intn(3) > 0 {
			if _, err = store.ReturnBook(ctx, book.ID); err != nil {
				return err
			}
		}
	}

	return nil
}
