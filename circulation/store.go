package circulation

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-circulation-go/kvstore"
)

// Storage is the persistence port the Store writes its collections through.
// The kvstore package and its engine sub-packages provide implementations.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Storage keys for the four collections; each holds one JSON array document.
const (
	KeyBooks       = "books"
	KeyStudents    = "students"
	KeyLoans       = "loans"
	KeyLoanHistory = "loanHistory"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// Store owns the four circulation collections and is the only component that
// mutates them. See the package documentation for the persistence and
// concurrency contract.
type Store struct {
	storage          Storage
	clock            Clock
	loanPeriodDays   int
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector

	books    []Book
	students []Student
	loans    []Loan
	history  []ClosedLoan
}

// NewStore creates a Store on top of the given storage port and loads all four
// collections from it. A key missing in storage loads as an empty collection.
func NewStore(ctx context.Context, storage Storage, options ...Option) (*Store, error) {
	if storage == nil {
		return nil, ErrNilStorage
	}

	store := &Store{
		storage:        storage,
		clock:          time.Now,
		loanPeriodDays: DefaultLoanPeriodDays,
	}

	for _, option := range options {
		if err := option(store); err != nil {
			return nil, err
		}
	}

	if err := store.loadAll(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *Store) loadAll(ctx context.Context) error {
	if err := loadCollection(ctx, s.storage, KeyBooks, &s.books); err != nil {
		return err
	}

	if err := loadCollection(ctx, s.storage, KeyStudents, &s.students); err != nil {
		return err
	}

	if err := loadCollection(ctx, s.storage, KeyLoans, &s.loans); err != nil {
		return err
	}

	if err := loadCollection(ctx, s.storage, KeyLoanHistory, &s.history); err != nil {
		return err
	}

	return nil
}

// loadCollection decodes one collection document into target; a missing key
// leaves the target as an empty collection.
func loadCollection[T any](ctx context.Context, storage Storage, key string, target *[]T) error {
	*target = []T{}

	data, err := storage.Load(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil
		}

		return errors.Join(ErrLoadingCollectionFailed, err)
	}

	if len(data) == 0 {
		return nil
	}

	if unmarshalErr := jsonCodec.Unmarshal(data, target); unmarshalErr != nil {
		return errors.Join(ErrLoadingCollectionFailed, unmarshalErr)
	}

	if *target == nil {
		*target = []T{}
	}

	return nil
}

func persistCollection[T any](ctx context.Context, storage Storage, key string, collection []T) error {
	data, err := jsonCodec.Marshal(collection)
	if err != nil {
		return errors.Join(ErrPersistingCollectionFailed, err)
	}

	if saveErr := storage.Save(ctx, key, data); saveErr != nil {
		return errors.Join(ErrPersistingCollectionFailed, saveErr)
	}

	return nil
}

func (s *Store) persistBooks(ctx context.Context) error {
	return persistCollection(ctx, s.storage, KeyBooks, s.books)
}

func (s *Store) persistStudents(ctx context.Context) error {
	return persistCollection(ctx, s.storage, KeyStudents, s.students)
}

func (s *Store) persistLoans(ctx context.Context) error {
	return persistCollection(ctx, s.storage, KeyLoans, s.loans)
}

func (s *Store) persistHistory(ctx context.Context) error {
	return persistCollection(ctx, s.storage, KeyLoanHistory, s.history)
}
