package circulation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
	"github.com/AntonStoeckl/library-circulation-go/testutil/circulationtest"
)

func Test_IsOverdue_And_DaysUntilDue(t *testing.T) {
	// setup
	store, clock := circulationtest.GivenStore(t, nil)
	dueDate := clock.Now().AddDate(0, 0, 14)

	// assert: full period remaining
	assert.False(t, store.IsOverdue(dueDate))
	assert.Equal(t, 14, store.DaysUntilDue(dueDate))

	// assert: 23 hours remaining rounds up to one day
	clock.AdvanceDays(13)
	clock.Advance(time.Hour)
	assert.False(t, store.IsOverdue(dueDate))
	assert.Equal(t, 1, store.DaysUntilDue(dueDate))

	// assert: a full day past due counts negative
	clock.AdvanceDays(2)
	clock.Advance(-time.Hour)
	assert.True(t, store.IsOverdue(dueDate))
	assert.Equal(t, -1, store.DaysUntilDue(dueDate))
}

func Test_Loans_FilterByOverdueState(t *testing.T) {
	// setup
	store, clock := circulationtest.GivenStore(t, nil)
	overdueBook := circulationtest.GivenBook(t, store, "Moby-Dick")
	onTimeBook := circulationtest.GivenBook(t, store, "Dune")
	student := circulationtest.GivenStudent(t, store, "Ada Lovelace")

	overdueLoan := circulationtest.GivenLoan(t, store, overdueBook.ID, student.ID, circulation.ForDays(7))
	clock.AdvanceDays(10)
	onTimeLoan := circulationtest.GivenLoan(t, store, onTimeBook.ID, student.ID)

	// act + assert
	all := store.Loans(circulation.LoanFilterAll)
	assert.Len(t, all, 2)

	overdue := store.Loans(circulation.LoanFilterOverdue)
	require.Len(t, overdue, 1)
	assert.Equal(t, overdueLoan.ID, overdue[0].ID)

	onTime := store.Loans(circulation.LoanFilterOnTime)
	require.Len(t, onTime, 1)
	assert.Equal(t, onTimeLoan.ID, onTime[0].ID)
}

func Test_Stats_RecomputesOnDemand(t *testing.T) {
	// setup
	store, clock := circulationtest.GivenStore(t, nil)
	ctx := context.Background()
	first := circulationtest.GivenBook(t, store, "Moby-Dick")
	second := circulationtest.GivenBook(t, store, "Dune")
	circulationtest.GivenBook(t, store, "Solaris")
	student := circulationtest.GivenStudent(t, store, "Ada Lovelace")

	circulationtest.GivenLoan(t, store, first.ID, student.ID, circulation.ForDays(7))
	circulationtest.GivenLoan(t, store, second.ID, student.ID)
	clock.AdvanceDays(10)

	// act
	stats := store.Stats()

	// assert
	assert.Equal(t, circulation.Stats{
		TotalBooks:     3,
		AvailableBooks: 1,
		ActiveLoans:    2,
		OverdueLoans:   1,
	}, stats)

	// act: returning a book changes the next computation
	_, err := store.ReturnBook(ctx, first.ID)
	require.NoError(t, err)

	// assert
	stats = store.Stats()
	assert.Equal(t, 2, stats.AvailableBooks)
	assert.Equal(t, 1, stats.ActiveLoans)
	assert.Equal(t, 0, stats.OverdueLoans)
}

func Test_PopularBooks_RanksByCombinedLoanCount(t *testing.T) {
	// setup: bookA loaned and returned twice, bookB once, bookC never
	store, _ := circulationtest.GivenStore(t, nil)
	ctx := context.Background()
	bookA := circulationtest.GivenBook(t, store, "Moby-Dick")
	bookB := circulationtest.GivenBook(t, store, "Dune")
	circulationtest.GivenBook(t, store, "Solaris")
	student := circulationtest.GivenStudent(t, store, "Ada Lovelace")

	for i := 0; i < 2; i++ {
		circulationtest.GivenLoan(t, store, bookA.ID, student.ID)
		_, err := store.ReturnBook(ctx, bookA.ID)
		require.NoError(t, err)
	}

	circulationtest.GivenLoan(t, store, bookB.ID, student.ID)
	_, err := store.ReturnBook(ctx, bookB.ID)
	require.NoError(t, err)

	// act
	rankings := store.PopularBooks(2)

	// assert
	require.Len(t, rankings, 2)
	assert.Equal(t, bookA.ID, rankings[0].Book.ID)
	assert.Equal(t, 2, rankings[0].Count)
	assert.Equal(t, bookB.ID, rankings[1].Book.ID)
	assert.Equal(t, 1, rankings[1].Count)
}

func Test_PopularBooks_CountsActiveLoansToo(t *testing.T) {
	// setup
	store, _ := circulationtest.GivenStore(t, nil)
	ctx := context.Background()
	book := circulationtest.GivenBook(t, store, "Moby-Dick")
	student := circulationtest.GivenStudent(t, store, "Ada Lovelace")

	circulationtest.GivenLoan(t, store, book.ID, student.ID)
	_, err := store.ReturnBook(ctx, book.ID)
	require.NoError(t, err)
	circulationtest.GivenLoan(t, store, book.ID, student.ID)

	// act
	rankings := store.PopularBooks(0)

	// assert: defaulted limit, history plus active tallied together
	require.Len(t, rankings, 1)
	assert.Equal(t, 2, rankings[0].Count)
}

func Test_PopularBooks_DropsDanglingBookReferences(t *testing.T) {
	// setup: history referencing a book that no longer exists
	store, _ := circulationtest.GivenStore(t, nil)
	ctx := context.Background()
	book := circulationtest.GivenBook(t, store, "Moby-Dick")
	student := circulationtest.GivenStudent(t, store, "Ada Lovelace")

	err := store.ImportData(ctx, circulation.Snapshot{
		LoanHistory: []circulation.ClosedLoan{
			{
				Loan:       circulation.Loan{ID: "h1", BookID: book.ID, StudentID: student.ID},
				ReturnDate: circulationtest.DefaultStart,
			},
			{
				Loan:       circulation.Loan{ID: "h2", BookID: "B404", StudentID: student.ID},
				ReturnDate: circulationtest.DefaultStart,
			},
		},
	})
	require.NoError(t, err)

	// act
	rankings := store.PopularBooks(5)

	// assert: the dangling reference is silently dropped
	require.Len(t, rankings, 1)
	assert.Equal(t, book.ID, rankings[0].Book.ID)
}

func Test_PopularBooks_TieOrderIsUnspecified(t *testing.T) {
	// setup: two books with one loan each
	store, _ := circulationtest.GivenStore(t, nil)
	ctx := context.Background()
	bookA := circulationtest.GivenBook(t, store, "Moby-Dick")
	bookB := circulationtest.GivenBook(t, store, "Dune")
	student := circulationtest.GivenStudent(t, store, "Ada Lovelace")

	for _, id := range []string{bookA.ID, bookB.ID} {
		circulationtest.GivenLoan(t, store, id, student.ID)
		_, err := store.ReturnBook(ctx, id)
		require.NoError(t, err)
	}

	// act
	rankings := store.PopularBooks(5)

	// assert: multiset equality only, no order among equal counts
	require.Len(t, rankings, 2)
	ids := []string{rankings[0].Book.ID, rankings[1].Book.ID}
	assert.ElementsMatch(t, []string{bookA.ID, bookB.ID}, ids)
	assert.Equal(t, 1, rankings[0].Count)
	assert.Equal(t, 1, rankings[1].Count)
}

func Test_TopReaders_RanksByCombinedLoanCount(t *testing.T) {
	// setup: one student with two closed loans, one with an active loan
	store, _ := circulationtest.GivenStore(t, nil)
	ctx := context.Background()
	bookA := circulationtest.GivenBook(t, store, "Moby-Dick")
	bookB := circulationtest.GivenBook(t, store, "Dune")
	avid := circulationtest.GivenStudent(t, store, "Ada Lovelace")
	casual := circulationtest.GivenStudent(t, store, "Grace Hopper")

	for _, id := range []string{bookA.ID, bookB.ID} {
		circulationtest.GivenLoan(t, store, id, avid.ID)
		_, err := store.ReturnBook(ctx, id)
		require.NoError(t, err)
	}

	circulationtest.GivenLoan(t, store, bookA.ID, casual.ID)

	// act
	rankings := store.TopReaders(5)

	// assert
	require.Len(t, rankings, 2)
	assert.Equal(t, avid.ID, rankings[0].Student.ID)
	assert.Equal(t, 2, rankings[0].Count)
	assert.Equal(t, casual.ID, rankings[1].Student.ID)
	assert.Equal(t, 1, rankings[1].Count)
}

func Test_TopReaders_TruncatesToLimit(t *testing.T) {
	// setup
	store, _ := circulationtest.GivenStore(t, nil)
	ctx := context.Background()
	book := circulationtest.GivenBook(t, store, "Moby-Dick")

	for _, name := range []string{"Ada Lovelace", "Grace Hopper", "Alan Turing"} {
		student := circulationtest.GivenStudent(t, store, name)
		circulationtest.GivenLoan(t, store, book.ID, student.ID)
		_, err := store.ReturnBook(ctx, book.ID)
		require.NoError(t, err)
	}

	// act + assert
	assert.Len(t, store.TopReaders(2), 2)
	assert.Len(t, store.TopReaders(10), 3)
}
