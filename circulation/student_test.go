package circulation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
	"github.com/AntonStoeckl/library-circulation-go/testutil/circulationtest"
)

func intPtr(n int) *int {
	return &n
}

func Test_AddStudent_AutoAssignsNumbers(t *testing.T) {
	// setup
	store, _ := circulationtest.GivenStore(t, nil)
	ctx := context.Background()

	// act
	first, err := store.AddStudent(ctx, circulation.StudentInput{Name: "Ada Lovelace"})
	require.NoError(t, err)

	_, err = store.AddStudent(ctx, circulation.StudentInput{Number: intPtr(41), Name: "Grace Hopper"})
	require.NoError(t, err)

	next, err := store.AddStudent(ctx, circulation.StudentInput{Name: "Alan Turing"})
	require.NoError(t, err)

	// assert
	assert.Equal(t, 0, first.Number)
	assert.Equal(t, 42, next.Number)
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, next.ID)
}

func Test_AddStudent_PermitsDuplicateNumbers(t *testing.T) {
	// setup
	store, _ := circulationtest.GivenStore(t, nil)
	ctx := context.Background()

	_, err := store.AddStudent(ctx, circulation.StudentInput{Number: intPtr(7), Name: "Ada Lovelace"})
	require.NoError(t, err)

	// act
	_, err = store.AddStudent(ctx, circulation.StudentInput{Number: intPtr(7), Name: "Grace Hopper"})

	// assert
	assert.NoError(t, err)
	assert.Len(t, store.Students(), 2)
}

func Test_AddStudent_KeepsRosterSortedByNumber(t *testing.T) {
	// setup
	store, _ := circulationtest.GivenStore(t, nil)
	ctx := context.Background()

	_, err := store.AddStudent(ctx, circulation.StudentInput{Number: intPtr(5), Name: "Ada Lovelace"})
	require.NoError(t, err)

	// act
	_, err = store.AddStudent(ctx, circulation.StudentInput{Number: intPtr(2), Name: "Grace Hopper"})
	require.NoError(t, err)

	// assert
	students := store.Students()
	require.Len(t, students, 2)
	assert.Equal(t, "Grace Hopper", students[0].Name)
	assert.Equal(t, "Ada Lovelace", students[1].Name)
}

func Test_AddStudent_EmptyName_Fails(t *testing.T) {
	// setup
	store, _ := circulationtest.GivenStore(t, nil)

	// act
	_, err := store.AddStudent(context.Background(), circulation.StudentInput{Name: "  "})

	// assert
	assert.ErrorIs(t, err, circulation.ErrEmptyStudentName)
	assert.Empty(t, store.Students())
}

func Test_AddStudentsBulk_ToleratesPartialFailure(t *testing.T) {
	// setup
	store, _ := circulationtest.GivenStore(t, nil)
	inputs := []circulation.StudentInput{
		{Number: intPtr(1), Name: "Ada Lovelace"},
		{Name: ""},
		{Number: intPtr(3), Name: "Alan Turing"},
	}

	// act
	result := store.AddStudentsBulk(context.Background(), inputs)

	// assert
	require.Len(t, result.Added, 2)
	assert.Equal(t, "Ada Lovelace", result.Added[0].Name)
	assert.Equal(t, "Alan Turing", result.Added[1].Name)

	require.Len(t, result.Failed, 1)
	assert.ErrorIs(t, result.Failed[0].Err, circulation.ErrEmptyStudentName)

	assert.Len(t, store.Students(), 2)
}

func Test_DeleteStudent_FailsWithActiveLoans(t *testing.T) {
	// setup
	store, _ := circulationtest.GivenStore(t, nil)
	ctx := context.Background()
	book := circulationtest.GivenBook(t, store, "Moby-Dick")
	student := circulationtest.GivenStudent(t, store, "Ada Lovelace")
	circulationtest.GivenLoan(t, store, book.ID, student.ID)

	// act
	err := store.DeleteStudent(ctx, student.ID)

	// assert
	assert.ErrorIs(t, err, circulation.ErrStudentHasActiveLoans)
	assert.Len(t, store.Students(), 1)
}

func Test_DeleteStudent_HistoryDoesNotBlockDeletion(t *testing.T) {
	// setup
	store, _ := circulationtest.GivenStore(t, nil)
	ctx := context.Background()
	book := circulationtest.GivenBook(t, store, "Moby-Dick")
	student := circulationtest.GivenStudent(t, store, "Ada Lovelace")
	circulationtest.GivenLoan(t, store, book.ID, student.ID)

	_, err := store.ReturnBook(ctx, book.ID)
	require.NoError(t, err)

	// act
	err = store.DeleteStudent(ctx, student.ID)

	// assert
	assert.NoError(t, err)
	assert.Empty(t, store.Students())
}

func Test_DeleteStudent_UnknownID_IsNoOp(t *testing.T) {
	// setup
	store, _ := circulationtest.GivenStore(t, nil)
	circulationtest.GivenStudent(t, store, "Ada Lovelace")

	// act
	err := store.DeleteStudent(context.Background(), "no-such-id")

	// assert
	assert.NoError(t, err)
	assert.Len(t, store.Students(), 1)
}
