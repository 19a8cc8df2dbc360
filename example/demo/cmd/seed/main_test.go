package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
	"github.com/AntonStoeckl/library-circulation-go/kvstore/memoryengine"
)

func Test_Seed_ProducesBooksStudentsAndLoanMix(t *testing.T) {
	// setup
	ctx := context.Background()
	store, err := circulation.NewStore(ctx, memoryengine.NewEngine())
	require.NoError(t, err, "error in arranging test data")

	cfg := seedConfig{books: 120, students: 15, loanCycles: 3000}

	// act
	err = seed(ctx, store, cfg)

	// assert
	require.NoError(t, err)

	stats := store.Stats()
	assert.Equal(t, cfg.books, stats.TotalBooks)
	assert.Len(t, store.Students(), cfg.students)
	assert.Positive(t, stats.ActiveLoans)
	assert.Positive(t, stats.OverdueLoans, "the seeded mix should include overdue loans")

	assert.NotEmpty(t, store.ExportData().LoanHistory, "the seeded mix should include returned loans")
}
