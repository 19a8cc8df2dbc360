package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
)

func newQueriesCommand(opts *cliOptions) *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collection counts and overdue loans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				stats := store.Stats()
				fmt.Printf("Books: %d (%d available)\n", stats.TotalBooks, stats.AvailableBooks)
				fmt.Printf("Active loans: %d (%d overdue)\n", stats.ActiveLoans, stats.OverdueLoans)
				return nil
			})
		},
	}

	var limit int

	popularCmd := &cobra.Command{
		Use:   "popular",
		Short: "Show the most loaned books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				for rank, entry := range store.PopularBooks(limit) {
					fmt.Printf("%d. %s (%d loans)\n", rank+1, entry.Book.Title, entry.Count)
				}
				return nil
			})
		},
	}
	popularCmd.Flags().IntVar(&limit, "limit", circulation.DefaultRankingLimit, "number of entries")

	var readersLimit int

	readersCmd := &cobra.Command{
		Use:   "readers",
		Short: "Show the students with the most loans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				for rank, entry := range store.TopReaders(readersLimit) {
					fmt.Printf("%d. %s (%d loans)\n", rank+1, entry.Student.Name, entry.Count)
				}
				return nil
			})
		},
	}
	readersCmd.Flags().IntVar(&readersLimit, "limit", circulation.DefaultRankingLimit, "number of entries")

	historyCmd := &cobra.Command{
		Use:   "history <student-id>",
		Short: "Show a student's active loans and loan history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				active, closed := store.StudentLoanHistory(args[0])

				for _, loan := range active {
					fmt.Printf("active  %s, due %s\n", loan.BookID, loan.DueDate.Format("2006-01-02"))
				}
				for _, entry := range closed {
					fmt.Printf("closed  %s, returned %s\n", entry.BookID, entry.ReturnDate.Format("2006-01-02"))
				}
				return nil
			})
		},
	}

	queriesCmd := &cobra.Command{
		Use:   "report",
		Short: "Statistics and rankings",
	}
	queriesCmd.AddCommand(statsCmd, popularCmd, readersCmd, historyCmd)

	return queriesCmd
}
