package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
)

func newLoansCommand(opts *cliOptions) *cobra.Command {
	loansCmd := &cobra.Command{
		Use:   "loans",
		Short: "Manage active loans",
	}

	var days int
	var note string

	issueCmd := &cobra.Command{
		Use:   "issue <book-id> <student-id>",
		Short: "Loan a book to a student",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				current, past := store.HasStudentBorrowedBook(args[1], args[0])
				if current || past {
					fmt.Println("Note: this student has borrowed this book before")
				}

				var loanOptions []circulation.LoanOption
				if cmd.Flags().Changed("days") {
					loanOptions = append(loanOptions, circulation.ForDays(days))
				}
				if note != "" {
					loanOptions = append(loanOptions, circulation.WithNote(note))
				}

				loan, err := store.LoanBook(cmd.Context(), args[0], args[1], loanOptions...)
				if err != nil {
					return err
				}

				fmt.Printf("Loaned %s until %s\n", loan.BookID, loan.DueDate.Format("2006-01-02"))
				return nil
			})
		},
	}
	issueCmd.Flags().IntVar(&days, "days", circulation.DefaultLoanPeriodDays, "loan period in calendar days")
	issueCmd.Flags().StringVar(&note, "note", "", "free-text note on the loan")

	returnCmd := &cobra.Command{
		Use:   "return <book-id>",
		Short: "Return a loaned book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				closed, err := store.ReturnBook(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				fmt.Printf("Returned %s on %s\n", closed.BookID, closed.ReturnDate.Format("2006-01-02"))
				return nil
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <book-id>",
		Short: "Remove a mistaken loan without a history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				if err := store.DeleteLoan(cmd.Context(), args[0]); err != nil {
					return err
				}

				fmt.Printf("Deleted loan on %s\n", args[0])
				return nil
			})
		},
	}

	var filterName string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List active loans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := parseLoanFilter(filterName)
			if err != nil {
				return err
			}

			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				for _, loan := range store.Loans(filter) {
					marker := " "
					if store.IsOverdue(loan.DueDate) {
						marker = "!"
					}
					fmt.Printf("%s %s -> %s, due %s (%d days)\n",
						marker, loan.BookID, loan.StudentID,
						loan.DueDate.Format("2006-01-02"), store.DaysUntilDue(loan.DueDate))
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&filterName, "filter", "all", "all|on-time|overdue")

	loansCmd.AddCommand(issueCmd, returnCmd, deleteCmd, listCmd)

	return loansCmd
}

func parseLoanFilter(name string) (circulation.LoanFilter, error) {
	switch name {
	case "all", "":
		return circulation.LoanFilterAll, nil
	case "on-time":
		return circulation.LoanFilterOnTime, nil
	case "overdue":
		return circulation.LoanFilterOverdue, nil
	default:
		return circulation.LoanFilterAll, fmt.Errorf("unknown loan filter %q", name)
	}
}
