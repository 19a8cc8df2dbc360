package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
)

func newBooksCommand(opts *cliOptions) *cobra.Command {
	booksCmd := &cobra.Command{
		Use:   "books",
		Short: "Manage the book catalog",
	}

	var bookID, author, publisher string

	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a book to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				book, err := store.AddBook(cmd.Context(), circulation.BookInput{
					ID:        bookID,
					Title:     args[0],
					Author:    author,
					Publisher: publisher,
				})
				if err != nil {
					return err
				}

				fmt.Printf("Added %s: %s\n", book.ID, book.Title)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&bookID, "id", "", "explicit book id (default: next B### id)")
	addCmd.Flags().StringVar(&author, "author", "", "author")
	addCmd.Flags().StringVar(&publisher, "publisher", "", "publisher")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				if err := store.DeleteBook(cmd.Context(), args[0]); err != nil {
					return err
				}

				fmt.Printf("Deleted %s\n", args[0])
				return nil
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List books, optionally filtered by a search query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				query := ""
				if len(args) == 1 {
					query = args[0]
				}

				for _, book := range store.SearchBooks(query) {
					fmt.Printf("%s  %-9s  %s", book.ID, book.Status, book.Title)
					if book.Author != "" {
						fmt.Printf(" by %s", book.Author)
					}
					fmt.Println()
				}
				return nil
			})
		},
	}

	booksCmd.AddCommand(addCmd, deleteCmd, listCmd)

	return booksCmd
}
