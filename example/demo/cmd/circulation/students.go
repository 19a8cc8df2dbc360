package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
	"github.com/AntonStoeckl/library-circulation-go/example/bulkimport"
)

func newStudentsCommand(opts *cliOptions) *cobra.Command {
	studentsCmd := &cobra.Command{
		Use:   "students",
		Short: "Manage the student roster",
	}

	var number int

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a student to the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				input := circulation.StudentInput{Name: args[0]}
				if cmd.Flags().Changed("number") {
					input.Number = &number
				}

				student, err := store.AddStudent(cmd.Context(), input)
				if err != nil {
					return err
				}

				fmt.Printf("Added #%d %s (%s)\n", student.Number, student.Name, student.ID)
				return nil
			})
		},
	}
	addCmd.Flags().IntVar(&number, "number", 0, "student number (default: max+1)")

	var format string

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk-register students from a text or CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var inputs []circulation.StudentInput
			switch {
			case format == "csv" || (format == "" && strings.HasSuffix(args[0], ".csv")):
				inputs = bulkimport.ParseCSV(string(data))
			default:
				inputs = bulkimport.ParseFreeText(string(data))
			}

			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				result := store.AddStudentsBulk(cmd.Context(), inputs)

				fmt.Printf("Registered %d students, %d failed\n", len(result.Added), len(result.Failed))
				for _, failure := range result.Failed {
					fmt.Printf("  failed: %q: %v\n", failure.Input.Name, failure.Err)
				}
				return nil
			})
		},
	}
	importCmd.Flags().StringVar(&format, "format", "", "input format: text|csv (default: by file extension)")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a student from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				if err := store.DeleteStudent(cmd.Context(), args[0]); err != nil {
					return err
				}

				fmt.Printf("Deleted %s\n", args[0])
				return nil
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the roster sorted by student number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				for _, student := range store.Students() {
					fmt.Printf("#%-5d %s  (%s)\n", student.Number, student.Name, student.ID)
				}
				return nil
			})
		},
	}

	studentsCmd.AddCommand(addCmd, importCmd, deleteCmd, listCmd)

	return studentsCmd
}
