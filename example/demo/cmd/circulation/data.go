package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
)

func newDataCommand(opts *cliOptions) *cobra.Command {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Backup, restore, and reset the data set",
	}

	exportCmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write a backup of all collections to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				data, err := store.ExportData().ToJSON()
				if err != nil {
					return err
				}

				if err = os.WriteFile(args[0], data, 0o644); err != nil {
					return err
				}

				fmt.Printf("Exported to %s\n", args[0])
				return nil
			})
		},
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore collections from a backup file",
		Long: "Restore collections from a backup file. Collections absent from " +
			"the backup are left untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			snapshot, err := circulation.SnapshotFromJSON(data)
			if err != nil {
				return err
			}

			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				if err := store.ImportData(cmd.Context(), snapshot); err != nil {
					return err
				}

				fmt.Printf("Imported backup from %s\n", snapshot.ExportDate.Format("2006-01-02 15:04"))
				return nil
			})
		},
	}

	var confirmed bool

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all books, students, loans, and history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to clear all data without --yes")
			}

			return opts.withStore(cmd.Context(), func(store *circulation.Store) error {
				if err := store.ClearAllData(cmd.Context()); err != nil {
					return err
				}

				fmt.Println("All data cleared")
				return nil
			})
		},
	}
	clearCmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the irreversible clear")

	dataCmd.AddCommand(exportCmd, importCmd, clearCmd)

	return dataCmd
}
