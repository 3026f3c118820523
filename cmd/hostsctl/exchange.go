package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jroosing/easyhosts/internal/exchange"
	"github.com/spf13/cobra"
)

func newExportJSONCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export-json",
		Short: "Export the hosts file as a versioned JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := opts.store().Load()
			if err != nil {
				return err
			}
			data, err := exchange.ExportJSON(doc, time.Now())
			if err != nil {
				return err
			}
			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(doc.Entries), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func newImportJSONCmd(opts *options) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "import-json <file>",
		Short: "Merge or replace the hosts file with an exported JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := exchange.ParseMode(mode)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			incoming, err := exchange.ImportJSON(data)
			if err != nil {
				return err
			}

			store := opts.store()
			current, err := store.Load()
			if err != nil {
				return err
			}
			result := exchange.Apply(current, incoming, m)
			backup, err := store.Save(result)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries (%s), %d total (backup: %s)\n",
				len(incoming.Entries), m, len(result.Entries), backup)
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(exchange.ModeMerge), "merge or replace")
	return cmd
}
