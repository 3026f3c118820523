package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jroosing/easyhosts/internal/hosts"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the parsed hosts file as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := opts.store().Load()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				hosts.Document
				Stats hosts.Stats `json:"stats"`
			}{doc, doc.Stats()})
		},
	}
}

func newFormatCmd(opts *options) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Normalize the hosts file (one entry per line, sections and loose comments dropped)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := opts.store()
			doc, err := store.Load()
			if err != nil {
				return err
			}
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), hosts.Serialize(doc))
				return nil
			}
			backup, err := store.Save(doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Formatted %s (%d entries, backup: %s)\n", store.Path(), len(doc.Entries), backup)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back instead of printing it")
	return cmd
}

func newSectionsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List section headers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := opts.store().Load()
			if err != nil {
				return err
			}
			for _, s := range doc.Sections {
				fmt.Fprintln(cmd.OutOrStdout(), s.Title)
			}
			return nil
		},
	}
}

func newConflictsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List domains mapped to more than one address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := opts.store().Load()
			if err != nil {
				return err
			}
			conflicts := hosts.Conflicts(doc)
			if len(conflicts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No conflicts")
				return nil
			}
			for _, c := range conflicts {
				parts := make([]string, 0, len(c.Entries))
				for _, o := range c.Entries {
					parts = append(parts, fmt.Sprintf("%s (#%d)", o.IP, o.Index))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c.Domain, strings.Join(parts, ", "))
			}
			return nil
		},
	}
}

func newSetEnabledCmd(opts *options, enabled bool) *cobra.Command {
	use, verb := "disable", "disabled"
	if enabled {
		use, verb = "enable", "enabled"
	}
	return &cobra.Command{
		Use:   use + " <index>",
		Short: "Mark an entry " + verb,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			store := opts.store()
			doc, err := store.Load()
			if err != nil {
				return err
			}
			if err := doc.SetEnabled(index, enabled); err != nil {
				return err
			}
			backup, err := store.Save(doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (backup: %s)\n", verb, hosts.FormatEntry(doc.Entries[index]), backup)
			return nil
		},
	}
}

func newAddCmd(opts *options) *cobra.Command {
	var (
		comment  string
		disabled bool
	)
	cmd := &cobra.Command{
		Use:   "add <ip> <domain>...",
		Short: "Append an entry",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := hosts.Entry{
				Enabled: !disabled,
				IP:      args[0],
				Domains: args[1:],
				Comment: strings.TrimSpace(comment),
			}
			if err := hosts.ValidateEntry(entry); err != nil {
				return err
			}

			store := opts.store()
			doc, err := store.Load()
			if err != nil {
				return err
			}
			doc.Add(entry)
			backup, err := store.Save(doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added #%d: %s (backup: %s)\n", len(doc.Entries)-1, hosts.FormatEntry(entry), backup)
			return nil
		},
	}
	cmd.Flags().StringVarP(&comment, "comment", "c", "", "Comment for the entry")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "Add the entry commented out")
	return cmd
}
