package main

import (
	"os"
	"runtime"

	"github.com/jroosing/easyhosts/internal/hostsfile"
	"github.com/spf13/cobra"
)

type options struct {
	file      string
	backupDir string
}

func (o *options) store() *hostsfile.Store {
	return hostsfile.New(o.file, hostsfile.WithBackupDir(o.backupDir))
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "hostsctl",
		Short: "Inspect and edit the system hosts file",
		Long: `hostsctl - Read, edit, back up and exchange hosts files.

Every command that changes the file first writes a timestamped backup
(hosts.bak_YYYYMMDD_HHMMSS) next to it, or into --backup-dir.
Writing the system hosts file usually requires administrator rights.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.file, "file", "f", hostsfile.DefaultPath(runtime.GOOS), "Hosts file to operate on")
	root.PersistentFlags().StringVar(&opts.backupDir, "backup-dir", "", "Backup directory (default: the hosts file's directory)")

	root.AddCommand(
		newShowCmd(opts),
		newFormatCmd(opts),
		newSectionsCmd(opts),
		newConflictsCmd(opts),
		newSetEnabledCmd(opts, true),
		newSetEnabledCmd(opts, false),
		newAddCmd(opts),
		newExportJSONCmd(opts),
		newImportJSONCmd(opts),
		newBackupCmd(opts),
		newBackupsCmd(opts),
		newRestoreCmd(opts),
	)
	return root
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
