package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/bilingual/internal/batch"
	"codeberg.org/snonux/bilingual/internal/cli"
	"codeberg.org/snonux/bilingual/internal/phrases"
	"codeberg.org/snonux/bilingual/internal/processor"
	"codeberg.org/snonux/bilingual/internal/report"
	"codeberg.org/snonux/bilingual/internal/translation"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cli.ApplyConfig(flags)
		return run(cmd.Context(), flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, flags *cli.Flags, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, flags.Verbose)

	tables, err := phrases.Default()
	if err != nil {
		return err
	}

	reporter, err := report.NewReporter(stdout, flags.Lang)
	if err != nil {
		return err
	}

	paths, err := selectNotebooks(flags)
	if err != nil {
		return err
	}
	logger.Debug("notebooks selected", "count", len(paths), "dry_run", flags.DryRun)

	proc := processor.NewProcessor(
		translation.NewTranslator(tables),
		processor.FileStore{},
		reporter,
		logger,
		processor.Options{DryRun: flags.DryRun, BackupDir: flags.BackupDir},
	)

	summary, err := proc.ProcessAll(ctx, paths)
	if err != nil {
		return err
	}

	logger.Debug("run finished",
		"updated", summary.Updated,
		"unchanged", summary.Unchanged,
		"failed", len(summary.Failed))
	return nil
}

// selectNotebooks returns the notebooks of a batch file, resolved against
// the root, or every notebook found below root/subdir
func selectNotebooks(flags *cli.Flags) ([]string, error) {
	if flags.BatchFile == "" {
		return batch.ListDocuments(flags.Root, flags.Subdir, flags.Ext)
	}

	listed, err := batch.ReadBatchFile(flags.BatchFile)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(listed))
	for _, p := range listed {
		if !filepath.IsAbs(p) {
			p = filepath.Join(flags.Root, p)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
