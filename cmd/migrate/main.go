package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"stay-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

const defaultDirURL = "file://migrations"

type options struct {
	dirURL  string
	atlas   string
	timeout time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply and inspect database schema migrations",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.dirURL, "dir", defaultDirURL, "migration directory URL")
	root.PersistentFlags().StringVar(&opts.atlas, "atlas", "atlas", "path to the atlas binary")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall timeout")

	root.AddCommand(newUpCmd(opts), newStatusCmd(opts))
	return root
}

func newUpCmd(opts *options) *cobra.Command {
	var (
		amount uint64
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, url, err := setup(opts)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
				URL:    url,
				DirURL: opts.dirURL,
				Amount: amount,
				DryRun: dryRun,
			})
			if err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			for _, f := range res.Applied {
				slog.Info("applied migration", "file", f.Name)
			}
			slog.Info("migrations up to date", "current", res.Current, "target", res.Target, "applied", len(res.Applied))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&amount, "amount", 0, "apply at most N pending files (0 applies all)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print statements without executing them")
	return cmd
}

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the migration status of the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, url, err := setup(opts)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
				URL:    url,
				DirURL: opts.dirURL,
			})
			if err != nil {
				return fmt.Errorf("read migration status: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\ncurrent: %s\nnext: %s\npending: %d\n",
				st.Status, st.Current, st.Next, len(st.Pending))
			return nil
		},
	}
}

func setup(opts *options) (*atlasexec.Client, string, error) {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		return nil, "", err
	}
	client, err := atlasexec.NewClient(".", opts.atlas)
	if err != nil {
		return nil, "", fmt.Errorf("init atlas client: %w", err)
	}
	return client, cfg.BuildDSN(), nil
}
