package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/laiwenqiang/vps-stock-monitor/internal/api/handlers"
	apiclient "github.com/laiwenqiang/vps-stock-monitor/internal/api/client"
	"github.com/laiwenqiang/vps-stock-monitor/internal/engine"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [id]",
		Short: "Show the latest stock status",
		Example: `  vsm status
  vsm status 7f9c... --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()

			var rows []handlers.TargetStatus
			if len(args) == 1 {
				st, err := c.GetStatus(context.Background(), args[0])
				if err != nil {
					return err
				}
				rows = []handlers.TargetStatus{*st}
			} else {
				all, err := c.ListStatus(context.Background())
				if err != nil {
					return err
				}
				rows = all
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), rows)
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No targets found.")
				return nil
			}
			printStatusTable(cmd.OutOrStdout(), rows)
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [id]",
		Short: "Check targets now",
		Long: "Runs a check immediately. With an id only that target is checked;\n" +
			"otherwise every enabled target is. Notifications are sent as usual.",
		Example: `  vsm check
  vsm check 7f9c...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()

			if len(args) == 1 {
				res, err := c.CheckTarget(context.Background(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(cmd.OutOrStdout(), res)
				}
				printCheckResults(cmd.OutOrStdout(), []engine.TargetResult{*res})
				return nil
			}

			summary, err := c.RunChecks(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), summary)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Checked %d targets: %d ok, %d failed.\n",
				summary.Success+summary.Failed, summary.Success, summary.Failed)
			if len(summary.Results) > 0 {
				printCheckResults(cmd.OutOrStdout(), summary.Results)
			}
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	var (
		targetID string
		since    time.Duration
		limit    int
	)

	params := func() *apiclient.HistoryParams {
		p := &apiclient.HistoryParams{TargetID: targetID, Limit: limit}
		if since > 0 {
			p.Since = time.Now().Add(-since)
		}
		return p
	}

	historyRoot := &cobra.Command{
		Use:   "history",
		Short: "View check and notification history",
	}
	historyRoot.PersistentFlags().StringVar(&targetID, "target", "", "only this target")
	historyRoot.PersistentFlags().DurationVar(&since, "since", 0, "only entries newer than this (e.g. 24h)")
	historyRoot.PersistentFlags().IntVar(&limit, "limit", 20, "maximum number of entries (max 500)")

	historyRoot.AddCommand(&cobra.Command{
		Use:   "checks",
		Short: "List check history, newest first",
		Example: `  vsm history checks --target 7f9c... --since 24h
  vsm history checks --limit 100 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := newClient().ListCheckHistory(context.Background(), params())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), records)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No checks found.")
				return nil
			}
			printCheckHistory(cmd.OutOrStdout(), records)
			return nil
		},
	})

	historyRoot.AddCommand(&cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notify"},
		Short:   "List notification history, newest first",
		Example: `  vsm history notifications --since 168h`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := newClient().ListNotifyHistory(context.Background(), params())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), records)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notifications found.")
				return nil
			}
			printNotifyHistory(cmd.OutOrStdout(), records)
			return nil
		},
	})

	return historyRoot
}

func providersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List providers known to the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			providers, err := newClient().ListProviders(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), providers)
			}
			printProviderTable(cmd.OutOrStdout(), providers)
			return nil
		},
	}
}
