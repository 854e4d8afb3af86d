package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

func targetsCmd() *cobra.Command {
	targetsRoot := &cobra.Command{
		Use:     "targets",
		Aliases: []string{"target"},
		Short:   "Manage monitor targets",
		Long: "Manage the product pages that are checked for stock changes.\n" +
			"Each target names a provider, a URL and optional notification overrides.",
	}

	targetsRoot.AddCommand(
		targetListCmd(),
		targetGetCmd(),
		targetCreateCmd(),
		targetEnableCmd(),
		targetDisableCmd(),
		targetDeleteCmd(),
	)

	return targetsRoot
}

func targetListCmd() *cobra.Command {
	var enabledOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all targets",
		Example: `  vsm targets list
  vsm targets list --enabled --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter *bool
			if enabledOnly {
				filter = &enabledOnly
			}
			targets, err := newClient().ListTargets(context.Background(), filter)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), targets)
			}
			if len(targets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No targets found.")
				return nil
			}
			printTargetTable(cmd.OutOrStdout(), targets)
			return nil
		},
	}
	cmd.Flags().BoolVar(&enabledOnly, "enabled", false, "only show enabled targets")

	return cmd
}

func targetGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show target details",
		Example: `  vsm targets get 7f9c...
  vsm targets get 7f9c... --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newClient().GetTarget(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), t)
			}
			printTargetDetail(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func targetCreateCmd() *cobra.Command {
	var (
		providerID     string
		targetURL      string
		name           string
		region         string
		plan           string
		sourceType     string
		disabled       bool
		notifyRestock  bool
		notifyOutStock bool
		notifyPrice    bool
		minInterval    int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new target",
		Long: "Create a target that is checked on every scheduler cycle. Notification\n" +
			"flags override the server's global policy only when given explicitly.",
		Example: `  # Watch a DMIT plan with the default policy
  vsm targets create --provider dmit \
    --url "https://www.dmit.io/cart.php?a=add&pid=100" \
    --name "DMIT LAX Pro Tiny" --region us-west --plan premium_tiny

  # Parse a JSON stock API and also alert on stock-outs
  vsm targets create --provider mycloud --url https://example.com/api/stock \
    --source-type api --notify-out-of-stock --min-interval 30`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if providerID == "" || targetURL == "" {
				return fmt.Errorf("--provider and --url are required")
			}
			st := domain.SourceType(sourceType)
			if !st.Valid() {
				return fmt.Errorf("invalid --source-type %q (auto, api, json, html)", sourceType)
			}

			t := &domain.MonitorTarget{
				Provider:   providerID,
				URL:        targetURL,
				Name:       name,
				Region:     region,
				Plan:       plan,
				SourceType: st,
				Enabled:    !disabled,
			}
			flags := cmd.Flags()
			if flags.Changed("notify-restock") {
				t.NotifyOnRestock = &notifyRestock
			}
			if flags.Changed("notify-out-of-stock") {
				t.NotifyOnOutOfStock = &notifyOutStock
			}
			if flags.Changed("notify-price-change") {
				t.NotifyOnPriceChange = &notifyPrice
			}
			if flags.Changed("min-interval") {
				t.MinNotifyInterval = &minInterval
			}

			created, err := newClient().CreateTarget(context.Background(), t)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Target created: %s (%s)\n", created.DisplayName(), created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&providerID, "provider", "", "provider id (see vsm providers)")
	cmd.Flags().StringVar(&targetURL, "url", "", "product page or API URL")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&region, "region", "", "region label")
	cmd.Flags().StringVar(&plan, "plan", "", "plan label")
	cmd.Flags().StringVar(&sourceType, "source-type", "", "response parser (auto, api, json, html)")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "create the target disabled")
	cmd.Flags().BoolVar(&notifyRestock, "notify-restock", true, "notify when the target comes back in stock")
	cmd.Flags().BoolVar(&notifyOutStock, "notify-out-of-stock", false, "notify when the target sells out")
	cmd.Flags().BoolVar(&notifyPrice, "notify-price-change", false, "notify when the price changes")
	cmd.Flags().IntVar(&minInterval, "min-interval", 60, "minimum minutes between notifications")

	return cmd
}

func targetEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "enable <id>",
		Short:   "Enable a target",
		Example: `  vsm targets enable 7f9c...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTargetSetEnabled(cmd, args[0], true)
		},
	}
}

func targetDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "disable <id>",
		Short:   "Disable a target",
		Example: `  vsm targets disable 7f9c...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTargetSetEnabled(cmd, args[0], false)
		},
	}
}

func targetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a target",
		Example: `  vsm targets delete 7f9c...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteTarget(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Target %s deleted.\n", args[0])
			return nil
		},
	}
}

func runTargetSetEnabled(cmd *cobra.Command, id string, enabled bool) error {
	if err := newClient().SetTargetEnabled(context.Background(), id, enabled); err != nil {
		return err
	}

	action := "enabled"
	if !enabled {
		action = "disabled"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Target %s %s.\n", id, action)
	return nil
}
