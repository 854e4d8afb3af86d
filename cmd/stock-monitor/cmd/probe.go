package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/laiwenqiang/vps-stock-monitor/internal/provider"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

func probeCommand() *cobra.Command {
	var (
		providerID string
		sourceType string
		region     string
	)

	cmd := &cobra.Command{
		Use:   "probe <url>",
		Short: "Fetch and parse one URL without storing anything",
		Long: "Fetches a product page through the provider registry and prints the\n" +
			"parsed stock status as JSON. Useful for checking that a new target\n" +
			"parses before adding it.",
		Example: `  stock-monitor probe "https://www.dmit.io/cart.php?a=add&pid=100"
  stock-monitor probe https://example.com/api/stock --provider mycloud --source-type api`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := domain.SourceType(sourceType)
			if !st.Valid() {
				return fmt.Errorf("invalid --source-type %q (auto, api, json, html)", sourceType)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			target := &domain.MonitorTarget{
				URL:        args[0],
				Provider:   providerID,
				Region:     region,
				SourceType: st,
			}

			reg := buildRegistry(cfg, logger)
			p, err := resolveProvider(reg, target)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Monitor.RequestTimeout*2)
			defer cancel()

			status, err := p.FetchStatus(ctx, target)
			if err != nil {
				return fmt.Errorf("probing %s with %s: %w", target.URL, p.ID(), err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(status)
		},
	}

	cmd.Flags().StringVar(&providerID, "provider", "", "provider id (default: first provider matching the URL)")
	cmd.Flags().StringVar(&sourceType, "source-type", string(domain.SourceAuto), "response parser (auto, api, json, html)")
	cmd.Flags().StringVar(&region, "region", "", "region label copied into the result")

	return cmd
}

// resolveProvider picks the named provider, or the first one supporting
// the target when no name is given.
func resolveProvider(reg *provider.Registry, t *domain.MonitorTarget) (provider.Provider, error) {
	if t.Provider == "" {
		return reg.For(t)
	}

	p, err := reg.Get(t.Provider)
	if err != nil {
		return nil, err
	}
	if !p.Supports(t) {
		return nil, fmt.Errorf("%w: provider %s does not support %s", provider.ErrUnsupportedTarget, p.ID(), t.URL)
	}
	return p, nil
}

func init() {
	rootCmd.AddCommand(probeCommand())
}
