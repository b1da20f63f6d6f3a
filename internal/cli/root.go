package cli

import (
	"context"
	"fmt"
	"strings"

	"hypercart/internal/format"
	"hypercart/internal/reorder"
	"hypercart/internal/store"
	"hypercart/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Config
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}
	cfg, cfgErr := loadConfig()
	app.Config = cfg

	cmd := &cobra.Command{
		Use:          "hypercart",
		Short:        "Hypercart shopping cart CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI (drag categories to reorder them)
  hypercart

  # Scriptable commands
  hypercart categories list --format table
  hypercart categories move cat-ab12cd34 0
  hypercart cart add prd-ef56gh78 --qty 2
`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return writeErr(cmd, cfgErr)
			}
			if err := app.Config.validate(); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", cfg.Dir, "Path to store dir (default: nearest .hypercart, else ~/.hypercart)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", cfg.Format, "Output format (json|table)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", cfg.LogFile, "Append TUI debug logs to this file")
	cmd.PersistentFlags().DurationVar(&app.ScrollInterval, "scroll-interval", cfg.ScrollInterval, "Minimum time between auto-scroll steps while dragging")
	cmd.PersistentFlags().Float64Var(&app.ScrollStep, "scroll-step", cfg.ScrollStep, "Largest auto-scroll step in lines (0 = unlimited)")
	cmd.PersistentFlags().Float64Var(&app.SettleFrequency, "settle-frequency", cfg.SettleFrequency, "Spring frequency of the drop animation")
	cmd.PersistentFlags().Float64Var(&app.SettleDamping, "settle-damping", cfg.SettleDamping, "Spring damping ratio of the drop animation (values below 1 are raised to 1)")

	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newProductsCmd(app))
	cmd.AddCommand(newCartCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(ctx context.Context, app *App) error {
	s, err := openStore(app)
	if err != nil {
		return err
	}
	gcfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	opts := tui.Options{
		LogFile:        app.LogFile,
		ScrollInterval: app.ScrollInterval,
		MaxScrollStep:  app.ScrollStep,
		Spring: reorder.SpringConfig{
			Frequency: app.SettleFrequency,
			Damping:   app.SettleDamping,
		},
	}
	if gcfg.TUI != nil {
		opts.ListStyle = gcfg.TUI.Lists
		opts.Theme = gcfg.TUI.Theme
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return tui.Run(ctx, s, opts)
}

func openStore(app *App) (store.Store, error) {
	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	s := store.Store{Dir: dir}
	if err := s.Ensure(); err != nil {
		return store.Store{}, err
	}
	return s, nil
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
