package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/colaworks/colaplan/app"
	"github.com/colaworks/colaplan/pkg/export"
)

var (
	planFormat string
	planOutput string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the weekly plan once and write it out",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "json", "output format: json or csv")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// One-shot invocation: no metrics endpoint to serve.
	cfg.Metrics.PrometheusEnabled = false

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	p, err := svc.Plan()
	if err != nil {
		return err
	}

	out := os.Stdout
	if planOutput != "" {
		f, err := os.Create(planOutput)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	switch planFormat {
	case "csv":
		return export.WriteCSV(out, p)
	case "json":
		return export.WriteJSON(out, p)
	default:
		return fmt.Errorf("unknown format %q", planFormat)
	}
}
