package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/procurement-reports/internal/config"
	"github.com/carson-networks/procurement-reports/internal/logging"
	"github.com/carson-networks/procurement-reports/internal/report"
	"github.com/carson-networks/procurement-reports/internal/service"
	"github.com/carson-networks/procurement-reports/internal/source"
	"github.com/carson-networks/procurement-reports/internal/spreadsheet"
)

// workbookExporter is the part of the report service the CLI drives.
type workbookExporter interface {
	CostReductionWorkbook(ctx context.Context, vendor string, layout report.Layout) (*service.Workbook, error)
	TopSuppliersWorkbook(ctx context.Context) (*service.Workbook, error)
}

type exportEnv struct {
	logger   *logrus.Logger
	exporter workbookExporter
}

// newRootCmd builds the CLI. A nil exporter is replaced by one built from the
// environment config when a subcommand runs.
func newRootCmd(exporter workbookExporter) *cobra.Command {
	env := &exportEnv{exporter: exporter}

	root := &cobra.Command{
		Use:           "export",
		Short:         "Write procurement reports to xlsx files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(newCostReductionCmd(env), newTopSuppliersCmd(env))
	return root
}

func (e *exportEnv) init() error {
	if e.exporter != nil {
		if e.logger == nil {
			e.logger = logrus.StandardLogger()
		}
		return nil
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
	}

	e.logger = logging.SetupLogging(envConfig.LogLevel)
	fetcher := source.NewHTTPFetcher(
		source.WithTimeout(envConfig.FetchTimeout),
		source.WithHeader("User-Agent", source.UserAgent),
		source.WithLogger(e.logger),
	)
	e.exporter = service.NewReportService(fetcher, spreadsheet.NewWriter(), envConfig.SourceURL)
	return nil
}

func newCostReductionCmd(env *exportEnv) *cobra.Command {
	var vendor, layout, out string

	cmd := &cobra.Command{
		Use:   "cost-reduction",
		Short: "Export one vendor's cost reduction report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := report.Layout(layout)
			if l != report.LayoutMaterial && l != report.LayoutVendor {
				return fmt.Errorf("unknown layout %q", layout)
			}

			wb, err := env.exporter.CostReductionWorkbook(cmd.Context(), vendor, l)
			if err != nil {
				return err
			}
			return env.save(wb, out)
		},
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor identifier, matched exactly; empty matches lines with no vendor")
	cmd.Flags().StringVar(&layout, "layout", string(report.LayoutMaterial), "first sheet column: material or vendor")
	cmd.Flags().StringVarP(&out, "out", "o", report.CostReductionFilename, "output file")
	return cmd
}

func newTopSuppliersCmd(env *exportEnv) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "top-suppliers",
		Short: "Export the top suppliers by received value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := env.exporter.TopSuppliersWorkbook(cmd.Context())
			if err != nil {
				return err
			}
			return env.save(wb, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", report.TopSuppliersFilename, "output file")
	return cmd
}

func (e *exportEnv) save(wb *service.Workbook, path string) error {
	if err := os.WriteFile(path, wb.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	e.logger.WithFields(logrus.Fields{
		"file":  path,
		"bytes": len(wb.Data),
	}).Info("export.saved")
	return nil
}
