package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pladria/adapters/excel"
	"pladria/app"
	"pladria/domain/core"
	"pladria/internal/config"
	"pladria/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "pladria",
		Short: "Suivi Global aggregation engine",
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var (
		file  string
		start string
		end   string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the dashboard payload for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := parseRange(start, end)
			if err != nil {
				return err
			}

			wb, err := excel.NewWorkbookReader(file).Load()
			if err != nil {
				return err
			}

			service := app.NewReportService(wb)
			payload, findings, err := service.Generate(context.Background(), rng)
			if err != nil {
				return err
			}

			for _, f := range findings.Advisories() {
				fmt.Fprintf(os.Stderr, "advisory [%s] %s\n", f.Code, f.Message)
			}

			enc, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Println(string(enc))
				return nil
			}
			return os.WriteFile(out, enc, 0o644)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the Suivi Global .xlsx file")
	cmd.Flags().StringVar(&start, "start", "", "range start (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&end, "end", "", "range end (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&out, "out", "", "write the payload JSON to this file instead of stdout")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newServeCmd() *cobra.Command {
	var (
		file string
		port string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard payload over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				file = cfg.Paths.WorkbookFile
				if port == "" {
					port = cfg.Server.Port
				}
			}
			if port == "" {
				port = "8080"
			}

			wb, err := excel.NewWorkbookReader(file).Load()
			if err != nil {
				return err
			}

			server := ui.NewServer(ui.Config{Port: port}, app.NewReportService(wb))
			return server.Start()
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the Suivi Global .xlsx file (defaults to SUIVI_GLOBAL_FILE)")
	cmd.Flags().StringVar(&port, "port", "", "listen port (defaults to PORT)")
	return cmd
}

func parseRange(start, end string) (core.DateRange, error) {
	const layout = "2006-01-02"
	s, err := time.Parse(layout, start)
	if err != nil {
		return core.DateRange{}, fmt.Errorf("invalid --start: %w", err)
	}
	e, err := time.Parse(layout, end)
	if err != nil {
		return core.DateRange{}, fmt.Errorf("invalid --end: %w", err)
	}
	return core.NewDateRange(s, e), nil
}
