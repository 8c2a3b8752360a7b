package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/johnnybahia/marcasceara/internal/common"
	"github.com/johnnybahia/marcasceara/internal/core"
	"github.com/johnnybahia/marcasceara/internal/core/async"
	"github.com/johnnybahia/marcasceara/internal/entity"
	"github.com/johnnybahia/marcasceara/internal/export"
	"github.com/johnnybahia/marcasceara/internal/extract"
	"github.com/johnnybahia/marcasceara/internal/ingest"
	"github.com/johnnybahia/marcasceara/internal/pdftext"
	"github.com/johnnybahia/marcasceara/internal/submit"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	var (
		dir     = flag.String("dir", "", "directory with purchase-order PDFs (default from PEDIDOS_DIR)")
		archive = flag.String("archive", "", "directory processed files are moved to (default from PEDIDOS_ARCHIVE_DIR)")
		url     = flag.String("url", "", "aggregation endpoint URL (default from WEBAPP_URL)")
		out     = flag.String("out", "", "optional XLSX output path")
		workers = flag.Int("workers", 0, "concurrent file workers (default from PEDIDOS_WORKERS)")
		dryRun  = flag.Bool("dry-run", false, "extract and report only; skip submission and archival")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *dir != "" {
		cfg.Intake.Dir = *dir
	}
	if *archive != "" {
		cfg.Intake.ArchiveDir = *archive
	}
	if *url != "" {
		cfg.Submit.URL = *url
	}
	if *workers > 0 {
		cfg.Intake.Workers = *workers
	}
	if err := cfg.Validate(!*dryRun); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	ingestor := ingest.NewIngestor(logger)
	paths, stats, err := ingestor.ScanDirectory(cfg.Intake.Dir)
	if err != nil {
		logger.Error("failed to scan intake directory", "dir", cfg.Intake.Dir, "error", err)
		os.Exit(1)
	}
	logger.Info("intake scan complete", "dir", cfg.Intake.Dir, "scanned", stats.Scanned, "matched", stats.Matched)
	if len(paths) == 0 {
		fmt.Println("Nenhum pedido para processar.")
		return
	}

	processor := core.NewProcessor(logger, pdftext.NewReader(logger), extract.NewController(logger))
	pool := async.NewPool(processor, logger,
		async.WithWorkers(cfg.Intake.Workers),
		async.WithFileTimeout(cfg.Intake.FileTimeout),
	)
	results := pool.ProcessAll(ctx, paths)

	var (
		records   []entity.OrderRecord
		processed []string
		failures  int
	)
	for _, r := range results {
		if r.Err != nil {
			failures++
			continue
		}
		records = append(records, r.Records...)
		processed = append(processed, r.Path)
	}

	printReport(records)

	if len(records) == 0 {
		logger.Info("no records extracted", "files", len(paths), "failures", failures)
		return
	}

	if *out != "" {
		xlsxBytes, err := export.NewService(logger).BuildWorkbook(records)
		if err != nil {
			logger.Error("failed to build workbook", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write output file", "path", *out, "error", err)
			os.Exit(1)
		}
		logger.Info("workbook written", "path", *out, "records", len(records))
	}

	if *dryRun {
		fmt.Printf("Dry-run: %d pedidos extraídos de %d arquivos (%d falhas), nada enviado.\n",
			len(records), len(paths), failures)
		return
	}

	client := submit.NewClient(cfg.Submit.URL, cfg.Submit.Timeout, logger)
	if err := client.Send(ctx, records); err != nil {
		logger.Error("failed to submit records", "error", err)
		os.Exit(1)
	}

	archived := ingestor.Archive(cfg.Intake.ArchiveDir, processed)

	logger.Info("run complete",
		"files", len(paths),
		"records", len(records),
		"failures", failures,
		"archived", archived,
	)
	fmt.Printf("Enviados %d pedidos de %d arquivos (%d falhas), %d arquivados.\n",
		len(records), len(paths), failures, archived)
}

// printReport mirrors the layout of the aggregation sheet so the run can be
// eyeballed before anything is sent.
func printReport(records []entity.OrderRecord) {
	if len(records) == 0 {
		return
	}
	fmt.Printf("%-12s | %-12s | %-14s | %-14s | %-16s | %s\n",
		"EMISSÃO", "ENTREGA", "OC", "CLIENTE", "MARCA", "VALOR")
	for _, r := range records {
		fmt.Printf("%-12s | %-12s | %-14s | %-14s | %-16s | %s\n",
			r.ReceivedDate, r.OrderDate, r.OrderNumber, r.Client, r.Brand, r.Value)
	}
}
