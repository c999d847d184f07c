package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/extraction-bench/constants"
	"github.com/joseph-ayodele/extraction-bench/internal/bench"
	"github.com/joseph-ayodele/extraction-bench/internal/common"
	"github.com/joseph-ayodele/extraction-bench/internal/report"
)

func newInvoiceCmd(cfg *common.Config, logger *slog.Logger) *cobra.Command {
	var opts runOpts
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Score an extracted invoice against ground truth",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			start := time.Now()

			gt, pred, err := loadPair(opts.gt, opts.pred)
			if err != nil {
				return err
			}

			res := bench.EvaluateInvoice(gt, pred, bench.InvoiceConfig{
				MinSimilarity: cfg.Match.InvoiceMinSimilarity,
				NumTolerance:  cfg.Match.NumTolerance,
			})
			rep := report.NewInvoiceReport(res, time.Since(start), constants.PriceInvoice)

			printInvoiceSummary(rep, res.OverallScore)

			out := report.OutputPath(cfg.Reports.Dir, constants.TaskInvoice, opts.out)
			if err := report.WriteJSON(out, rep); err != nil {
				return err
			}
			logger.Info("report written",
				"run_id", runID, "task", constants.TaskInvoice,
				"path", out, "duration_ms", time.Since(start).Milliseconds())

			return writeXLSX(opts.xlsx, constants.TaskInvoice, runID, rep)
		},
	}
	addIOFlags(cmd, &opts, false)
	return cmd
}

func printInvoiceSummary(rep *report.InvoiceReport, overallScore float64) {
	banner := strings.Repeat("=", 50)
	fmt.Println()
	fmt.Println(banner)
	fmt.Println("INVOICE PROCESSING BENCHMARK RESULTS")
	fmt.Println(banner)
	fmt.Printf("\nSeller Name: %s\n", rep.SellerName)
	fmt.Printf("Sum Total Quantity: %s\n", rep.SumTotalQuantity)
	fmt.Printf("Sum Total Price: %s\n", rep.SumTotalPrice)
	fmt.Printf("Currency: %s\n", rep.Currency)
	fmt.Printf("n_items: %v\n", rep.NItems)
	fmt.Printf("Item Count Match: %s\n", rep.ItemCountMatch)
	fmt.Printf("Missing Items: %s\n", rep.MissingItems)
	fmt.Printf("Extra Items: %s\n", rep.ExtraItems)
	fmt.Println("\nItems:")
	fmt.Printf("  item_name: %s\n", rep.Items.ItemName)
	fmt.Printf("  quantity: %s\n", rep.Items.Quantity)
	fmt.Printf("  unit_price: %s\n", rep.Items.UnitPrice)
	fmt.Printf("  total_price: %s\n", rep.Items.TotalPrice)
	fmt.Printf("\nOverall Score: %.2f %%\n", overallScore)
	fmt.Printf("Time: %s\n", rep.TimeSeconds)
	fmt.Printf("Price: %s\n", rep.Price)
	fmt.Println(banner)
}
