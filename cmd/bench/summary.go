package main

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/extraction-bench/constants"
	"github.com/joseph-ayodele/extraction-bench/internal/bench"
	"github.com/joseph-ayodele/extraction-bench/internal/common"
	"github.com/joseph-ayodele/extraction-bench/internal/report"
)

func newSummaryCmd(cfg *common.Config, logger *slog.Logger) *cobra.Command {
	var opts runOpts
	var minSim float64
	var price string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Score generated per-code summaries against ground truth",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			start := time.Now()

			gt, pred, err := loadPair(opts.gt, opts.pred)
			if err != nil {
				return err
			}

			res := bench.EvaluateSummary(gt, pred, bench.SummaryConfig{MinSimilarity: minSim})
			rep := report.NewSummaryReport(res, time.Since(start), price)

			if err := printJSON(rep); err != nil {
				return err
			}

			out := report.OutputPath(cfg.Reports.Dir, constants.TaskSummary, opts.out)
			if err := report.WriteJSON(out, rep); err != nil {
				return err
			}
			logger.Info("report written",
				"run_id", runID, "task", constants.TaskSummary,
				"path", out, "duration_ms", time.Since(start).Milliseconds())

			return writeXLSX(opts.xlsx, constants.TaskSummary, runID, rep)
		},
	}
	addIOFlags(cmd, &opts, true)
	cmd.Flags().Float64Var(&minSim, "min-sim", cfg.Match.MinSimilarity,
		"similarity threshold for seller names and summary text")
	cmd.Flags().StringVar(&price, "price", constants.PriceFree,
		"price string to write in the report")
	return cmd
}
