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

func newHSCodeCmd(cfg *common.Config, logger *slog.Logger) *cobra.Command {
	var opts runOpts
	var minSim float64
	var price string
	cmd := &cobra.Command{
		Use:   "hscode",
		Short: "Score generated HS codes (prefix accuracy 1..10) against ground truth",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			start := time.Now()

			gt, pred, err := loadPair(opts.gt, opts.pred)
			if err != nil {
				return err
			}

			res := bench.EvaluateHSCode(gt, pred, bench.HSCodeConfig{MinSimilarity: minSim})
			rep := report.NewHSCodeReport(res, time.Since(start), price)

			if err := printJSON(rep); err != nil {
				return err
			}

			out := report.OutputPath(cfg.Reports.Dir, constants.TaskHSCode, opts.out)
			if err := report.WriteJSON(out, rep); err != nil {
				return err
			}
			logger.Info("report written",
				"run_id", runID, "task", constants.TaskHSCode,
				"path", out, "duration_ms", time.Since(start).Milliseconds())

			return writeXLSX(opts.xlsx, constants.TaskHSCode, runID, rep)
		},
	}
	addIOFlags(cmd, &opts, true)
	cmd.Flags().Float64Var(&minSim, "min-sim", cfg.Match.MinSimilarity,
		"similarity threshold for seller/item names")
	cmd.Flags().StringVar(&price, "price", constants.PriceFree,
		"price string to write in the report")
	return cmd
}
