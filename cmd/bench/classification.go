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

func newClassificationCmd(cfg *common.Config, logger *slog.Logger) *cobra.Command {
	var opts runOpts
	cmd := &cobra.Command{
		Use:   "classification",
		Short: "Score a predicted file-type listing against ground truth",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			start := time.Now()

			gt, pred, err := loadPair(opts.gt, opts.pred)
			if err != nil {
				return err
			}

			res := bench.EvaluateClassification(gt, pred, bench.ClassificationConfig{
				MinSimilarity: cfg.Match.MinSimilarity,
			})
			rep := report.NewClassificationReport(res)

			if err := printJSON(rep); err != nil {
				return err
			}

			out := report.OutputPath(cfg.Reports.Dir, constants.TaskClassification, opts.out)
			if err := report.WriteJSON(out, rep); err != nil {
				return err
			}
			logger.Info("report written",
				"run_id", runID, "task", constants.TaskClassification,
				"path", out, "duration_ms", time.Since(start).Milliseconds())

			return writeXLSX(opts.xlsx, constants.TaskClassification, runID, rep)
		},
	}
	addIOFlags(cmd, &opts, false)
	return cmd
}
