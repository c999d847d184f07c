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

func newParserCmd(cfg *common.Config, logger *slog.Logger) *cobra.Command {
	var opts runOpts
	cmd := &cobra.Command{
		Use:   "parser",
		Short: "Score parsed form fields against ground truth over a fixed path checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			start := time.Now()

			gt, pred, err := loadPair(opts.gt, opts.pred)
			if err != nil {
				return err
			}

			res := bench.EvaluateParser(gt, pred, bench.ParserConfig{
				MinSimilarity: cfg.Match.MinSimilarity,
			})
			rep := report.NewParserReport(res, time.Since(start), constants.PriceFree)

			if err := printJSON(rep); err != nil {
				return err
			}

			out := report.OutputPath(cfg.Reports.Dir, constants.TaskParser, opts.out)
			if err := report.WriteJSON(out, rep); err != nil {
				return err
			}
			logger.Info("report written",
				"run_id", runID, "task", constants.TaskParser,
				"path", out, "duration_ms", time.Since(start).Milliseconds())

			return writeXLSX(opts.xlsx, constants.TaskParser, runID, rep)
		},
	}
	addIOFlags(cmd, &opts, true)
	return cmd
}
