package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/extraction-bench/constants"
	"github.com/joseph-ayodele/extraction-bench/internal/bench"
	"github.com/joseph-ayodele/extraction-bench/internal/common"
	"github.com/joseph-ayodele/extraction-bench/internal/report"
)

func newRootCmd(cfg *common.Config, logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "bench",
		Short:         "Score machine-generated structured extractions against ground truth",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newClassificationCmd(cfg, logger),
		newHSCodeCmd(cfg, logger),
		newInvoiceCmd(cfg, logger),
		newParserCmd(cfg, logger),
		newSummaryCmd(cfg, logger),
	)
	return root
}

// runOpts are the I/O flags shared by every benchmark subcommand.
type runOpts struct {
	gt   string
	pred string
	out  string
	xlsx string
}

func addIOFlags(cmd *cobra.Command, opts *runOpts, outRequired bool) {
	cmd.Flags().StringVar(&opts.gt, "gt", "", "ground truth JSON file")
	cmd.Flags().StringVar(&opts.pred, "pred", "", "prediction JSON file")
	cmd.Flags().StringVar(&opts.out, "out", "", "output report JSON file")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "optional XLSX export path")
	_ = cmd.MarkFlagRequired("gt")
	_ = cmd.MarkFlagRequired("pred")
	if outRequired {
		_ = cmd.MarkFlagRequired("out")
	}
}

func loadPair(gtPath, predPath string) (bench.Document, bench.Document, error) {
	gt, err := bench.LoadDocument(gtPath)
	if err != nil {
		return nil, nil, err
	}
	pred, err := bench.LoadDocument(predPath)
	if err != nil {
		return nil, nil, err
	}
	return gt, pred, nil
}

func printJSON(rep any) error {
	s, err := report.EncodeIndent(rep)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func writeXLSX(path string, task constants.Task, runID uuid.UUID, rep any) error {
	if path == "" {
		return nil
	}
	b, err := report.Workbook(task, runID, rep)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
