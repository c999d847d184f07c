package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/extraction-bench/constants"
)

// Workbook renders any report as a single-sheet XLSX: a metadata block
// (task, run id, generated-at) followed by metric/value rows. Nested report
// sections flatten to dotted metric names.
func Workbook(task constants.Task, runID uuid.UUID, rep any) ([]byte, error) {
	rows, err := flattenReport(rep)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Report"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, "Metric")
	write(2, 1, "Value")
	write(1, 2, "task")
	write(2, 2, string(task))
	write(1, 3, "run_id")
	write(2, 3, runID.String())
	write(1, 4, "generated_at")
	write(2, 4, time.Now().UTC().Format(time.RFC3339))

	row := 5
	for _, kv := range rows {
		write(1, row, kv[0])
		write(2, row, kv[1])
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// flattenReport lowers a report struct to sorted (metric, value) pairs via
// its JSON form, so the workbook always mirrors the serialized report.
func flattenReport(rep any) ([][2]string, error) {
	b, err := json.Marshal(rep)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}

	var rows [][2]string
	flattenInto(&rows, "", m)
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	return rows, nil
}

func flattenInto(rows *[][2]string, prefix string, m map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(rows, key, nested)
			continue
		}
		*rows = append(*rows, [2]string{key, fmt.Sprintf("%v", v)})
	}
}
