package constants

import "strings"

// Task is the canonical identifier for a benchmark variant.
type Task string

// Stable values (these exact strings appear in report file names).
const (
	TaskClassification Task = "classification" // file-type classification listings
	TaskHSCode         Task = "hscode"         // HS commodity-code generation
	TaskInvoice        Task = "invoice"        // invoice field extraction
	TaskParser         Task = "parser"         // generic dot-path field parsing
	TaskSummary        Task = "summary"        // per-code summary generation
)

var allTasks = []Task{
	TaskClassification,
	TaskHSCode,
	TaskInvoice,
	TaskParser,
	TaskSummary,
}

// AsStringSlice returns every task identifier as a plain string.
func AsStringSlice() []string {
	result := make([]string, len(allTasks))
	for i, t := range allTasks {
		result[i] = string(t)
	}
	return result
}

// ParseTask canonicalizes user input into a Task.
func ParseTask(input string) (Task, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, t := range allTasks {
		if normalized == string(t) {
			return t, true
		}
	}
	return "", false
}
