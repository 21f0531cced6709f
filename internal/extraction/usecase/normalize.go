package usecase

import (
	"strings"
	"time"
	"unicode/utf8"

	"smb-task-tracker/internal/extraction"
	"smb-task-tracker/internal/model"
)

// Bounds for estimatedMinutes. Values outside are clamped, never rejected.
const (
	minEstimatedMinutes = 5
	maxEstimatedMinutes = 480
)

const maxSummaryLen = 500

// normalizePayload coerces a decoded model payload into the mode's strict
// output schema. Entries with empty text after trimming are dropped; list
// length caps are applied by truncation.
func normalizePayload(payload map[string]any, desc extraction.Descriptor) pipelineResult {
	res := pipelineResult{
		Summary: truncateText(coerceString(payload["summary"]), maxSummaryLen),
	}

	switch desc.Kind {
	case extraction.KindTasks:
		res.Tasks = normalizeTasks(listValue(payload, "tasks"), desc)
	default:
		res.Subtasks = normalizeSubtasks(listValue(payload, "subtasks"), desc)
	}

	return res
}

func listValue(payload map[string]any, key string) []any {
	items, _ := payload[key].([]any)
	return items
}

func normalizeSubtasks(items []any, desc extraction.Descriptor) []model.Subtask {
	out := make([]model.Subtask, 0, len(items))
	for _, item := range items {
		if len(out) >= desc.MaxItems {
			break
		}
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		text := truncateText(coerceString(entry["text"]), desc.MaxItemLen)
		if text == "" {
			continue
		}

		out = append(out, model.Subtask{
			Text:             text,
			Priority:         coercePriority(entry["priority"]),
			EstimatedMinutes: coerceMinutes(entry["estimatedMinutes"]),
		})
	}
	return out
}

func normalizeTasks(items []any, desc extraction.Descriptor) []model.Task {
	out := make([]model.Task, 0, len(items))
	for _, item := range items {
		if len(out) >= desc.MaxItems {
			break
		}
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		text := truncateText(coerceString(entry["text"]), desc.MaxItemLen)
		if text == "" {
			continue
		}

		out = append(out, model.Task{
			Text:       text,
			Priority:   coercePriority(entry["priority"]),
			DueDate:    coerceDueDate(entry["dueDate"]),
			AssignedTo: truncateText(coerceString(entry["assignedTo"]), 100),
		})
	}
	return out
}

// coerceString returns the trimmed string value, or "" for any other type.
func coerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// coercePriority restricts the value to the known enum; anything else
// (including absent) becomes medium.
func coercePriority(v any) model.Priority {
	p := model.Priority(strings.ToLower(coerceString(v)))
	if p.Valid() {
		return p
	}
	return model.PriorityMedium
}

// coerceMinutes returns a clamped minute estimate, or nil when the value is
// not a number. JSON decoding yields float64 for all numbers.
func coerceMinutes(v any) *int {
	f, ok := v.(float64)
	if !ok {
		return nil
	}

	minutes := int(f)
	if minutes < minEstimatedMinutes {
		minutes = minEstimatedMinutes
	}
	if minutes > maxEstimatedMinutes {
		minutes = maxEstimatedMinutes
	}
	return &minutes
}

// coerceDueDate keeps a YYYY-MM-DD string and maps everything else to "".
// No calendar validation beyond the format.
func coerceDueDate(v any) string {
	s := coerceString(v)
	if s == "" {
		return ""
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ""
	}
	return s
}

// truncateText trims s and cuts it to max runes.
func truncateText(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max]))
}
