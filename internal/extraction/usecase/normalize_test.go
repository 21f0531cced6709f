package usecase

import (
	"strings"
	"testing"

	"smb-task-tracker/internal/extraction"
	"smb-task-tracker/internal/model"
)

func TestCoerceMinutes(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *int
	}{
		{"below floor is clamped", float64(3), intPtr(5)},
		{"above ceiling is clamped", float64(9999), intPtr(480)},
		{"in range passes through", float64(60), intPtr(60)},
		{"string is dropped", "60", nil},
		{"bool is dropped", true, nil},
		{"absent is dropped", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coerceMinutes(tt.in)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("coerceMinutes(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("coerceMinutes(%v) = %d, want %d", tt.in, *got, *tt.want)
			}
		})
	}
}

func TestCoercePriority(t *testing.T) {
	tests := []struct {
		in   any
		want model.Priority
	}{
		{"high", model.PriorityHigh},
		{"URGENT", model.PriorityUrgent},
		{" low ", model.PriorityLow},
		{"critical", model.PriorityMedium},
		{nil, model.PriorityMedium},
		{float64(3), model.PriorityMedium},
	}

	for _, tt := range tests {
		if got := coercePriority(tt.in); got != tt.want {
			t.Errorf("coercePriority(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCoerceDueDate(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"2025-07-15", "2025-07-15"},
		{"next Tuesday", ""},
		{"07/15/2025", ""},
		{"", ""},
		{nil, ""},
		{float64(20250715), ""},
	}

	for _, tt := range tests {
		if got := coerceDueDate(tt.in); got != tt.want {
			t.Errorf("coerceDueDate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateText(t *testing.T) {
	t.Run("short text untouched", func(t *testing.T) {
		if got := truncateText("  call Bob  ", 200); got != "call Bob" {
			t.Errorf("got %q, want %q", got, "call Bob")
		}
	})

	t.Run("cut at rune boundary", func(t *testing.T) {
		in := strings.Repeat("ü", 250)
		got := truncateText(in, 200)
		if len([]rune(got)) != 200 {
			t.Errorf("rune count = %d, want 200", len([]rune(got)))
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := truncateText(strings.Repeat("a b ", 100), 50)
		twice := truncateText(once, 50)
		if once != twice {
			t.Errorf("not idempotent: %q != %q", once, twice)
		}
	})
}

func TestNormalizeSubtasks(t *testing.T) {
	desc := extraction.Modes[extraction.ModeBreakdown]

	t.Run("caps at MaxItems", func(t *testing.T) {
		items := make([]any, 0, 9)
		for i := 0; i < 9; i++ {
			items = append(items, map[string]any{"text": "step"})
		}
		got := normalizeSubtasks(items, desc)
		if len(got) != desc.MaxItems {
			t.Errorf("len = %d, want %d", len(got), desc.MaxItems)
		}
	})

	t.Run("drops empty and malformed entries", func(t *testing.T) {
		items := []any{
			map[string]any{"text": "   "},
			"not an object",
			map[string]any{"text": "real step", "priority": "high"},
			map[string]any{"priority": "low"},
		}
		got := normalizeSubtasks(items, desc)
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].Text != "real step" || got[0].Priority != model.PriorityHigh {
			t.Errorf("got %+v", got[0])
		}
	})
}

func TestNormalizeTasks(t *testing.T) {
	desc := extraction.Modes[extraction.ModeVoicemailTasks]

	items := []any{
		map[string]any{
			"text":       "Call Bob about the Henderson account",
			"priority":   "high",
			"dueDate":    "2025-07-15",
			"assignedTo": "Maria",
		},
		map[string]any{
			"text":    "Send the price list",
			"dueDate": "sometime next week",
		},
	}

	got := normalizeTasks(items, desc)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].DueDate != "2025-07-15" || got[0].AssignedTo != "Maria" {
		t.Errorf("got %+v", got[0])
	}
	if got[1].DueDate != "" {
		t.Errorf("non-date dueDate kept: %q", got[1].DueDate)
	}
	if got[1].Priority != model.PriorityMedium {
		t.Errorf("missing priority not defaulted: %q", got[1].Priority)
	}
}

func TestNormalizePayloadSummary(t *testing.T) {
	desc := extraction.Modes[extraction.ModeContentSubtasks]

	payload := map[string]any{
		"subtasks": []any{map[string]any{"text": "do it"}},
		"summary":  strings.Repeat("x", 600),
	}

	res := normalizePayload(payload, desc)
	if len([]rune(res.Summary)) != 500 {
		t.Errorf("summary length = %d, want 500", len([]rune(res.Summary)))
	}
	if len(res.Subtasks) != 1 {
		t.Errorf("subtasks = %d, want 1", len(res.Subtasks))
	}
}

func intPtr(v int) *int { return &v }
