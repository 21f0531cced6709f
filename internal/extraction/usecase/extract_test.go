package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smb-task-tracker/internal/extraction"
	"smb-task-tracker/internal/model"
)

func TestBreakdown(t *testing.T) {
	ctx := context.Background()

	t.Run("success with fenced response", func(t *testing.T) {
		gen := &mockGenerator{text: "```json\n{\"subtasks\":[{\"text\":\"Gather the numbers\",\"priority\":\"high\",\"estimatedMinutes\":60},{\"text\":\"Draft the outline\"}],\"summary\":\"Two steps.\"}\n```"}
		uc := newTestUC(gen, nil)

		out, err := uc.Breakdown(ctx, extraction.BreakdownInput{Text: "Prepare quarterly report"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Subtasks) != 2 {
			t.Fatalf("subtasks = %d, want 2", len(out.Subtasks))
		}
		if out.Subtasks[0].Priority != model.PriorityHigh {
			t.Errorf("priority = %q, want high", out.Subtasks[0].Priority)
		}
		if out.Subtasks[0].EstimatedMinutes == nil || *out.Subtasks[0].EstimatedMinutes != 60 {
			t.Errorf("estimatedMinutes = %v, want 60", out.Subtasks[0].EstimatedMinutes)
		}
		if out.Subtasks[1].Priority != model.PriorityMedium {
			t.Errorf("missing priority not defaulted: %q", out.Subtasks[1].Priority)
		}
		if out.Summary != "Two steps." {
			t.Errorf("summary = %q", out.Summary)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		gen := &mockGenerator{}
		uc := newTestUC(gen, nil)

		_, err := uc.Breakdown(ctx, extraction.BreakdownInput{Text: "   "})
		if !errors.Is(err, extraction.ErrEmptyInput) {
			t.Fatalf("err = %v, want ErrEmptyInput", err)
		}
		if gen.calls != 0 {
			t.Errorf("generator called %d times for invalid input", gen.calls)
		}
	})

	t.Run("generation failure surfaces typed error", func(t *testing.T) {
		uc := newTestUC(&mockGenerator{err: errors.New("upstream 503")}, nil)

		_, err := uc.Breakdown(ctx, extraction.BreakdownInput{Text: "Prepare quarterly report"})
		if !errors.Is(err, extraction.ErrGenerationFailed) {
			t.Fatalf("err = %v, want ErrGenerationFailed", err)
		}
	})

	t.Run("unparseable response surfaces typed error", func(t *testing.T) {
		uc := newTestUC(&mockGenerator{text: "I could not produce JSON, sorry."}, nil)

		_, err := uc.Breakdown(ctx, extraction.BreakdownInput{Text: "Prepare quarterly report"})
		if !errors.Is(err, extraction.ErrUnparseableResponse) {
			t.Fatalf("err = %v, want ErrUnparseableResponse", err)
		}
	})

	t.Run("zero usable entries surfaces no content error", func(t *testing.T) {
		uc := newTestUC(&mockGenerator{text: `{"subtasks":[{"text":"   "}]}`}, nil)

		_, err := uc.Breakdown(ctx, extraction.BreakdownInput{Text: "Prepare quarterly report"})
		if !errors.Is(err, extraction.ErrNoContentExtracted) {
			t.Fatalf("err = %v, want ErrNoContentExtracted", err)
		}
	})

	t.Run("list is capped by truncation", func(t *testing.T) {
		var entries []string
		for i := 0; i < 9; i++ {
			entries = append(entries, `{"text":"step"}`)
		}
		uc := newTestUC(&mockGenerator{text: `{"subtasks":[` + strings.Join(entries, ",") + `]}`}, nil)

		out, err := uc.Breakdown(ctx, extraction.BreakdownInput{Text: "Prepare quarterly report"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Subtasks) != 6 {
			t.Errorf("subtasks = %d, want 6", len(out.Subtasks))
		}
	})

	t.Run("nil generator echoes input as single subtask", func(t *testing.T) {
		uc := newTestUC(nil, nil)

		out, err := uc.Breakdown(ctx, extraction.BreakdownInput{Text: "Prepare quarterly report"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Subtasks) != 1 {
			t.Fatalf("subtasks = %d, want 1", len(out.Subtasks))
		}
		if out.Subtasks[0].Text != "Prepare quarterly report" {
			t.Errorf("text = %q", out.Subtasks[0].Text)
		}
		if out.Subtasks[0].Priority != model.PriorityMedium {
			t.Errorf("priority = %q, want medium", out.Subtasks[0].Priority)
		}
	})
}

func TestVoicemailTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		gen := &mockGenerator{text: `{"tasks":[{"text":"Call Bob","priority":"high","dueDate":"2025-07-15","assignedTo":""},{"text":"Send the price list","priority":"low","dueDate":"","assignedTo":"Maria"}]}`}
		uc := newTestUC(gen, nil)

		out, err := uc.VoicemailTasks(ctx, extraction.VoicemailInput{
			Transcription: "Hi, it's Maria. Call Bob on Tuesday and send me the price list.",
			Users:         []string{"Maria", "Bob"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 2 {
			t.Fatalf("tasks = %d, want 2", len(out.Tasks))
		}
		if out.Tasks[0].DueDate != "2025-07-15" {
			t.Errorf("dueDate = %q", out.Tasks[0].DueDate)
		}
		if !strings.Contains(gen.lastPrompt, "Maria, Bob") {
			t.Errorf("prompt does not carry team members:\n%s", gen.lastPrompt)
		}
	})

	t.Run("generation failure degrades to transcription echo", func(t *testing.T) {
		uc := newTestUC(&mockGenerator{err: errors.New("upstream 503")}, nil)

		out, err := uc.VoicemailTasks(ctx, extraction.VoicemailInput{Transcription: "Call Bob about the invoice."})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 1 {
			t.Fatalf("tasks = %d, want 1", len(out.Tasks))
		}
		if out.Tasks[0].Text != "Call Bob about the invoice." {
			t.Errorf("text = %q", out.Tasks[0].Text)
		}
		if out.Tasks[0].Priority != model.PriorityMedium {
			t.Errorf("priority = %q, want medium", out.Tasks[0].Priority)
		}
	})

	t.Run("unparseable response degrades to transcription echo", func(t *testing.T) {
		uc := newTestUC(&mockGenerator{text: "no json here"}, nil)

		out, err := uc.VoicemailTasks(ctx, extraction.VoicemailInput{Transcription: "Call Bob about the invoice."})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 1 || out.Tasks[0].Text != "Call Bob about the invoice." {
			t.Errorf("got %+v", out.Tasks)
		}
	})

	t.Run("empty task list synthesizes one task", func(t *testing.T) {
		uc := newTestUC(&mockGenerator{text: `{"tasks":[]}`}, nil)

		out, err := uc.VoicemailTasks(ctx, extraction.VoicemailInput{Transcription: "Call Bob about the invoice."})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 1 {
			t.Fatalf("tasks = %d, want 1", len(out.Tasks))
		}
	})

	t.Run("empty transcription", func(t *testing.T) {
		uc := newTestUC(&mockGenerator{}, nil)

		_, err := uc.VoicemailTasks(ctx, extraction.VoicemailInput{Transcription: ""})
		if !errors.Is(err, extraction.ErrEmptyInput) {
			t.Fatalf("err = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("long degraded task is truncated", func(t *testing.T) {
		uc := newTestUC(&mockGenerator{err: errors.New("boom")}, nil)

		out, err := uc.VoicemailTasks(ctx, extraction.VoicemailInput{Transcription: strings.Repeat("call Bob ", 50)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := len([]rune(out.Tasks[0].Text)); got > 200 {
			t.Errorf("degraded task length = %d, want <= 200", got)
		}
	})
}

func TestContentSubtasks(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		gen := &mockGenerator{text: `{"subtasks":[{"text":"Inform the customer","priority":"high"}],"summary":"One follow-up."}`}
		uc := newTestUC(gen, nil)

		out, err := uc.ContentSubtasks(ctx, extraction.ContentInput{
			Content:        "Hi team, the delivery slipped to Friday. Please update the customer.",
			ContentType:    "email",
			ParentTaskText: "Handle the delivery delay",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Subtasks) != 1 || out.Summary != "One follow-up." {
			t.Errorf("got %+v summary=%q", out.Subtasks, out.Summary)
		}
		if !strings.Contains(gen.lastPrompt, "Parent task: Handle the delivery delay") {
			t.Errorf("prompt does not carry parent task:\n%s", gen.lastPrompt)
		}
		if !strings.Contains(gen.lastPrompt, "Content type: email") {
			t.Errorf("prompt does not carry content type:\n%s", gen.lastPrompt)
		}
	})

	t.Run("content too short", func(t *testing.T) {
		gen := &mockGenerator{}
		uc := newTestUC(gen, nil)

		_, err := uc.ContentSubtasks(ctx, extraction.ContentInput{Content: "hi there"})
		if !errors.Is(err, extraction.ErrContentTooShort) {
			t.Fatalf("err = %v, want ErrContentTooShort", err)
		}
		if gen.calls != 0 {
			t.Errorf("generator called %d times for invalid input", gen.calls)
		}
	})

	t.Run("generation failure does not degrade", func(t *testing.T) {
		uc := newTestUC(&mockGenerator{err: errors.New("boom")}, nil)

		_, err := uc.ContentSubtasks(ctx, extraction.ContentInput{Content: "Hi team, the delivery slipped to Friday."})
		if !errors.Is(err, extraction.ErrGenerationFailed) {
			t.Fatalf("err = %v, want ErrGenerationFailed", err)
		}
	})
}
