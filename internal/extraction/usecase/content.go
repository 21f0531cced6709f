package usecase

import (
	"context"
	"strings"

	"smb-task-tracker/internal/extraction"
)

// Content below this length is rejected as caller error.
const minContentLength = 10

// ContentSubtasks derives subtasks from pasted content (email, note, etc).
func (uc *implUseCase) ContentSubtasks(ctx context.Context, input extraction.ContentInput) (extraction.ContentOutput, error) {
	content := strings.TrimSpace(input.Content)
	if len(content) < minContentLength {
		return extraction.ContentOutput{}, extraction.ErrContentTooShort
	}

	uc.l.Infof(ctx, "ContentSubtasks: input_length=%d content_type=%q", len(content), input.ContentType)

	res, err := uc.runPipeline(ctx, content, extraction.ModeContentSubtasks, promptContext{
		Today:          uc.now(),
		ParentTaskText: input.ParentTaskText,
		ContentLabel:   input.ContentType,
	})
	if err != nil {
		return extraction.ContentOutput{}, err
	}

	uc.l.Infof(ctx, "ContentSubtasks: subtasks=%d degraded=%t", len(res.Subtasks), res.Degraded)
	return extraction.ContentOutput{
		Subtasks: res.Subtasks,
		Summary:  res.Summary,
	}, nil
}
