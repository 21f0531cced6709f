package usecase

import (
	"context"
	"strings"

	"smb-task-tracker/internal/extraction"
)

// Breakdown splits one typed task description into subtasks.
func (uc *implUseCase) Breakdown(ctx context.Context, input extraction.BreakdownInput) (extraction.BreakdownOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return extraction.BreakdownOutput{}, extraction.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Breakdown: input_length=%d users=%d", len(text), len(input.Users))

	res, err := uc.runPipeline(ctx, text, extraction.ModeBreakdown, promptContext{
		KnownUsers: input.Users,
		Today:      uc.now(),
	})
	if err != nil {
		return extraction.BreakdownOutput{}, err
	}

	uc.l.Infof(ctx, "Breakdown: subtasks=%d degraded=%t", len(res.Subtasks), res.Degraded)
	return extraction.BreakdownOutput{
		Subtasks: res.Subtasks,
		Summary:  res.Summary,
	}, nil
}
