package usecase

import (
	"context"
	"strings"

	"smb-task-tracker/internal/extraction"
)

// VoicemailTasks extracts standalone tasks from an existing transcription.
// For a non-empty transcription the result always has at least one task:
// generation and parsing failures degrade to the transcription itself.
func (uc *implUseCase) VoicemailTasks(ctx context.Context, input extraction.VoicemailInput) (extraction.VoicemailOutput, error) {
	text := strings.TrimSpace(input.Transcription)
	if text == "" {
		return extraction.VoicemailOutput{}, extraction.ErrEmptyInput
	}

	uc.l.Infof(ctx, "VoicemailTasks: input_length=%d users=%d", len(text), len(input.Users))

	res, err := uc.runPipeline(ctx, text, extraction.ModeVoicemailTasks, promptContext{
		KnownUsers: input.Users,
		Today:      uc.now(),
	})
	if err != nil {
		return extraction.VoicemailOutput{}, err
	}

	uc.l.Infof(ctx, "VoicemailTasks: tasks=%d degraded=%t", len(res.Tasks), res.Degraded)
	return extraction.VoicemailOutput{Tasks: res.Tasks}, nil
}
