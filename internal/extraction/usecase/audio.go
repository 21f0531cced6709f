package usecase

import (
	"context"
	"errors"
	"fmt"

	"smb-task-tracker/internal/extraction"
	"smb-task-tracker/pkg/transcribe"
)

// ProcessAudio transcribes the payload and runs the tasks or subtasks
// pipeline over the transcript. The transcript is used verbatim as canonical
// text; even an empty transcript is passed forward and caught downstream.
func (uc *implUseCase) ProcessAudio(ctx context.Context, input extraction.AudioInput) (extraction.AudioOutput, error) {
	if input.Reader == nil {
		return extraction.AudioOutput{}, extraction.ErrNoAudio
	}
	if uc.stt == nil {
		return extraction.AudioOutput{}, extraction.ErrTranscriberNotConfigured
	}

	uc.l.Infof(ctx, "ProcessAudio: file=%q size=%d subtasks=%t", input.Filename, input.Size, input.Subtasks)

	transcript, err := uc.stt.Transcribe(ctx, transcribe.Input{
		Reader:   input.Reader,
		Filename: input.Filename,
		Size:     input.Size,
	})
	if err != nil {
		// Transcription failure stops the pipeline; no downstream stage runs.
		return extraction.AudioOutput{}, translateTranscribeError(err)
	}

	if input.Subtasks {
		res, err := uc.runPipeline(ctx, transcript, extraction.ModeAudioSubtasks, promptContext{
			KnownUsers:     input.Users,
			Today:          uc.now(),
			ParentTaskText: input.ParentTaskText,
		})
		if err != nil {
			return extraction.AudioOutput{}, err
		}
		uc.l.Infof(ctx, "ProcessAudio: subtasks=%d degraded=%t", len(res.Subtasks), res.Degraded)
		return extraction.AudioOutput{
			Text:     transcript,
			Subtasks: res.Subtasks,
			Summary:  res.Summary,
		}, nil
	}

	res, err := uc.runPipeline(ctx, transcript, extraction.ModeVoicemailTasks, promptContext{
		KnownUsers: input.Users,
		Today:      uc.now(),
	})
	if err != nil {
		return extraction.AudioOutput{}, err
	}
	uc.l.Infof(ctx, "ProcessAudio: tasks=%d degraded=%t", len(res.Tasks), res.Degraded)
	return extraction.AudioOutput{
		Text:  transcript,
		Tasks: res.Tasks,
	}, nil
}

// translateTranscribeError maps adapter errors onto extraction domain errors
// so the delivery layer can distinguish caller faults from service failures.
func translateTranscribeError(err error) error {
	switch {
	case errors.Is(err, transcribe.ErrTooLarge):
		return extraction.ErrAudioTooLarge
	case errors.Is(err, transcribe.ErrUnsupportedFormat):
		return extraction.ErrUnsupportedAudio
	case errors.Is(err, transcribe.ErrNotConfigured):
		return extraction.ErrTranscriberNotConfigured
	default:
		return fmt.Errorf("%w: %v", extraction.ErrTranscriptionFailed, err)
	}
}
