package extraction

import "context"

// UseCase is the content-to-task extraction pipeline, one entry point per mode.
type UseCase interface {
	// Breakdown splits a typed task description into at most 6 subtasks.
	Breakdown(ctx context.Context, input BreakdownInput) (BreakdownOutput, error)

	// VoicemailTasks extracts standalone tasks from a voicemail transcription.
	VoicemailTasks(ctx context.Context, input VoicemailInput) (VoicemailOutput, error)

	// ContentSubtasks derives subtasks from pasted content (min 10 characters).
	ContentSubtasks(ctx context.Context, input ContentInput) (ContentOutput, error)

	// ProcessAudio transcribes an audio payload and runs the tasks or
	// subtasks pipeline over the transcript.
	ProcessAudio(ctx context.Context, input AudioInput) (AudioOutput, error)
}
