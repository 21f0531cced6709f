package extraction

import (
	"io"

	"smb-task-tracker/internal/model"
)

// BreakdownInput is the input for breaking one task into subtasks.
type BreakdownInput struct {
	Text  string   // The task description typed by the user
	Users []string // Known team member names (hint only)
}

// BreakdownOutput is the result of task breakdown.
type BreakdownOutput struct {
	Subtasks []model.Subtask
	Summary  string
}

// VoicemailInput is the input for extracting tasks from an existing transcription.
type VoicemailInput struct {
	Transcription string
	Users         []string
}

// VoicemailOutput is the result of voicemail task extraction.
// Tasks always has at least one entry for a non-empty transcription.
type VoicemailOutput struct {
	Tasks []model.Task
}

// ContentInput is the input for deriving subtasks from pasted content.
type ContentInput struct {
	Content        string
	ContentType    string // "email", "voicemail", or free-form label
	ParentTaskText string // The task this content belongs to (optional)
}

// ContentOutput is the result of content subtask extraction.
type ContentOutput struct {
	Subtasks []model.Subtask
	Summary  string
}

// AudioInput is the input for the audio pipeline. The payload is streamed to
// the transcription service and never retained past that call.
type AudioInput struct {
	Reader         io.Reader
	Filename       string
	Size           int64
	Users          []string
	Subtasks       bool   // true: audio-subtasks mode; false: voicemail-tasks mode
	ParentTaskText string // only meaningful in subtasks mode
}

// AudioOutput is the result of the audio pipeline. Exactly one of Tasks or
// Subtasks is populated depending on the requested submode.
type AudioOutput struct {
	Text     string // raw transcript
	Tasks    []model.Task
	Subtasks []model.Subtask
	Summary  string
}
