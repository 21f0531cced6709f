package usecase

import (
	"context"
	"time"

	"smb-task-tracker/internal/model"
	"smb-task-tracker/pkg/llmprovider"
)

// Generator is the text generation capability the pipeline depends on.
// Satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// promptContext carries optional hints interpolated into prompt templates.
// Never required for correctness, only for quality.
type promptContext struct {
	KnownUsers     []string
	Today          time.Time
	ParentTaskText string
	ContentLabel   string
}

// pipelineResult is the normalized output of one pipeline run. Exactly one
// of Subtasks or Tasks is populated, per the mode's item kind.
type pipelineResult struct {
	Subtasks []model.Subtask
	Tasks    []model.Task
	Summary  string
	Degraded bool // true when the result was synthesized from raw text
}
