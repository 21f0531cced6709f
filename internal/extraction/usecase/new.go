package usecase

import (
	"time"

	pkgLog "smb-task-tracker/pkg/log"
	"smb-task-tracker/pkg/transcribe"
)

type implUseCase struct {
	l   pkgLog.Logger
	llm Generator               // nil when no generation provider is configured
	stt transcribe.ITranscriber // nil when transcription is not configured
	now func() time.Time
}

// New creates a new extraction UseCase instance.
// llm and stt may be nil; the pipeline degrades per mode policy.
func New(l pkgLog.Logger, llm Generator, stt transcribe.ITranscriber) *implUseCase {
	return &implUseCase{
		l:   l,
		llm: llm,
		stt: stt,
		now: time.Now,
	}
}
