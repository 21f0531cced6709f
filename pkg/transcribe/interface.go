package transcribe

import "context"

// ITranscriber converts an audio payload into text.
type ITranscriber interface {
	// Transcribe validates the payload (size, extension) and uploads it to
	// the speech-to-text service. The returned text is used verbatim; even
	// an empty transcript is passed through.
	Transcribe(ctx context.Context, input Input) (string, error)
}

// New creates a new Whisper-backed transcriber.
func New(cfg Config) (ITranscriber, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	return newWhisperImpl(cfg), nil
}
