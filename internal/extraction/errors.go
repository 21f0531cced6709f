package extraction

import "errors"

// Domain-specific errors for the extraction package.
var (
	// Caller-fault input errors (HTTP 400).
	ErrEmptyInput       = errors.New("input text is empty")
	ErrContentTooShort  = errors.New("content must be at least 10 characters")
	ErrNoAudio          = errors.New("no audio file provided")
	ErrAudioTooLarge    = errors.New("audio file exceeds the 25 MB limit")
	ErrUnsupportedAudio = errors.New("unsupported audio format")

	// Capability errors.
	ErrTranscriberNotConfigured = errors.New("transcription service is not configured")
	ErrTranscriptionFailed      = errors.New("transcription service unavailable")
	ErrGenerationFailed         = errors.New("generation service unavailable")

	// Extraction-quality errors.
	ErrUnparseableResponse = errors.New("could not parse model response")
	ErrNoContentExtracted  = errors.New("no content could be extracted")
)
