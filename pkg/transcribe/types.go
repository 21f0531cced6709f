package transcribe

import (
	"errors"
	"io"
)

// MaxAudioBytes is the payload size ceiling enforced before upload.
const MaxAudioBytes = 25 << 20 // 25 MB

var (
	// ErrNotConfigured indicates no transcription API key is set.
	ErrNotConfigured = errors.New("transcription API key is not configured")

	// ErrTooLarge indicates the payload exceeds MaxAudioBytes.
	ErrTooLarge = errors.New("audio payload exceeds size limit")

	// ErrUnsupportedFormat indicates a file extension outside the allow-list.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// allowedExtensions is the transcription service's accepted format list.
// A missing extension is not itself an error.
var allowedExtensions = map[string]bool{
	"mp3":  true,
	"mp4":  true,
	"mpeg": true,
	"mpga": true,
	"m4a":  true,
	"wav":  true,
	"webm": true,
	"ogg":  true,
	"aac":  true,
	"flac": true,
}

// Config configures the transcription client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Input is one audio payload to transcribe. Size must be the full payload
// size in bytes; it is checked against MaxAudioBytes before any upload.
type Input struct {
	Reader   io.Reader
	Filename string
	Size     int64
}
