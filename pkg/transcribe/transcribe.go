package transcribe

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type whisperImpl struct {
	client *openai.Client
	model  string
}

func newWhisperImpl(cfg Config) *whisperImpl {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}

	return &whisperImpl{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

// Transcribe uploads the audio payload to the Whisper endpoint.
// Validation failures are reported before any network call is made.
func (w *whisperImpl) Transcribe(ctx context.Context, input Input) (string, error) {
	if err := Validate(input); err != nil {
		return "", err
	}

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: input.Filename,
		Reader:   input.Reader,
	})
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}

	return resp.Text, nil
}

// Validate checks the payload against the size ceiling and format allow-list.
func Validate(input Input) error {
	if input.Size > MaxAudioBytes {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, input.Size)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(input.Filename)), ".")
	if ext != "" && !allowedExtensions[ext] {
		return fmt.Errorf("%w: .%s", ErrUnsupportedFormat, ext)
	}

	return nil
}
