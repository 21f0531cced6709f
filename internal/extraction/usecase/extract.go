package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"smb-task-tracker/internal/extraction"
	"smb-task-tracker/internal/model"
	"smb-task-tracker/pkg/llmprovider"
)

// Low temperature for deterministic JSON output.
const (
	genTemperature = 0.2
	genMaxTokens   = 2048
)

// runPipeline is the single parameterized extraction pipeline. Every mode
// runs the same stages (prompt, generate, parse, normalize) and diverges
// only through its Descriptor policies. Each stage is one-shot; failures are
// either absorbed into a synthesized result or surfaced as typed errors.
func (uc *implUseCase) runPipeline(ctx context.Context, text string, mode extraction.Mode, pc promptContext) (pipelineResult, error) {
	desc := extraction.Modes[mode]

	// No generator configured: degraded but usable, for every mode.
	if uc.llm == nil {
		uc.l.Warnf(ctx, "runPipeline: no generation provider configured, echoing input (mode=%s)", mode)
		return uc.synthesize(text, desc)
	}

	prompt := buildPrompt(text, mode, pc)

	resp, err := uc.llm.GenerateText(ctx, &llmprovider.Request{
		Prompt:      prompt,
		Temperature: genTemperature,
		MaxTokens:   genMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "runPipeline: generation failed (mode=%s): %v", mode, err)
		if desc.DegradeOnFailure {
			return uc.synthesize(text, desc)
		}
		return pipelineResult{}, fmt.Errorf("%w: %v", extraction.ErrGenerationFailed, err)
	}

	payload, err := decodePayload(resp.Text)
	if err != nil {
		uc.l.Warnf(ctx, "runPipeline: unparseable response (mode=%s): %v", mode, err)
		if desc.DegradeOnFailure {
			return uc.synthesize(text, desc)
		}
		return pipelineResult{}, fmt.Errorf("%w: %v", extraction.ErrUnparseableResponse, err)
	}

	res := normalizePayload(payload, desc)
	if len(res.Subtasks) == 0 && len(res.Tasks) == 0 {
		uc.l.Infof(ctx, "runPipeline: zero usable entries after normalization (mode=%s)", mode)
		if desc.SynthesizeOnEmpty {
			return uc.synthesize(text, desc)
		}
		return pipelineResult{}, extraction.ErrNoContentExtracted
	}

	return res, nil
}

// decodePayload locates and strictly decodes the JSON object in raw model
// output. No partial recovery: a located-but-invalid object is an error.
func decodePayload(raw string) (map[string]any, error) {
	obj := extractJSONObject(raw)
	if obj == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(obj), &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}

	return payload, nil
}

// synthesize builds a single-item result from the canonical text. Used when
// the mode's policy prefers a degraded result over a failure.
func (uc *implUseCase) synthesize(text string, desc extraction.Descriptor) (pipelineResult, error) {
	item := truncateText(strings.TrimSpace(text), desc.MaxItemLen)
	if item == "" {
		return pipelineResult{}, extraction.ErrNoContentExtracted
	}

	if desc.Kind == extraction.KindTasks {
		return pipelineResult{
			Tasks:    []model.Task{{Text: item, Priority: model.PriorityMedium}},
			Degraded: true,
		}, nil
	}
	return pipelineResult{
		Subtasks: []model.Subtask{{Text: item, Priority: model.PriorityMedium}},
		Degraded: true,
	}, nil
}
