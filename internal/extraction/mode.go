package extraction

// Mode selects the prompt template, output schema, length caps, and fallback
// policy of one pipeline variant.
type Mode string

const (
	// ModeBreakdown splits one typed task into subtasks.
	ModeBreakdown Mode = "breakdown"
	// ModeVoicemailTasks extracts standalone tasks from a voicemail transcription.
	ModeVoicemailTasks Mode = "voicemail-tasks"
	// ModeContentSubtasks derives subtasks from pasted content (email, note).
	ModeContentSubtasks Mode = "content-subtasks"
	// ModeAudioSubtasks derives subtasks from an audio recording's transcript.
	ModeAudioSubtasks Mode = "audio-subtasks"
)

// ItemKind is the output schema of a mode.
type ItemKind string

const (
	KindSubtasks ItemKind = "subtasks"
	KindTasks    ItemKind = "tasks"
)

// Descriptor is the per-mode policy record. All mode-specific behavior lives
// here; the pipeline itself is a single parameterized implementation.
type Descriptor struct {
	Kind       ItemKind
	MaxItems   int
	MaxItemLen int

	// DegradeOnFailure: when generation or parsing fails, fall back to the
	// canonical text as a single item instead of surfacing an error. Modes
	// whose purpose is "never lose a voicemail" degrade; modes that split an
	// existing task must not invent content.
	DegradeOnFailure bool

	// SynthesizeOnEmpty: when normalization leaves zero usable entries,
	// fabricate one item from the canonical text instead of reporting
	// no_content_extracted.
	SynthesizeOnEmpty bool
}

// Modes is the mode policy table.
var Modes = map[Mode]Descriptor{
	ModeBreakdown: {
		Kind:       KindSubtasks,
		MaxItems:   6,
		MaxItemLen: 200,
	},
	ModeContentSubtasks: {
		Kind:       KindSubtasks,
		MaxItems:   10,
		MaxItemLen: 200,
	},
	ModeVoicemailTasks: {
		Kind:              KindTasks,
		MaxItems:          8,
		MaxItemLen:        200,
		DegradeOnFailure:  true,
		SynthesizeOnEmpty: true,
	},
	ModeAudioSubtasks: {
		Kind:              KindSubtasks,
		MaxItems:          10,
		MaxItemLen:        100,
		DegradeOnFailure:  true,
		SynthesizeOnEmpty: true,
	},
}
