package usecase

import "testing"

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object",
			in:   `{"subtasks":[]}`,
			want: `{"subtasks":[]}`,
		},
		{
			name: "json code fence",
			in:   "Here you go:\n```json\n{\"subtasks\":[]}\n```",
			want: `{"subtasks":[]}`,
		},
		{
			name: "plain code fence",
			in:   "```\n{\"tasks\":[]}\n```",
			want: `{"tasks":[]}`,
		},
		{
			name: "object wrapped in prose",
			in:   "Sure! The result is {\"tasks\":[{\"text\":\"call Bob\"}]} as requested.",
			want: `{"tasks":[{"text":"call Bob"}]}`,
		},
		{
			name: "no object at all",
			in:   "I could not find any tasks in the input.",
			want: "",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "closing brace before opening",
			in:   "} nothing here {",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSONObject(tt.in)
			if got != tt.want {
				t.Errorf("extractJSONObject(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodePayload(t *testing.T) {
	t.Run("valid fenced object", func(t *testing.T) {
		payload, err := decodePayload("```json\n{\"summary\":\"ok\"}\n```")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload["summary"] != "ok" {
			t.Errorf("summary = %v, want ok", payload["summary"])
		}
	})

	t.Run("located but invalid object", func(t *testing.T) {
		if _, err := decodePayload(`{"summary": }`); err == nil {
			t.Fatal("expected error for invalid JSON, got nil")
		}
	})

	t.Run("no object", func(t *testing.T) {
		if _, err := decodePayload("no tasks found"); err == nil {
			t.Fatal("expected error for missing object, got nil")
		}
	})
}
