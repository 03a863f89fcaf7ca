package llm

import "testing"

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "ECO",
			want:  "ECO",
		},
		{
			name:  "strips json fenced block",
			input: "```json\nECO\n```",
			want:  "ECO",
		},
		{
			name:  "strips plain fenced block",
			input: "```\nNEW_THREAD\n```",
			want:  "NEW_THREAD",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  POL  ",
			want:  "POL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
