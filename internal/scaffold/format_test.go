package scaffold

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	values := map[string]string{
		"name":      "stack1",
		"port":      "1337",
		"dist_path": "/srv/pwn/stack1/dist",
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no placeholders", "plain text\n", "plain text\n"},
		{"name and port", "service {name} listens on {port}", "service stack1 listens on 1337"},
		{"repeated key", "{name}-{name}", "stack1-stack1"},
		{"dist path", "volumes: [{dist_path}:/dist]", "volumes: [/srv/pwn/stack1/dist:/dist]"},
		{"escaped braces", "${{HOME}} {{literal}}", "${HOME} {literal}"},
		{"escape next to key", "{{{name}}}", "{stack1}"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.in, values)
			if err != nil {
				t.Fatalf("Format(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatErrors(t *testing.T) {
	values := map[string]string{"name": "stack1", "port": "1337"}

	tests := []struct {
		name string
		in   string
		want error
	}{
		{"unknown key", "{flag}", ErrUnknownPlaceholder},
		{"empty key", "run {}", ErrUnknownPlaceholder},
		{"format spec", "{port:>6}", ErrUnknownPlaceholder},
		{"unclosed", "oops {name", ErrMalformedTemplate},
		{"nested open", "{na{me}", ErrMalformedTemplate},
		{"stray close", "name}", ErrMalformedTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Format(tt.in, values)
			if !errors.Is(err, tt.want) {
				t.Errorf("Format(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}
