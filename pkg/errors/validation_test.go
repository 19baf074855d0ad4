package errors

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"simple", "octocat", "octocat", false},
		{"trimmed", "  octocat \n", "octocat", false},
		{"display name", "Linus Torvalds", "Linus Torvalds", false},

		{"empty", "", "", true},
		{"whitespace only", "   \t ", "", true},
		{"too long", strings.Repeat("a", 300), "", true},
		{"control char", "octo\x01cat", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateUsername(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateUsername(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateUsername(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	if got, err := ValidateQuery("  octo cat "); err != nil || got != "octo cat" {
		t.Errorf("ValidateQuery() = %q, %v; want %q", got, err, "octo cat")
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", " ", "search query cannot be empty"},
		{"too long", strings.Repeat("q", 257), "search query too long"},
		{"control char", "octo\x7f", "search query contains invalid control characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateQuery(tt.input)
			if !Is(err, ErrCodeInvalidInput) {
				t.Fatalf("ValidateQuery(%q) error = %v, want INVALID_INPUT", tt.input, err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://api.github.com", false},
		{"http", "http://localhost:8080", false},
		{"empty", "", true},
		{"no scheme", "api.github.com", true},
		{"ftp", "ftp://example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
