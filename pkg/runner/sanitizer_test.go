package runner

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/marvin/pkg/domain"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	// Default Limit is 4096
	limit := 4096

	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Repeat("A", tt.inputSize)
			_, err := SanitizeInput(input)
			if tt.wantErr {
				if !errors.Is(err, ErrInputTooLarge) {
					t.Errorf("SanitizeInput() expected ErrInputTooLarge for size %d, got %v", tt.inputSize, err)
				}
			} else {
				if err != nil {
					t.Errorf("SanitizeInput() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestSanitizeInput_ControlChars(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		index   int
	}{
		{"Normal Text", "ABC DEF", false, 0},
		{"Safe Controls", "ABC\nDEF\tGHI\r\n", false, 0},
		{"ANSI Code", "AB\x1b[31m", true, 2},
		{"Null Byte", "A\x00B", true, 1},
		{"Bell", "DING\x07", true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if got != tt.input {
					t.Errorf("Expected %q, got %q", tt.input, got)
				}
				return
			}
			if !errors.Is(err, domain.ErrInvalidCharacter) {
				t.Fatalf("Expected ErrInvalidCharacter, got %v", err)
			}
			var se *domain.SymbolError
			if !errors.As(err, &se) || se.Index != tt.index {
				t.Errorf("Expected error at index %d, got %v", tt.index, err)
			}
		})
	}
}

func TestSanitizeInput_EnvOverride(t *testing.T) {
	t.Setenv("MARVIN_MAX_SEED_SIZE", "10")

	// Input len 11 -> Should fail
	_, err := SanitizeInput("ABCDEFGHIJK")
	if err == nil {
		t.Error("Expected error for input > 10 when env var is set")
	}

	// Input len 5 -> Should pass
	_, err = SanitizeInput("ABCDE")
	if err != nil {
		t.Error("Unexpected error for valid input")
	}
}

func TestSanitizeInputLimit_Disabled(t *testing.T) {
	input := strings.Repeat("A", 10000)
	if _, err := SanitizeInputLimit(input, 0); err != nil {
		t.Errorf("Unexpected error with limit disabled: %v", err)
	}
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	// Invalid UTF-8 sequence
	input := "\xbd\xb2\x3d\xbc\x20\xe2\x8c\x98"
	_, err := SanitizeInput(input)
	if err != ErrInvalidUTF8 {
		t.Errorf("Expected ErrInvalidUTF8, got %v", err)
	}
}
