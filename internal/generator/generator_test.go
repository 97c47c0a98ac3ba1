package generator

import (
	"errors"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/passmeter/internal/model"
)

func TestGenerateCoversAllRequestedClasses(t *testing.T) {
	cfg := model.DefaultGenerationConfig()
	for i := 0; i < 20; i++ {
		password, err := Generate(cfg)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if utf8.RuneCountInString(password) != 16 {
			t.Fatalf("expected length 16, got %d (%q)", len(password), password)
		}
		var hasLower, hasUpper, hasDigit, hasSpecial bool
		for _, r := range password {
			switch {
			case strings.ContainsRune(specialChars, r):
				hasSpecial = true
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsDigit(r):
				hasDigit = true
			}
		}
		if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
			t.Fatalf("missing class in %q (lower=%t upper=%t digit=%t special=%t)",
				password, hasLower, hasUpper, hasDigit, hasSpecial)
		}
	}
}

func TestGenerateRejectsShortLength(t *testing.T) {
	cfg := model.DefaultGenerationConfig()
	cfg.Length = 3
	if _, err := Generate(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestGenerateRejectsNoClasses(t *testing.T) {
	cfg := model.GenerationConfig{Length: 12}
	if _, err := Generate(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestGenerateSingleClass(t *testing.T) {
	cfg := model.GenerationConfig{Length: 10, UseDigits: true}
	password, err := Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, r := range password {
		if r < '0' || r > '9' {
			t.Fatalf("expected digits only, got %q", password)
		}
	}
}

func TestGenerateExcludesAmbiguous(t *testing.T) {
	cfg := model.DefaultGenerationConfig()
	cfg.ExcludeAmbiguous = true
	for i := 0; i < 20; i++ {
		password, err := Generate(cfg)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if strings.ContainsAny(password, "loIO01|") {
			t.Fatalf("ambiguous character in %q", password)
		}
	}
}

func TestGeneratePassphrase(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie"}
	phrase, err := GeneratePassphrase(4, "-", words)
	if err != nil {
		t.Fatalf("generate passphrase: %v", err)
	}
	parts := strings.Split(phrase, "-")
	if len(parts) != 4 {
		t.Fatalf("expected 4 words, got %d (%q)", len(parts), phrase)
	}
	for _, part := range parts {
		found := false
		for _, word := range words {
			if part == word {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("unexpected word %q in %q", part, phrase)
		}
	}
}

func TestGeneratePassphraseRejectsZeroWords(t *testing.T) {
	if _, err := GeneratePassphrase(0, "-", []string{"alpha"}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestGeneratePassphraseRejectsEmptyList(t *testing.T) {
	if _, err := GeneratePassphrase(3, "-", nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
