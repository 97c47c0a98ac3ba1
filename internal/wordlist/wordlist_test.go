package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultWordsIsCopy(t *testing.T) {
	words := DefaultWords()
	if len(words) == 0 {
		t.Fatal("expected built-in words")
	}
	words[0] = "mutated"
	if DefaultWords()[0] == "mutated" {
		t.Error("expected DefaultWords to return an independent copy")
	}
}

func TestDefaultWordsAllSuitable(t *testing.T) {
	for _, word := range DefaultWords() {
		if !SuitableForPassphrase(word) {
			t.Errorf("built-in word %q fails suitability check", word)
		}
	}
}

func TestSuitableForPassphrase(t *testing.T) {
	cases := []struct {
		word string
		want bool
	}{
		{"horse", true},
		{"zephyr", true},
		{"", false},
		{"Horse", false},
		{"word1", false},
		{"two words", false},
		{"hy-phen", false},
		{"café", false},
	}
	for _, c := range cases {
		if got := SuitableForPassphrase(c.word); got != c.want {
			t.Errorf("SuitableForPassphrase(%q) = %v, want %v", c.word, got, c.want)
		}
	}
}

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "alpha\n\n  beta  \nGamma\ndelta7\nepsilon\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}

	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	want := []string{"alpha", "beta", "epsilon"}
	if len(words) != len(want) {
		t.Fatalf("expected %d words, got %v", len(want), words)
	}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("word %d: expected %q, got %q", i, w, words[i])
		}
	}
}

func TestLoadWordsRejectsEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("Upper\n123\n\n"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatal("expected error for word list with no usable words")
	}
}

func TestLoadWordsMissingFile(t *testing.T) {
	if _, err := LoadWords(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
