package dictionary

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	input := strings.NewReader(`# common words
hello
world

  padded
# trailing comment
`)
	words, err := Load(input)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := []string{"hello", "world", "padded"}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("Load = %v, want %v", words, expected)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.txt")
	words := []string{"neko", "kirara", "", "hobbit"}

	if err := SaveFile(path, words); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	expected := []string{"neko", "kirara", "hobbit"}
	if !reflect.DeepEqual(loaded, expected) {
		t.Errorf("Round trip = %v, want %v", loaded, expected)
	}
}
