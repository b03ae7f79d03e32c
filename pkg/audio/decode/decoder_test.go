// ABOUTME: Tests for decoder dispatch
// ABOUTME: Tests extension mapping and open failure modes
package decode

import (
	"os"
	"path/filepath"
	"testing"
)

func TestForExtension(t *testing.T) {
	tests := []struct {
		ext     string
		wantErr bool
	}{
		{".wav", false},
		{"wav", false},
		{".MP3", false},
		{".flac", false},
		{".ogg", false},
		{".opus", false},
		{".aac", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := ForExtension(tt.ext)
		if (err != nil) != tt.wantErr {
			t.Errorf("ForExtension(%q): unexpected error state: %v", tt.ext, err)
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.wav"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sound.xyz")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	if err := os.WriteFile(path, []byte("definitely not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error for corrupt file")
	}
}
