// ABOUTME: File decoder dispatch for supported audio formats
// ABOUTME: Maps file extensions to codec decoders and loads full signals
package decode

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/VoiceScope/voicescope-go/pkg/audio"
)

// FileDecoder decodes a complete audio file into a Signal.
type FileDecoder interface {
	Decode(r io.ReadSeeker) (*audio.Signal, error)
}

// Extensions lists the supported file extensions, without dots.
func Extensions() []string {
	return []string{"wav", "mp3", "flac", "ogg", "opus"}
}

// ForExtension returns the decoder registered for a file extension.
func ForExtension(ext string) (FileDecoder, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "wav":
		return &WAVDecoder{}, nil
	case "mp3":
		return &MP3Decoder{}, nil
	case "flac":
		return &FLACDecoder{}, nil
	case "ogg", "opus":
		return &OpusDecoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %q", ext)
	}
}

// Open decodes the audio file at path into a Signal.
func Open(path string) (*audio.Signal, error) {
	dec, err := ForExtension(filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sig, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(sig.Samples) == 0 {
		return nil, fmt.Errorf("decode %s: file contains no audio frames", path)
	}
	return sig, nil
}
