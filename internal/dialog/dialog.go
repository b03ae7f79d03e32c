// ABOUTME: Native open-file dialog for audio files
// ABOUTME: Uses zenity with a sqweek/dialog fallback
package dialog

import (
	"errors"

	"github.com/VoiceScope/voicescope-go/pkg/audio/decode"
	"github.com/ncruces/zenity"
	sqdialog "github.com/sqweek/dialog"
)

// OpenAudioFile shows a native open-file dialog restricted to the supported
// audio extensions. A cancelled dialog returns "" with a nil error.
func OpenAudioFile() (string, error) {
	patterns := make([]string, 0, len(decode.Extensions()))
	for _, ext := range decode.Extensions() {
		patterns = append(patterns, "*."+ext)
	}

	path, err := zenity.SelectFile(
		zenity.Title("Select Audio File"),
		zenity.FileFilters{{Name: "Audio Files", Patterns: patterns, CaseFold: true}},
	)
	if err == nil {
		return path, nil
	}
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}

	// zenity needs an external helper on some systems; fall back to the
	// toolkit-native chooser.
	path, err = sqdialog.File().
		Filter("Audio Files", decode.Extensions()...).
		Load()
	if errors.Is(err, sqdialog.ErrCancelled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
