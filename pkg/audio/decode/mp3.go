// ABOUTME: MP3 audio file decoder
// ABOUTME: Decodes MP3 files to a Signal via go-mp3
package decode

import (
	"fmt"
	"io"

	"github.com/VoiceScope/voicescope-go/pkg/audio"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// MP3Decoder decodes MP3 files. go-mp3 always emits 16-bit stereo PCM at the
// file's sample rate.
type MP3Decoder struct{}

// Decode reads an entire MP3 file into a Signal.
func (d *MP3Decoder) Decode(r io.ReadSeeker) (*audio.Signal, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("create mp3 decoder: %w", err)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decode mp3 frames: %w", err)
	}

	const channels = 2
	frames := len(pcm) / (channels * 2)
	sig := &audio.Signal{
		Format: audio.Format{
			SampleRate: dec.SampleRate(),
			Channels:   channels,
			BitDepth:   16,
		},
		Samples: make([]float64, 0, frames),
		PCM:     pcm[:frames*channels*2],
	}

	for i := 0; i < frames; i++ {
		left := audio.FloatFromInt16(audio.Int16At(pcm, i*channels))
		right := audio.FloatFromInt16(audio.Int16At(pcm, i*channels+1))
		sig.Samples = append(sig.Samples, (left+right)/2)
	}

	return sig, nil
}
