// ABOUTME: WAV audio file decoder
// ABOUTME: Decodes PCM WAV files to a Signal via go-audio
package decode

import (
	"fmt"
	"io"

	"github.com/VoiceScope/voicescope-go/pkg/audio"
	"github.com/go-audio/wav"
)

// WAVDecoder decodes PCM WAV files.
type WAVDecoder struct{}

// Decode reads an entire WAV file into a Signal.
func (d *WAVDecoder) Decode(r io.ReadSeeker) (*audio.Signal, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("read wav frames: %w", err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("wav reports %d channels", channels)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth == 0 {
		bitDepth = buf.SourceBitDepth
	}
	scale := float64(int64(1) << (bitDepth - 1))

	frames := len(buf.Data) / channels
	sig := &audio.Signal{
		Format: audio.Format{
			SampleRate: buf.Format.SampleRate,
			Channels:   channels,
			BitDepth:   bitDepth,
		},
		Samples: make([]float64, 0, frames),
		PCM:     make([]byte, 0, frames*channels*2),
	}

	for i := 0; i < frames; i++ {
		var mix float64
		for ch := 0; ch < channels; ch++ {
			v := float64(buf.Data[i*channels+ch]) / scale
			mix += v
			sig.PCM = audio.PutInt16(sig.PCM, audio.Int16FromFloat(v))
		}
		sig.Samples = append(sig.Samples, mix/float64(channels))
	}

	return sig, nil
}
