// ABOUTME: FLAC audio file decoder
// ABOUTME: Decodes FLAC files to a Signal via mewkiz/flac
package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/VoiceScope/voicescope-go/pkg/audio"
	"github.com/mewkiz/flac"
)

// FLACDecoder decodes FLAC files frame by frame.
type FLACDecoder struct{}

// Decode reads an entire FLAC file into a Signal.
func (d *FLACDecoder) Decode(r io.ReadSeeker) (*audio.Signal, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("parse flac stream: %w", err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	if channels < 1 {
		return nil, fmt.Errorf("flac reports %d channels", channels)
	}
	scale := float64(int64(1) << (info.BitsPerSample - 1))

	sig := &audio.Signal{
		Format: audio.Format{
			SampleRate: int(info.SampleRate),
			Channels:   channels,
			BitDepth:   int(info.BitsPerSample),
		},
	}

	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse flac frame: %w", err)
		}

		blockSize := len(frame.Subframes[0].Samples)
		for i := 0; i < blockSize; i++ {
			var mix float64
			for ch := 0; ch < channels; ch++ {
				v := float64(frame.Subframes[ch].Samples[i]) / scale
				mix += v
				sig.PCM = audio.PutInt16(sig.PCM, audio.Int16FromFloat(v))
			}
			sig.Samples = append(sig.Samples, mix/float64(channels))
		}
	}

	return sig, nil
}
