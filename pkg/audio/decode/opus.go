// ABOUTME: Ogg Opus audio file decoder
// ABOUTME: Decodes Ogg Opus files to a Signal via hraban/opus
package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/VoiceScope/voicescope-go/pkg/audio"
	opus "gopkg.in/hraban/opus.v2"
)

// Ogg Opus always decodes at 48 kHz; music streams are stereo.
const (
	opusSampleRate = 48000
	opusChannels   = 2
)

// OpusDecoder decodes Ogg Opus files (.ogg / .opus).
type OpusDecoder struct{}

// Decode reads an entire Ogg Opus file into a Signal.
func (d *OpusDecoder) Decode(r io.ReadSeeker) (*audio.Signal, error) {
	stream, err := opus.NewStream(r)
	if err != nil {
		return nil, fmt.Errorf("create opus stream: %w", err)
	}
	defer func() { _ = stream.Close() }()

	sig := &audio.Signal{
		Format: audio.Format{
			SampleRate: opusSampleRate,
			Channels:   opusChannels,
			BitDepth:   16,
		},
	}

	buf := make([]int16, 16384)
	for {
		n, err := stream.Read(buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode opus frames: %w", err)
		}
		if n == 0 {
			break
		}

		// n counts samples per channel; buf holds interleaved frames.
		for i := 0; i < n; i++ {
			var mix float64
			for ch := 0; ch < opusChannels; ch++ {
				s := buf[i*opusChannels+ch]
				mix += audio.FloatFromInt16(s)
				sig.PCM = audio.PutInt16(sig.PCM, s)
			}
			sig.Samples = append(sig.Samples, mix/opusChannels)
		}
	}

	return sig, nil
}
