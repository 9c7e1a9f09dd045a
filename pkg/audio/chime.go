// Package audio plays the short notification chime used after successful
// write operations.
package audio

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate = 44100
	channels   = 1
)

// Global audio context singleton
var (
	globalCtx *oto.Context
	ctxOnce   sync.Once
	ctxReady  bool
)

func initContext() {
	ctxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalCtx = ctx
		ctxReady = true
	})
}

// Chime plays a short two-tone notification. It returns immediately;
// playback failures are logged, never surfaced.
func Chime() {
	go func() {
		initContext()
		if !ctxReady || globalCtx == nil {
			return
		}

		player := globalCtx.NewPlayer(bytes.NewReader(chimeSamples()))
		player.Play()

		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}
	}()
}

// chimeSamples synthesizes two rising sine tones as 16-bit LE PCM.
func chimeSamples() []byte {
	tones := []struct {
		freq     float64
		duration time.Duration
	}{
		{880, 120 * time.Millisecond},
		{1174.66, 160 * time.Millisecond},
	}

	var buf bytes.Buffer
	for _, tone := range tones {
		n := int(float64(sampleRate) * tone.duration.Seconds())
		for i := 0; i < n; i++ {
			t := float64(i) / sampleRate
			// Linear fade-out keeps the tone from clicking at the boundary.
			envelope := 1 - float64(i)/float64(n)
			sample := math.Sin(2*math.Pi*tone.freq*t) * envelope * 0.3
			binary.Write(&buf, binary.LittleEndian, int16(sample*math.MaxInt16))
		}
	}
	return buf.Bytes()
}
