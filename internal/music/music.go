// Package music decodes the background track and plays it on a loop.
package music

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ebitengine/oto/v3"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Decoded streams are 16-bit little-endian stereo.
const (
	channelCount   = 2
	bytesPerSample = 2
	bytesPerFrame  = channelCount * bytesPerSample
)

var ErrEmptyTrack = errors.New("music: track has no samples")

// Track is a decoded clip that can be replayed from the start.
type Track struct {
	stream     io.ReadSeeker
	sampleRate int
	length     int64
}

// SampleRate returns the clip's native sample rate.
func (t *Track) SampleRate() int { return t.sampleRate }

// Length returns the decoded size in bytes.
func (t *Track) Length() int64 { return t.length }

// Frames returns the number of stereo sample frames.
func (t *Track) Frames() int64 { return t.length / bytesPerFrame }

// Decode reads a RIFF/WAVE or MP3 clip.
func Decode(encoded []byte) (*Track, error) {
	src := bytes.NewReader(encoded)

	var (
		track Track
		err   error
	)
	if bytes.HasPrefix(encoded, []byte("RIFF")) {
		var s *wav.Stream
		s, err = wav.DecodeWithoutResampling(src)
		if s != nil {
			track = Track{stream: s, sampleRate: s.SampleRate(), length: s.Length()}
		}
	} else {
		var s *mp3.Stream
		s, err = mp3.DecodeWithoutResampling(src)
		if s != nil {
			track = Track{stream: s, sampleRate: s.SampleRate(), length: s.Length()}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("decode track: %w", err)
	}
	if track.length < bytesPerFrame {
		return nil, ErrEmptyTrack
	}
	return &track, nil
}

// Loop wraps the track so it restarts from the beginning forever.
func (t *Track) Loop() io.ReadSeeker {
	// Whole frames only, so the loop point never splits a sample.
	return ebitenaudio.NewInfiniteLoop(t.stream, t.length-t.length%bytesPerFrame)
}

// Player owns the output device for one looping track.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
}

// Start decodes encoded and plays it on a loop.
func Start(encoded []byte) (*Player, error) {
	track, err := Decode(encoded)
	if err != nil {
		return nil, err
	}
	return Play(track)
}

// Play opens the default output device at the track's sample rate and
// starts the loop. Playback runs on the device's own goroutine.
func Play(t *Track) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   t.sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	p := ctx.NewPlayer(t.Loop())
	p.Play()
	log.Printf("Playing music: %d Hz, %.1fs loop", t.sampleRate, float64(t.Frames())/float64(t.sampleRate))

	return &Player{ctx: ctx, player: p}, nil
}

// Close stops playback. oto keeps its context for the life of the process.
func (p *Player) Close() {
	if p == nil || p.player == nil {
		return
	}
	p.player.Pause()
	if err := p.player.Close(); err != nil {
		log.Printf("Failed to close music player: %v", err)
	}
	p.player = nil
}
