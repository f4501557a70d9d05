package music

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"teapots/assets"
)

// wavClip builds a 16-bit mono PCM file holding the given samples.
func wavClip(rate int, samples []int16) []byte {
	var data bytes.Buffer
	_ = binary.Write(&data, binary.LittleEndian, samples)

	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(36+data.Len()))
	b.WriteString("WAVEfmt ")
	for _, v := range []any{
		uint32(16), uint16(1), uint16(1), uint32(rate), uint32(rate * 2), uint16(2), uint16(16),
	} {
		_ = binary.Write(&b, binary.LittleEndian, v)
	}
	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, uint32(data.Len()))
	b.Write(data.Bytes())
	return b.Bytes()
}

func TestDecodeBundledTrack(t *testing.T) {
	track, err := Decode(assets.Music)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if track.SampleRate() != 16000 {
		t.Errorf("sample rate = %d, want 16000", track.SampleRate())
	}
	// Four seconds of audio.
	if got := track.Frames(); got != 4*16000 {
		t.Errorf("frames = %d, want %d", got, 4*16000)
	}
}

func TestDecodeMonoBecomesStereo(t *testing.T) {
	track, err := Decode(wavClip(8000, []int16{100, -100, 200}))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if track.Length() != 3*bytesPerFrame {
		t.Errorf("length = %d, want %d", track.Length(), 3*bytesPerFrame)
	}
}

func TestDecodeEmpty(t *testing.T) {
	if _, err := Decode(wavClip(8000, nil)); err == nil {
		t.Error("expected error for a clip with no samples")
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("not audio at all")); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestStartRejectsUndecodableTrack(t *testing.T) {
	p, err := Start([]byte("not audio at all"))
	if err == nil {
		p.Close()
		t.Fatal("expected decode error before the device is opened")
	}
	if p != nil {
		t.Errorf("Start returned a player alongside error %v", err)
	}
}

func TestLoopWrapsAround(t *testing.T) {
	track, err := Decode(wavClip(8000, []int16{1, 2}))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	// Reading well past the end never hits EOF.
	buf := make([]byte, 16*track.Length())
	if _, err := io.ReadFull(track.Loop(), buf); err != nil {
		t.Fatalf("read loop: %v", err)
	}
}

func TestCloseNil(t *testing.T) {
	var p *Player
	p.Close()
}
