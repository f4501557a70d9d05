package config

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		in      string
		want    mgl32.Vec3
		wantErr error
	}{
		{in: "#00FF00", want: mgl32.Vec3{0, 1, 0}},
		{in: "#FF0000", want: mgl32.Vec3{1, 0, 0}},
		{in: "#ffffff", want: mgl32.Vec3{1, 1, 1}},
		{in: "#000000", want: mgl32.Vec3{0, 0, 0}},
		{in: "00FF00", wantErr: ErrColourFormat},
		{in: "", wantErr: ErrColourFormat},
		{in: "#ZZZZZZ", wantErr: ErrColourValue},
		{in: "#12345G", wantErr: ErrColourValue},
		{in: "#+F0000", wantErr: ErrColourValue},
		{in: "#FFF", wantErr: ErrColourLength},
		{in: "#00FF000", wantErr: ErrColourLength},
	}

	for _, tt := range tests {
		got, err := ParseColour(tt.in)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseColour(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColour(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if !got.ApproxEqual(tt.want) {
			t.Errorf("ParseColour(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFollowFactor(t *testing.T) {
	c := Default()
	c.FollowSpeed = 2

	if got := c.FollowFactor(0.1); !mgl32.FloatEqual(got, 0.2) {
		t.Errorf("FollowFactor(0.1) = %v, want 0.2", got)
	}
	if got := c.FollowFactor(1); got != 1 {
		t.Errorf("FollowFactor saturates at 1, got %v", got)
	}

	c.Legacy = true
	if got := c.FollowFactor(0.5); !mgl32.FloatEqual(got, 0.02) {
		t.Errorf("legacy FollowFactor = %v, want 0.02", got)
	}
	c.FollowSpeed = 250
	if got := c.FollowFactor(0.5); got != 1 {
		t.Errorf("legacy FollowFactor saturates at 1, got %v", got)
	}
}

func TestSpinRate(t *testing.T) {
	c := Default()
	if c.SpinRate() != SpinRate {
		t.Errorf("SpinRate() = %v, want %v", c.SpinRate(), SpinRate)
	}
	c.Legacy = true
	if c.SpinRate() != LegacySpinRate {
		t.Errorf("legacy SpinRate() = %v, want %v", c.SpinRate(), float32(LegacySpinRate))
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	c.Amount = -1
	if err := c.Validate(); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("Validate() = %v, want ErrNegativeAmount", err)
	}

	c = Default()
	c.SpawnSpeed = -3
	if err := c.Validate(); !errors.Is(err, ErrNegativeSpawnSpeed) {
		t.Errorf("Validate() = %v, want ErrNegativeSpawnSpeed", err)
	}

	c = Default()
	c.Range = 0
	if err := c.Validate(); err != nil {
		t.Errorf("zero range should not be rejected: %v", err)
	}
}
