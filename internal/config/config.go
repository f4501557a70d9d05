package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Tuning constants shared by the update and render steps.
const (
	// MoveSpeed is world units per second per unit of movement intent.
	MoveSpeed = 3.0

	// MouseSensitivity converts raw pointer deltas into radians.
	MouseSensitivity = 0.001

	// PitchMargin keeps pitch strictly inside (-pi/2, pi/2).
	PitchMargin = 0.01

	// SpinRate is the decorative teapot rotation in rad/s.
	SpinRate = 6.5
	// LegacySpinRate is the rotation rate of the older builds.
	LegacySpinRate = 8.133333333333332

	// LegacyFollowDivisor turns FollowSpeed into a per-frame step in legacy mode.
	LegacyFollowDivisor = 100.0

	// ModelScale shrinks the teapot mesh to roughly one world unit.
	ModelScale = 0.01

	// Seed feeds the placement RNG so layouts repeat run to run.
	Seed = 0
)

// LightDirection is the fixed view-space light vector.
var LightDirection = mgl32.Vec3{-1.0, 0.4, 0.9}

// Defaults for the startup options.
const (
	DefaultAmount      = 1000
	DefaultRange       = 64.0
	DefaultFollowSpeed = 0.0
	DefaultSpawnSpeed  = 0
	DefaultColour      = "#FF0000"
)

var (
	ErrColourFormat = errors.New("colour must start with '#'")
	ErrColourLength = errors.New("colour must be 7 characters long (#RRGGBB)")
	ErrColourValue  = errors.New("colour contains non-hex digits")

	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrNegativeSpawnSpeed = errors.New("spawn speed must not be negative")
	ErrNegativeMaxFPS     = errors.New("max fps must not be negative")
)

// Config holds the startup options. It is not modified once the loop runs.
type Config struct {
	Amount      int
	Range       float32
	FollowSpeed float32
	SpawnSpeed  int
	Colour      mgl32.Vec3
	Legacy      bool

	// MaxFPS caps the frame rate; 0 leaves it uncapped.
	MaxFPS int
}

// Default returns the configuration used when no option is given.
func Default() Config {
	return Config{
		Amount:      DefaultAmount,
		Range:       DefaultRange,
		FollowSpeed: DefaultFollowSpeed,
		SpawnSpeed:  DefaultSpawnSpeed,
		Colour:      mgl32.Vec3{1, 0, 0},
	}
}

// Validate rejects negative counts.
// Range is not checked; zero collapses every sample to the origin.
func (c Config) Validate() error {
	if c.Amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, c.Amount)
	}
	if c.SpawnSpeed < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSpawnSpeed, c.SpawnSpeed)
	}
	if c.MaxFPS < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeMaxFPS, c.MaxFPS)
	}
	return nil
}

// SpinRate returns the decorative rotation rate for the selected behaviour.
func (c Config) SpinRate() float32 {
	if c.Legacy {
		return LegacySpinRate
	}
	return SpinRate
}

// FollowFactor returns the fraction of the instance-to-camera distance
// covered in a frame of dt seconds. The result never exceeds 1.
func (c Config) FollowFactor(dt float32) float32 {
	k := c.FollowSpeed * dt
	if c.Legacy {
		k = c.FollowSpeed / LegacyFollowDivisor
	}
	if k > 1 {
		k = 1
	}
	return k
}

// ParseColour converts a "#RRGGBB" string into an RGB vector in [0, 1].
func ParseColour(s string) (mgl32.Vec3, error) {
	if !strings.HasPrefix(s, "#") {
		return mgl32.Vec3{}, fmt.Errorf("%w: %q", ErrColourFormat, s)
	}
	if len(s) != 7 {
		return mgl32.Vec3{}, fmt.Errorf("%w: %q", ErrColourLength, s)
	}

	var rgb mgl32.Vec3
	for i := range 3 {
		v, err := strconv.ParseUint(s[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("%w: %q", ErrColourValue, s)
		}
		rgb[i] = float32(v) / 255.0
	}
	return rgb, nil
}
