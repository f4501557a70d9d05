package config

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func runCommand(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	var got Config
	called := false
	cmd := NewCommand(func(c Config) error {
		got = c
		called = true
		return nil
	})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil && !called {
		t.Fatalf("run was not called for args %v", args)
	}
	return got, err
}

func TestCommandDefaults(t *testing.T) {
	got, err := runCommand(t)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	want := Default()
	if got != want {
		t.Errorf("defaults = %+v, want %+v", got, want)
	}
}

func TestCommandFlags(t *testing.T) {
	got, err := runCommand(t,
		"--amount", "3",
		"--range", "1.5",
		"--follow-speed", "0.25",
		"--spawn-speed", "2",
		"--colour", "#00FF00",
		"--legacy",
		"--max-fps", "144",
	)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got.Amount != 3 || got.Range != 1.5 || got.FollowSpeed != 0.25 || got.SpawnSpeed != 2 || !got.Legacy || got.MaxFPS != 144 {
		t.Errorf("unexpected config %+v", got)
	}
	if !got.Colour.ApproxEqual(mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Colour = %v, want green", got.Colour)
	}
}

func TestCommandPositional(t *testing.T) {
	got, err := runCommand(t, "10", "8", "1.5", "4")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got.Amount != 10 || got.Range != 8 || got.FollowSpeed != 1.5 || got.SpawnSpeed != 4 {
		t.Errorf("unexpected config %+v", got)
	}

	// An explicit flag wins over the positional value in the same slot.
	got, err = runCommand(t, "--amount", "5", "10", "8")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got.Amount != 5 || got.Range != 8 {
		t.Errorf("flag precedence broken: %+v", got)
	}
}

func TestCommandErrors(t *testing.T) {
	if _, err := runCommand(t, "--colour", "#FFF"); !errors.Is(err, ErrColourLength) {
		t.Errorf("bad colour error = %v, want ErrColourLength", err)
	}
	if _, err := runCommand(t, "--amount", "-2"); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("negative amount error = %v, want ErrNegativeAmount", err)
	}
	if _, err := runCommand(t, "--max-fps", "-1"); !errors.Is(err, ErrNegativeMaxFPS) {
		t.Errorf("negative max fps error = %v, want ErrNegativeMaxFPS", err)
	}
	if _, err := runCommand(t, "lots"); err == nil {
		t.Error("expected error for non-numeric positional amount")
	}
	if _, err := runCommand(t, "1", "2", "3", "4", "5"); err == nil {
		t.Error("expected error for too many positional arguments")
	}
}
