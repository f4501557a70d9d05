package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// positional lists the legacy positional arguments in order.
var positional = []string{"amount", "range", "follow-speed", "spawn-speed"}

// NewCommand builds the root command. run receives the parsed configuration.
func NewCommand(run func(Config) error) *cobra.Command {
	cfg := Default()
	colour := DefaultColour

	cmd := &cobra.Command{
		Use:   "teapots [amount [range [follow-speed [spawn-speed]]]]",
		Short: "Fly through a cloud of spinning teapots",
		Long: "Spawns teapots at random positions inside a cube and lets you fly around them.\n" +
			"WASD moves, E/Q go up and down, the mouse looks around, Escape releases the cursor.",
		Args:          cobra.MaximumNArgs(len(positional)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyPositional(cmd, args); err != nil {
				return err
			}
			rgb, err := ParseColour(colour)
			if err != nil {
				return err
			}
			cfg.Colour = rgb
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Amount, "amount", DefaultAmount, "number of teapots placed at startup")
	flags.Float32Var(&cfg.Range, "range", DefaultRange, "half-extent of the cube teapots are placed in")
	flags.Float32Var(&cfg.FollowSpeed, "follow-speed", DefaultFollowSpeed, "rate at which teapots chase the camera (0 disables)")
	flags.IntVar(&cfg.SpawnSpeed, "spawn-speed", DefaultSpawnSpeed, "teapots added every frame (0 disables)")
	flags.StringVar(&colour, "colour", DefaultColour, "teapot colour as #RRGGBB")
	flags.IntVar(&cfg.MaxFPS, "max-fps", 0, "frame rate cap (0 is uncapped)")
	flags.BoolVar(&cfg.Legacy, "legacy", false, "use the per-frame follow step and the older spin rate")

	return cmd
}

// applyPositional copies legacy positional arguments onto flags that were not
// set explicitly.
func applyPositional(cmd *cobra.Command, args []string) error {
	for i, arg := range args {
		name := positional[i]
		f := cmd.Flags().Lookup(name)
		if f.Changed {
			continue
		}
		if err := f.Value.Set(arg); err != nil {
			return fmt.Errorf("invalid %s %s: %w", name, strconv.Quote(arg), err)
		}
	}
	return nil
}
