package cmd

import (
	"fmt"
	"strconv"

	"github.com/hoppxi/blight/internal/brightness"
	"github.com/hoppxi/blight/internal/device"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle [value]",
	Short: "Toggle a device between off and max, or off and a given value",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := device.NewStore(device.DefaultSysfsRoot)
		dev, err := resolveTarget(store)
		if err != nil {
			return err
		}

		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		return runToggle(store, dev, arg)
	},
}

func runToggle(store *device.Store, dev device.Device, arg string) error {
	current, err := store.Brightness(dev)
	if err != nil {
		return err
	}
	max, err := store.MaxBrightness(dev)
	if err != nil {
		return err
	}

	var target int
	if arg == "" {
		// Plain toggle: off unless already off, then full on.
		if current == 0 {
			target = max
		}
	} else {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %q", brightness.ErrInvalidValue, arg)
		}

		// Valued toggle flips between 0 and the given level.
		target = brightness.Clamp(n, max)
		if current == target {
			target = 0
		}
	}

	return setBrightness(dev, target)
}
