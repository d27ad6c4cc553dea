package cmd

import (
	"github.com/hoppxi/blight/internal/brightness"
	"github.com/hoppxi/blight/internal/device"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <value>",
	Short: "Set an exact or relative brightness value",
	Long: `Set the brightness of the target device.

  blight set 300        exact value
  blight set 50%        percent of max
  blight set +5         relative to current
  blight set -- -10%    relative percent (note the --)
  blight set x1.5       multiply current
  blight set /2         divide current
  blight set +/10       next multiple of a tenth of max
  blight set -- -//8    one step down an 8-level log curve`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := device.NewStore(device.DefaultSysfsRoot)
		dev, err := resolveTarget(store)
		if err != nil {
			return err
		}
		return runSet(store, dev, args[0])
	},
}

// runSet is the set pipeline: parse the expression before touching the
// device, so malformed input never reaches the service.
func runSet(store *device.Store, dev device.Device, arg string) error {
	value, err := brightness.Parse(arg)
	if err != nil {
		return err
	}

	current, err := store.Brightness(dev)
	if err != nil {
		return err
	}
	max, err := store.MaxBrightness(dev)
	if err != nil {
		return err
	}

	return setBrightness(dev, value.Resolve(current, max))
}
