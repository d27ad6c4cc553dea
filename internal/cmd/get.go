package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hoppxi/blight/internal/device"
	"github.com/hoppxi/blight/internal/manager"
	"github.com/hoppxi/blight/pkg/deviceinfo"
	"github.com/spf13/cobra"
)

var getKeys = []string{"brightness", "max-brightness", "percentage", "default-device", "help"}

var getCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Inspect brightness devices",
	Long: `Read a property of the target device. Keys:

  brightness       current brightness (the default)
  max-brightness   maximum brightness
  percentage       current brightness as a percent of max
  default-device   the device picked when none is named
  help             list the available keys`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := "brightness"
		if len(args) == 1 {
			key = args[0]
		}

		out, err := runGet(device.NewStore(device.DefaultSysfsRoot), key)
		if err != nil {
			return err
		}

		fmt.Println(out)
		return nil
	},
}

func runGet(store *device.Store, key string) (string, error) {
	switch key {
	case "help":
		return strings.Join(getKeys, "\n"), nil

	case "default-device":
		// Reports the selection policy itself; an explicit -d is ignored
		// and no brightness is read.
		conf := manager.Config.Load()
		d, err := store.Default(conf.GetStringSlice("categories"))
		if err != nil {
			return "", err
		}
		return d.ID(), nil
	}

	dev, err := resolveTarget(store)
	if err != nil {
		return "", err
	}

	switch key {
	case "brightness":
		n, err := store.Brightness(dev)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil

	case "max-brightness":
		n, err := store.MaxBrightness(dev)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil

	case "percentage":
		info, err := deviceinfo.Collect(store, dev)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(info.Percent), nil
	}

	return "", fmt.Errorf("unknown query: %q", key)
}
