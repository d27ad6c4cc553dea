package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hoppxi/blight/internal/device"
	"github.com/hoppxi/blight/internal/manager"
	"github.com/hoppxi/blight/pkg/deviceinfo"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available backlight and LED devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return runList(device.NewStore(device.DefaultSysfsRoot), asJSON)
	},
}

func runList(store *device.Store, asJSON bool) error {
	conf := manager.Config.Load()

	var infos []*deviceinfo.DeviceInfo
	for _, category := range conf.GetStringSlice("categories") {
		devices, err := store.List(category)
		if err != nil {
			return err
		}

		for _, d := range devices {
			info, err := deviceinfo.Collect(store, d)
			if err != nil {
				// A device can vanish between enumeration and read.
				fmt.Fprintf(os.Stderr, "skipping %s: %v\n", d.ID(), err)
				continue
			}
			infos = append(infos, info)
		}
	}

	if asJSON {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, info := range infos {
		fmt.Printf("%s\t%d/%d (%d%%)\n",
			info.Device, info.Brightness, info.MaxBrightness, info.Percent)
	}
	return nil
}

func init() {
	listCmd.Flags().Bool("json", false, "Output device info in JSON format")
}
