package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/hoppxi/blight/internal/brightness"
	"github.com/hoppxi/blight/internal/device"
	"github.com/hoppxi/blight/internal/logind"
	"github.com/hoppxi/blight/internal/manager"
	"github.com/spf13/cobra"
)

var Version = "0.1.0"

var deviceFlag string

var rootCmd = &cobra.Command{
	Use:     "blight",
	Version: Version,
	Short:   "Control backlight and LED brightness through logind",
	Long: `blight reads and changes the brightness of /sys/class/backlight and
/sys/class/leds devices. Writes go through the logind session service, so
no root privileges or udev rules are needed from the active session.

Values beginning with '-' must be separated from the flags, e.g.:

  blight set -- -10%

Exit codes: 0 success, 1 service or other error, 2 invalid value,
3 device not found, 4 no device available.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, brightness.ErrInvalidValue):
		return 2
	case errors.Is(err, device.ErrNotFound):
		return 3
	case errors.Is(err, device.ErrNoDevice):
		return 4
	}
	return 1
}

// setBrightness performs the one write this tool does. Kept as a variable
// so command tests can record calls instead of talking to logind.
var setBrightness = func(d device.Device, value int) error {
	session, err := logind.Connect()
	if err != nil {
		return err
	}
	defer session.Close()

	return session.SetBrightness(d.Subsystem, d.Name, uint32(value))
}

// resolveTarget picks the device a command operates on: the -d flag wins,
// then the configured device, then the default-selection policy.
func resolveTarget(store *device.Store) (device.Device, error) {
	conf := manager.Config.Load()

	id := deviceFlag
	if id == "" {
		id = conf.GetString("device")
	}
	if id != "" {
		return store.Lookup(id)
	}

	return store.Default(conf.GetStringSlice("categories"))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&deviceFlag, "device", "d", "",
		"Which device to target (name or category/name)")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(generateConfigCmd)
}
