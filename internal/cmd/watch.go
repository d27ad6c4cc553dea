package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hoppxi/blight/internal/device"
	"github.com/hoppxi/blight/internal/manager"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the target device's brightness whenever it changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := device.NewStore(device.DefaultSysfsRoot)
		dev, err := resolveTarget(store)
		if err != nil {
			return err
		}

		conf := manager.Config.Load()
		interval, _ := cmd.Flags().GetInt("interval")
		if interval <= 0 {
			interval = conf.GetInt("watch.interval-ms")
		}

		manager.Config.Watch(func(e fsnotify.Event) {
			log.Println("config changed:", e.Name)
		})

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		return watchDevice(store, dev, time.Duration(interval)*time.Millisecond, stop)
	},
}

// watchDevice polls the brightness attribute. sysfs does not deliver
// inotify events for attribute writes, so polling is the only option.
func watchDevice(store *device.Store, dev device.Device, interval time.Duration, stop <-chan os.Signal) error {
	prev, err := store.Brightness(dev)
	if err != nil {
		return err
	}
	fmt.Println(prev)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			current, err := store.Brightness(dev)
			if err != nil {
				continue
			}
			if current != prev {
				fmt.Println(current)
				prev = current
			}
		}
	}
}

func init() {
	watchCmd.Flags().IntP("interval", "i", 0, "Poll interval in milliseconds (default from config)")
}
