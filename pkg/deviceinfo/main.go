package deviceinfo

import (
	"github.com/hoppxi/blight/internal/device"
)

type DeviceInfo struct {
	Device        string `json:"device"`
	Category      string `json:"category"`
	Brightness    int    `json:"brightness"`
	MaxBrightness int    `json:"max_brightness"`
	Percent       int    `json:"percent"`
}

func Collect(store *device.Store, d device.Device) (*DeviceInfo, error) {
	current, err := store.Brightness(d)
	if err != nil {
		return nil, err
	}

	max, err := store.MaxBrightness(d)
	if err != nil {
		return nil, err
	}

	return &DeviceInfo{
		Device:        d.ID(),
		Category:      d.Subsystem,
		Brightness:    current,
		MaxBrightness: max,
		Percent:       Percent(current, max),
	}, nil
}

// Percent maps a brightness reading onto the 0-100 scale.
func Percent(current, max int) int {
	if max <= 0 {
		return 0
	}

	percent := int(float64(current) / float64(max) * 100.0)
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	return percent
}
