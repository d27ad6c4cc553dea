package device

import "fmt"

// DefaultCategories is the selection order when no config overrides it.
var DefaultCategories = []string{"backlight", "leds"}

// Default picks the device targeted when the user names none. Categories
// are tried in order; within backlight, firmware-controlled devices win
// over platform ones, which win over raw devices whose parent connector
// is enabled. Ties fall to the lexicographically least name, so the
// answer is stable for an unchanged device list.
func (s *Store) Default(categories []string) (Device, error) {
	if len(categories) == 0 {
		categories = DefaultCategories
	}

	for _, category := range categories {
		devices, err := s.List(category)
		if err != nil {
			return Device{}, err
		}
		if len(devices) == 0 {
			continue
		}

		if category == "backlight" {
			if d, ok := s.preferredBacklight(devices); ok {
				return d, nil
			}
			continue
		}

		return devices[0], nil
	}

	return Device{}, fmt.Errorf("%w in %v", ErrNoDevice, categories)
}

func (s *Store) preferredBacklight(devices []Device) (Device, bool) {
	for _, d := range devices {
		if s.Type(d) == "firmware" {
			return d, true
		}
	}
	for _, d := range devices {
		if s.Type(d) == "platform" {
			return d, true
		}
	}
	for _, d := range devices {
		if s.Type(d) == "raw" && s.connectorEnabled(d) {
			return d, true
		}
	}
	return Device{}, false
}

// connectorEnabled reports whether a raw backlight hangs off an enabled
// drm connector. The connector is the device's sysfs parent.
func (s *Store) connectorEnabled(d Device) bool {
	v, err := s.readAttr(d, "device/enabled")
	return err == nil && v == "enabled"
}
