package device

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const DefaultSysfsRoot = "/sys/class"

var (
	ErrNotFound = errors.New("no such device")
	ErrNoDevice = errors.New("no brightness device available")
)

// Device names a single backlight or LED exposed by the kernel,
// e.g. backlight/intel_backlight or leds/dell::kbd_backlight.
type Device struct {
	Subsystem string
	Name      string
}

func (d Device) ID() string {
	return d.Subsystem + "/" + d.Name
}

// Store reads device attributes from a sysfs class tree. Root is normally
// /sys/class; tests point it at a temp directory.
type Store struct {
	Root string
}

func NewStore(root string) *Store {
	return &Store{Root: root}
}

// Brightness returns the device's current brightness.
func (s *Store) Brightness(d Device) (int, error) {
	return s.readInt(d, "brightness")
}

// MaxBrightness returns the device's maximum brightness.
func (s *Store) MaxBrightness(d Device) (int, error) {
	return s.readInt(d, "max_brightness")
}

// Type returns the backlight "type" attribute (firmware, platform or raw),
// or "" for devices that do not expose one.
func (s *Store) Type(d Device) string {
	v, err := s.readAttr(d, "type")
	if err != nil {
		return ""
	}
	return v
}

// List enumerates the devices of one subsystem, sorted by name. A missing
// subsystem directory is an empty list, not an error: machines without
// LEDs simply have no /sys/class/leds.
func (s *Store) List(subsystem string) ([]Device, error) {
	entries, err := os.ReadDir(filepath.Join(s.Root, subsystem))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s devices: %w", subsystem, err)
	}

	var devices []Device
	for _, e := range entries {
		devices = append(devices, Device{Subsystem: subsystem, Name: e.Name()})
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].Name < devices[j].Name })

	return devices, nil
}

// Lookup resolves an explicit identifier. A bare name implies the
// backlight subsystem; category/name addresses any subsystem.
func (s *Store) Lookup(id string) (Device, error) {
	subsystem, name, ok := strings.Cut(id, "/")
	if !ok {
		subsystem, name = "backlight", id
	}
	if subsystem == "" || name == "" || strings.Contains(name, "/") {
		return Device{}, fmt.Errorf("%w: invalid device name %q", ErrNotFound, id)
	}

	d := Device{Subsystem: subsystem, Name: name}
	if _, err := os.Stat(filepath.Join(s.Root, subsystem, name)); err != nil {
		return Device{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return d, nil
}

func (s *Store) readInt(d Device, attr string) (int, error) {
	v, err := s.readAttr(d, attr)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("expected number from %s/%s, but got %q", d.ID(), attr, v)
	}
	return n, nil
}

func (s *Store) readAttr(d Device, attr string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.Root, d.Subsystem, d.Name, attr))
	if err != nil {
		return "", fmt.Errorf("failed to read %s of %s: %w", attr, d.ID(), err)
	}
	return strings.TrimSpace(string(data)), nil
}
