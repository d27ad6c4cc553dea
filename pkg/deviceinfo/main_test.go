package deviceinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hoppxi/blight/internal/device"
)

func TestCollect(t *testing.T) {
	store := device.NewStore(t.TempDir())

	dir := filepath.Join(store.Root, "backlight", "intel_backlight")
	if err := os.MkdirAll(dir, 0o0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "brightness"), []byte("375\n"), 0o0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "max_brightness"), []byte("1500\n"), 0o0644); err != nil {
		t.Fatal(err)
	}

	info, err := Collect(store, device.Device{Subsystem: "backlight", Name: "intel_backlight"})
	if err != nil {
		t.Fatalf("should have not returned an error; but got %s", err)
	}

	want := DeviceInfo{
		Device:        "backlight/intel_backlight",
		Category:      "backlight",
		Brightness:    375,
		MaxBrightness: 1500,
		Percent:       25,
	}
	if *info != want {
		t.Errorf("want %+v; got %+v", want, *info)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		Description string
		Current     int
		Max         int
		Want        int
	}{
		{"quarter", 50, 200, 25},
		{"zero", 0, 200, 0},
		{"full", 200, 200, 100},
		{"bogus max", 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.Description, func(t *testing.T) {
			if got := Percent(tt.Current, tt.Max); got != tt.Want {
				t.Errorf("want %d; got %d", tt.Want, got)
			}
		})
	}
}
