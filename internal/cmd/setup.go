package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Device     string   `yaml:"device,omitempty"`
	Categories []string `yaml:"categories"`
	Watch      struct {
		IntervalMS int `yaml:"interval-ms"`
	} `yaml:"watch"`
}

func blightDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "blight")
}

var generateConfigCmd = &cobra.Command{
	Use:   "generate-config",
	Short: "Generate/update the blight.yaml file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)
		dir := blightDir()

		yamlPath := filepath.Join(dir, "blight.yaml")
		if _, err := os.Stat(yamlPath); !os.IsNotExist(err) {
			if !confirm(reader, "blight.yaml already exists. Overwrite with new settings?") {
				return nil
			}
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		if err := generateBlightYaml(reader, dir); err != nil {
			return err
		}

		fmt.Println("Config file updated.")
		return nil
	},
}

func generateBlightYaml(reader *bufio.Reader, targetDir string) error {
	conf := Config{}
	conf.Device = prompt(reader, "Default device (empty for automatic)", "")
	conf.Categories = strings.Fields(prompt(reader, "Category order", "backlight leds"))

	interval, err := strconv.Atoi(prompt(reader, "Watch poll interval (ms)", "200"))
	if err != nil || interval < 1 {
		interval = 200
	}
	conf.Watch.IntervalMS = interval

	data, err := yaml.Marshal(&conf)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(targetDir, "blight.yaml"), data, 0644)
}

func prompt(r *bufio.Reader, label, defaultValue string) string {
	fmt.Printf("%s [%s]: ", label, defaultValue)
	input, _ := r.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}
	return input
}

func confirm(r *bufio.Reader, message string) bool {
	fmt.Printf("%s (y/N): ", message)
	input, _ := r.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}
