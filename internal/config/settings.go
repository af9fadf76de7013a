// Package config provides YAML-based platform settings: display theme,
// database location and SSH server parameters. Gameplay itself is not
// configurable: grid size, snake length and tick interval are fixed.
package config

import "github.com/snakeoillabs/serpent/internal/canvas"

// Settings are the platform-level options loaded from YAML.
type Settings struct {
	Theme   ThemeConfig   `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// ThemeConfig names the colors used for each game element.
type ThemeConfig struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Food   string `yaml:"food"`
	Score  string `yaml:"score"`
	Border string `yaml:"border"`
}

// StorageConfig locates the high-score database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SSHConfig holds the serve command's defaults.
type SSHConfig struct {
	Address         string `yaml:"address"`
	HostKeyPath     string `yaml:"host_key"`
	IdleTimeoutMins int    `yaml:"idle_timeout_mins"`
}

// Default returns the built-in settings, matching the embedded YAML.
func Default() Settings {
	return Settings{
		Theme: ThemeConfig{
			Head:   "bright_green",
			Body:   "green",
			Food:   "orange",
			Score:  "bright_yellow",
			Border: "gray",
		},
		Storage: StorageConfig{
			Path: "~/.serpent/scores.db",
		},
		SSH: SSHConfig{
			Address:         ":23235",
			HostKeyPath:     "",
			IdleTimeoutMins: 30,
		},
	}
}

// colorNames maps YAML color names to canvas colors.
var colorNames = map[string]canvas.Color{
	"default":       canvas.ColorDefault,
	"red":           canvas.ColorRed,
	"green":         canvas.ColorGreen,
	"yellow":        canvas.ColorYellow,
	"blue":          canvas.ColorBlue,
	"magenta":       canvas.ColorMagenta,
	"cyan":          canvas.ColorCyan,
	"white":         canvas.ColorWhite,
	"bright_green":  canvas.ColorBrightGreen,
	"bright_yellow": canvas.ColorBrightYellow,
	"orange":        canvas.ColorOrange,
	"gray":          canvas.ColorGray,
}

// ParseColor resolves a color name from the theme section. Unknown names
// fall back to the terminal default rather than failing the load.
func ParseColor(name string) canvas.Color {
	if c, ok := colorNames[name]; ok {
		return c
	}
	return canvas.ColorDefault
}
