package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	MinWindow    = 200

	VisualRingSize  = 8192
	LevelWindow     = 2048
	SmoothingFactor = 0.6

	// Navigation bar
	NavBarHeight = 32
	NavItemWidth = 110
	NavItemX     = 140
	NavItemPad   = 6

	// Section card
	CardWidth   = 460
	CardPadding = 16
	LineHeight  = 16

	DefaultEnvFile = ".env"
	EnvPrefix      = "BACKDROP_"
)

// Theme choices accepted by -theme and BACKDROP_THEME.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Sections accepted by -section and BACKDROP_SECTION.
var Sections = []string{"hero", "about", "projects", "contact"}

type Config struct {
	Theme   string
	Resume  string // local path or http(s) URL
	Audio   string // optional ambience track
	Width   int
	Height  int
	Section string
}

func Default() Config {
	return Config{
		Theme:   ThemeSystem,
		Width:   WindowWidth,
		Height:  WindowHeight,
		Section: Sections[0],
	}
}

// Load builds the configuration from defaults, then the env file, then the
// process environment, then command-line flags; later sources win.
func Load(args []string) (Config, error) {
	cfg := Default()

	fset := flag.NewFlagSet("backdrop", flag.ContinueOnError)
	envFile := fset.String("env", DefaultEnvFile, "dotenv file with BACKDROP_* settings")
	theme := fset.String("theme", cfg.Theme, "color theme (system, light, dark)")
	resume := fset.String("resume", cfg.Resume, "résumé source: file path or http(s) URL")
	audio := fset.String("audio", cfg.Audio, "ambience track (wav, mp3, flac)")
	width := fset.Int("width", cfg.Width, "initial window width")
	height := fset.Int("height", cfg.Height, "initial window height")
	section := fset.String("section", cfg.Section, "section shown at start ("+strings.Join(Sections, ", ")+")")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	env, err := readEnv(*envFile, set["env"])
	if err != nil {
		return Config{}, err
	}
	if err := cfg.apply(env); err != nil {
		return Config{}, err
	}

	if set["theme"] {
		cfg.Theme = *theme
	}
	if set["resume"] {
		cfg.Resume = *resume
	}
	if set["audio"] {
		cfg.Audio = *audio
	}
	if set["width"] {
		cfg.Width = *width
	}
	if set["height"] {
		cfg.Height = *height
	}
	if set["section"] {
		cfg.Section = *section
	}

	cfg.Theme = strings.ToLower(cfg.Theme)
	cfg.Section = strings.ToLower(cfg.Section)
	return cfg, cfg.Validate()
}

// readEnv merges the dotenv file with BACKDROP_* process variables. A missing
// file is only an error when it was asked for explicitly.
func readEnv(path string, required bool) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || required {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
		env = map[string]string{}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

func (c *Config) apply(env map[string]string) error {
	str := func(key string, dst *string) {
		if v, ok := env[EnvPrefix+key]; ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := env[EnvPrefix+key]
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s %q: %w", EnvPrefix, key, v, err)
		}
		*dst = n
		return nil
	}

	str("THEME", &c.Theme)
	str("RESUME", &c.Resume)
	str("AUDIO", &c.Audio)
	str("SECTION", &c.Section)
	if err := num("WIDTH", &c.Width); err != nil {
		return err
	}
	return num("HEIGHT", &c.Height)
}

func (c Config) Validate() error {
	switch c.Theme {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("unknown theme '%s'", c.Theme)
	}
	if c.Width < MinWindow || c.Height < MinWindow {
		return fmt.Errorf("window size %dx%d below minimum %d", c.Width, c.Height, MinWindow)
	}
	if c.SectionIndex() < 0 {
		return fmt.Errorf("unknown section '%s'", c.Section)
	}
	return nil
}

// SectionIndex returns the position of Section in Sections, or -1.
func (c Config) SectionIndex() int {
	for i, s := range Sections {
		if s == c.Section {
			return i
		}
	}
	return -1
}
