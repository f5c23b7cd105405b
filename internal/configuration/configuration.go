package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clambin/ledhub/internal/clock"
	"github.com/clambin/ledhub/internal/version"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Debug          bool
	PrometheusPort int
	// Interval is the duration of one scheduler cycle
	Interval   time.Duration
	Effect     string
	ConfigFile string
	// Location is the time zone used for the alarm & sunset times
	Location *time.Location
	StripConfiguration
	FileConfiguration
}

type StripConfiguration struct {
	LEDPath string
	Count   int
}

// FileConfiguration holds the settings read from the configuration file
type FileConfiguration struct {
	Effects map[string]EffectConfiguration `yaml:"effects"`
	Fade    FadeConfiguration              `yaml:"fade"`
}

// EffectConfiguration overrides an effect's default timing
type EffectConfiguration struct {
	ZeroOffset *time.Duration `yaml:"zero_offset"`
	StepSize   *time.Duration `yaml:"step_size"`
}

type FadeConfiguration struct {
	Low      float64             `yaml:"low"`
	High     float64             `yaml:"high"`
	AutoStop bool                `yaml:"auto_stop"`
	Alarm    AlarmConfiguration  `yaml:"alarm"`
	Sunset   SunsetConfiguration `yaml:"sunset"`
}

type AlarmConfiguration struct {
	Enabled  bool             `yaml:"enabled"`
	Time     *clock.ClockTime `yaml:"time"`
	Duration time.Duration    `yaml:"duration"`
	// Effect is activated when the alarm starts. PostEffect is activated once the alarm fade is complete.
	Effect     string `yaml:"effect"`
	PostEffect string `yaml:"post_effect"`
}

type SunsetConfiguration struct {
	Enabled bool `yaml:"enabled"`
	// Time is today's sunset. Sunset fades are only possible if it is set.
	Time     *clock.ClockTime `yaml:"time"`
	Duration time.Duration    `yaml:"duration"`
	Offset   time.Duration    `yaml:"offset"`
	Effect   string           `yaml:"effect"`
}

// DefaultFileConfiguration contains the settings used for anything not set in the configuration file
var DefaultFileConfiguration = FileConfiguration{
	Fade: FadeConfiguration{
		Low:    0,
		High:   1,
		Alarm:  AlarmConfiguration{Duration: 30 * time.Minute},
		Sunset: SunsetConfiguration{Duration: 30 * time.Minute},
	},
}

func GetConfigFromArgs(args []string) (Configuration, error) {
	cfg := Configuration{FileConfiguration: DefaultFileConfiguration}
	var timezone string

	a := kingpin.New(filepath.Base(os.Args[0]), "ledhub")
	a.Version(version.BuildVersion)
	a.HelpFlag.Short('h')
	a.VersionFlag.Short('v')
	a.Flag("debug", "Log debug messages").Short('d').Default("false").BoolVar(&cfg.Debug)
	a.Flag("prometheus", "Prometheus metrics listener port").Default("9090").IntVar(&cfg.PrometheusPort)
	a.Flag("interval", "Duration of one scheduler cycle").Default("1ms").DurationVar(&cfg.Interval)
	a.Flag("effect", "Effect to activate at startup").Short('e').Default("Nox").StringVar(&cfg.Effect)
	a.Flag("config", "Configuration file (effect timing & fade schedule)").Short('c').Default("").StringVar(&cfg.ConfigFile)
	a.Flag("led-path", "path name to the sysfs directory for the LED (if empty, LED output is discarded)").Default("").StringVar(&cfg.LEDPath)
	a.Flag("count", "Number of LEDs in the strip").Default("60").IntVar(&cfg.Count)
	a.Flag("timezone", "Time zone of the alarm & sunset times (e.g. Europe/Brussels)").Default("Local").StringVar(&timezone)

	if _, err := a.Parse(args); err != nil {
		return cfg, fmt.Errorf("invalid command line arguments: %w", err)
	}
	if cfg.Interval <= 0 {
		return cfg, errors.New("invalid command line arguments: interval must be positive")
	}
	if cfg.Count <= 0 {
		return cfg, errors.New("invalid command line arguments: count must be positive")
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return cfg, fmt.Errorf("invalid command line arguments: timezone: %w", err)
	}
	cfg.Location = loc

	if cfg.ConfigFile != "" {
		f, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg.FileConfiguration = f
	}
	return cfg, nil
}

// LoadFile reads a configuration file. Settings missing from the file take their value from DefaultFileConfiguration.
func LoadFile(path string) (FileConfiguration, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileConfiguration{}, fmt.Errorf("config file: %w", err)
	}
	cfg := DefaultFileConfiguration
	if err = yaml.Unmarshal(content, &cfg); err != nil {
		return FileConfiguration{}, fmt.Errorf("config file %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return FileConfiguration{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every enabled fade trigger has a time set
func (f FileConfiguration) Validate() error {
	if f.Fade.Alarm.Enabled && f.Fade.Alarm.Time == nil {
		return errors.New("fade.alarm: enabled without a time")
	}
	if f.Fade.Sunset.Enabled && f.Fade.Sunset.Time == nil {
		return errors.New("fade.sunset: enabled without a time")
	}
	return nil
}
