// Package config resolves the CLI settings from defaults, an optional
// cpm.yaml file, CPM_ environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/utkarsh5026/cpm/cpm"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "CPM"

// Policy describes the size sweep used by the suites.
type Policy struct {
	Start  int           `mapstructure:"start"`
	End    int           `mapstructure:"end"`
	Add    int           `mapstructure:"add"`
	Factor int           `mapstructure:"factor"`
	Limit  time.Duration `mapstructure:"limit"`
}

// Settings is the resolved configuration of one CLI invocation.
type Settings struct {
	Name      string `mapstructure:"name"`
	Warmup    int    `mapstructure:"warmup"`
	Repeat    int    `mapstructure:"repeat"`
	Folder    string `mapstructure:"folder"`
	Tag       string `mapstructure:"tag"`
	AutoSave  bool   `mapstructure:"autosave"`
	AutoMkdir bool   `mapstructure:"mkdir"`
	Quiet     bool   `mapstructure:"quiet"`
	NoColor   bool   `mapstructure:"no_color"`
	Seed      uint64 `mapstructure:"seed"`
	Pin       int    `mapstructure:"pin"`
	Policy    Policy `mapstructure:"policy"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("name", "cpm")
	v.SetDefault("warmup", cpm.DefaultWarmup)
	v.SetDefault("repeat", cpm.DefaultRepeat)
	v.SetDefault("folder", ".")
	v.SetDefault("tag", "")
	v.SetDefault("autosave", true)
	v.SetDefault("mkdir", true)
	v.SetDefault("quiet", false)
	v.SetDefault("no_color", false)
	v.SetDefault("seed", 0)
	v.SetDefault("pin", -1)

	v.SetDefault("policy.start", 10)
	v.SetDefault("policy.end", 1_000_000)
	v.SetDefault("policy.add", 0)
	v.SetDefault("policy.factor", 10)
	v.SetDefault("policy.limit", time.Second)
}

// Load reads the configuration into v and decodes it. An empty cfgFile
// looks for cpm.yaml in the working directory and tolerates its absence.
func Load(v *viper.Viper, cfgFile string) (Settings, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("cpm")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return s, nil
}

// SweepPolicy returns the size policy described by p.
func (p Policy) SweepPolicy() cpm.Policy {
	inc := cpm.Increasing{
		Start:  cpm.Linear(p.Start),
		End:    p.End,
		Add:    p.Add,
		Factor: p.Factor,
	}
	if p.Limit <= 0 {
		return inc
	}
	return cpm.Timeout{Increasing: inc, Limit: p.Limit}
}

// Options translates s into benchmark options.
func (s Settings) Options() []cpm.Option {
	opts := []cpm.Option{
		cpm.WithWarmup(s.Warmup),
		cpm.WithRepeat(s.Repeat),
		cpm.WithPolicy(s.Policy.SweepPolicy()),
		cpm.WithFolder(s.Folder),
		cpm.WithAutoSave(s.AutoSave),
		cpm.WithAutoMkdir(s.AutoMkdir),
		cpm.WithStandardReport(!s.Quiet),
	}
	if s.NoColor {
		opts = append(opts, cpm.WithColor(false))
	}
	if s.Tag != "" {
		opts = append(opts, cpm.WithTag(s.Tag))
	}
	if s.Seed != 0 {
		opts = append(opts, cpm.WithSeed(s.Seed))
	}
	if s.Pin >= 0 {
		opts = append(opts, cpm.WithPinnedCPU(s.Pin))
	}
	return opts
}
