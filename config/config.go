// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"strconv"

	"github.com/ossrs/go-oryx-lib/errors"
	"gopkg.in/yaml.v3"

	"github.com/ik5/audwave/cache"
	"github.com/ik5/audwave/extract"
	"github.com/ik5/audwave/waveform"
)

// Environment variables read by ApplyEnv.
const (
	EnvCacheCapacity = "AUDWAVE_CACHE_CAPACITY"
	EnvAnalysisRate  = "AUDWAVE_ANALYSIS_RATE"
	EnvWorkers       = "AUDWAVE_WORKERS"
)

// Config is the application configuration.
type Config struct {
	Cache   CacheConfig   `yaml:"cache"`
	Extract ExtractConfig `yaml:"extract"`
	// Workers bounds downsampling goroutines; 0 uses GOMAXPROCS.
	Workers int                    `yaml:"workers"`
	Styles  map[string]StyleConfig `yaml:"styles"`
}

type CacheConfig struct {
	Capacity int `yaml:"capacity"`
}

// ExtractConfig controls how files become sample vectors.
type ExtractConfig struct {
	Channel      string `yaml:"channel"`       // mix or first
	AnalysisRate int    `yaml:"analysis_rate"` // Hz, 0 keeps the source rate
	BufferSize   int    `yaml:"buffer_size"`   // samples per decode read, 0 lets the decoder pick
}

// StyleConfig describes one rendering style. Zero fields take the default
// of the style's kind.
type StyleConfig struct {
	Kind            string  `yaml:"kind"`
	BarWidth        float64 `yaml:"bar_width,omitempty"`
	Spacing         float64 `yaml:"spacing,omitempty"`
	DotRadius       float64 `yaml:"dot_radius,omitempty"`
	PixelsPerSample float64 `yaml:"pixels_per_sample,omitempty"`
	LogFloor        float32 `yaml:"log_floor,omitempty"`
	Strategy        string  `yaml:"strategy,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	styles := make(map[string]StyleConfig)
	for name, st := range waveform.DefaultStyles() {
		styles[name] = fromStyle(st)
	}

	return &Config{
		Cache: CacheConfig{
			Capacity: cache.DefaultCapacity,
		},
		Extract: ExtractConfig{
			Channel:    string(extract.ChannelMix),
			BufferSize: 4096,
		},
		Styles: styles,
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %v", filename)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %v", filename)
	}

	cfg.ensureDefaults()

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrapf(err, "marshal config")
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrapf(err, "write config %v", filename)
	}

	return nil
}

// ApplyEnv overrides fields from the AUDWAVE_* environment variables.
// lookup defaults to os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	overrides := []struct {
		name string
		dst  *int
	}{
		{EnvCacheCapacity, &c.Cache.Capacity},
		{EnvAnalysisRate, &c.Extract.AnalysisRate},
		{EnvWorkers, &c.Workers},
	}

	for _, o := range overrides {
		v, ok := lookup(o.name)
		if !ok || v == "" {
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrInvalidEnv, "%v=%v", o.name, v)
		}
		*o.dst = n
	}

	return nil
}

// FileExtractor builds the extractor described by the extract section.
func (c *Config) FileExtractor() (*extract.FileExtractor, error) {
	mode, err := extract.ParseChannelMode(c.Extract.Channel)
	if err != nil {
		return nil, err
	}

	return &extract.FileExtractor{
		Registry:     extract.NewRegistry(),
		Channel:      mode,
		AnalysisRate: c.Extract.AnalysisRate,
		BufferSize:   c.Extract.BufferSize,
	}, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Cache.Capacity <= 0 {
		return errors.Wrapf(ErrInvalidCapacity, "capacity=%v", c.Cache.Capacity)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidWorkers, "workers=%v", c.Workers)
	}
	if c.Extract.AnalysisRate < 0 {
		return errors.Wrapf(ErrInvalidRate, "analysis_rate=%v", c.Extract.AnalysisRate)
	}
	if c.Extract.BufferSize < 0 {
		return errors.Wrapf(ErrInvalidBufferSize, "buffer_size=%v", c.Extract.BufferSize)
	}
	if _, err := extract.ParseChannelMode(c.Extract.Channel); err != nil {
		return err
	}

	_, err := c.StyleSet()
	return err
}

// StyleSet converts every configured style.
func (c *Config) StyleSet() (map[string]waveform.Style, error) {
	if len(c.Styles) == 0 {
		return nil, ErrNoStyles
	}

	out := make(map[string]waveform.Style, len(c.Styles))
	for name, sc := range c.Styles {
		st, err := sc.Style()
		if err != nil {
			return nil, errors.Wrapf(err, "style %v", name)
		}
		out[name] = st
	}

	return out, nil
}

// Style converts sc to a validated waveform.Style.
func (sc StyleConfig) Style() (waveform.Style, error) {
	st := waveform.Style{
		Kind:            waveform.Kind(sc.Kind),
		BarWidth:        sc.BarWidth,
		Spacing:         sc.Spacing,
		DotRadius:       sc.DotRadius,
		PixelsPerSample: sc.PixelsPerSample,
		LogFloor:        sc.LogFloor,
	}

	if sc.Strategy != "" {
		strategy, err := waveform.ParseStrategy(sc.Strategy)
		if err != nil {
			return waveform.Style{}, err
		}
		st.Strategy = strategy
	}

	if err := st.Validate(); err != nil {
		return waveform.Style{}, err
	}

	return st, nil
}

func fromStyle(st waveform.Style) StyleConfig {
	return StyleConfig{
		Kind:            string(st.Kind),
		BarWidth:        st.BarWidth,
		Spacing:         st.Spacing,
		DotRadius:       st.DotRadius,
		PixelsPerSample: st.PixelsPerSample,
		LogFloor:        st.LogFloor,
		Strategy:        st.Strategy.String(),
	}
}

// ensureDefaults fills what a partial file left empty.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Cache.Capacity == 0 {
		c.Cache.Capacity = def.Cache.Capacity
	}
	if c.Extract.Channel == "" {
		c.Extract.Channel = def.Extract.Channel
	}
	if c.Extract.BufferSize == 0 {
		c.Extract.BufferSize = def.Extract.BufferSize
	}

	if len(c.Styles) == 0 {
		c.Styles = def.Styles
		return
	}

	defaults := waveform.DefaultStyles()
	for name, sc := range c.Styles {
		if sc.Kind == "" {
			sc.Kind = name
		}

		if base, ok := defaults[sc.Kind]; ok {
			d := fromStyle(base)
			if sc.BarWidth == 0 {
				sc.BarWidth = d.BarWidth
			}
			if sc.Spacing == 0 {
				sc.Spacing = d.Spacing
			}
			if sc.DotRadius == 0 {
				sc.DotRadius = d.DotRadius
			}
			if sc.PixelsPerSample == 0 {
				sc.PixelsPerSample = d.PixelsPerSample
			}
			if sc.LogFloor == 0 {
				sc.LogFloor = d.LogFloor
			}
			if sc.Strategy == "" {
				sc.Strategy = d.Strategy
			}
		}

		c.Styles[name] = sc
	}
}
