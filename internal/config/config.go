// Package config handles loading and saving the YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nunnu1028/kkutu-korea-hack/internal/game/browser"
	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/automation"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/corpus"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/ranking"
	"github.com/nunnu1028/kkutu-korea-hack/internal/storage/redis"
)

// Ranking orders
const (
	OrderShortest = "shortest"
	OrderLongest  = "longest"
)

// Config holds all user configuration
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	Ranking RankingConfig `yaml:"ranking"`
	Output  OutputConfig  `yaml:"output"`
	Browser BrowserConfig `yaml:"browser"`
	Loop    LoopConfig    `yaml:"loop"`
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
}

// CorpusConfig selects where words come from
type CorpusConfig struct {
	URL  string `yaml:"url"`  // Remote JSON word list
	File string `yaml:"file"` // Local list, used instead of URL when set
}

// RankingConfig controls candidate ordering
type RankingConfig struct {
	SortByLength  bool     `yaml:"sort_by_length"`
	SortByEndWord bool     `yaml:"sort_by_end_word"`
	EndWords      []string `yaml:"end_words"`
	Order         string   `yaml:"order"` // shortest or longest
}

// OutputConfig controls what happens with a turn's candidates
type OutputConfig struct {
	Mode        string `yaml:"mode"`         // display or input
	Emit        string `yaml:"emit"`         // last, first or random
	TypingSpeed int    `yaml:"typing_speed"` // units per minute
	BatchSize   int    `yaml:"batch_size"`
	RandomSeed  uint64 `yaml:"random_seed,omitempty"` // 0 seeds from the runtime
}

// BrowserConfig locates the game page
type BrowserConfig struct {
	URL          string        `yaml:"url"`
	DebuggerURL  string        `yaml:"debugger_url"`
	Headless     bool          `yaml:"headless"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// LoopConfig tunes the automation loop
type LoopConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// APIConfig controls the optional control API
type APIConfig struct {
	Listen string `yaml:"listen"` // Empty disables the API
}

// StorageConfig selects the corpus cache
type StorageConfig struct {
	Type      string        `yaml:"type"` // memory or redis
	RedisURL  string        `yaml:"redis_url"`
	CorpusTTL time.Duration `yaml:"corpus_ttl"`
}

// Default returns the out-of-the-box configuration
func Default() *Config {
	rankingDefaults := ranking.DefaultConfig()
	loopDefaults := automation.DefaultOptions()
	browserDefaults := browser.DefaultConfig()
	redisDefaults := redis.DefaultConfig()

	return &Config{
		Corpus: CorpusConfig{
			URL: corpus.DefaultURL,
		},
		Ranking: RankingConfig{
			SortByLength:  rankingDefaults.SortByLength,
			SortByEndWord: rankingDefaults.SortByEndWord,
			EndWords:      rankingDefaults.EndWords,
			Order:         OrderShortest,
		},
		Output: OutputConfig{
			Mode:        string(loopDefaults.Mode),
			Emit:        string(loopDefaults.Emit),
			TypingSpeed: loopDefaults.TypingSpeed,
			BatchSize:   loopDefaults.BatchSize,
		},
		Browser: BrowserConfig{
			URL:          browserDefaults.GameURL,
			PollInterval: browserDefaults.PollInterval,
		},
		Loop: LoopConfig{
			RefreshInterval: loopDefaults.RefreshInterval,
		},
		Storage: StorageConfig{
			Type:      "memory",
			RedisURL:  redisDefaults.URL,
			CorpusTTL: redisDefaults.CorpusTTL,
		},
	}
}

// DefaultPath returns $HOME/.config/kkutu/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".kkutu", "config.yaml")
	}
	return filepath.Join(home, ".config", "kkutu", "config.yaml")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := Write(&buf, cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Write encodes cfg as YAML
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return enc.Close()
}

// Validate checks every section, returning an error matching
// model.ErrInvalidOptions
func (c *Config) Validate() error {
	if c.Ranking.Order != OrderShortest && c.Ranking.Order != OrderLongest {
		return fmt.Errorf("%w: ranking.order must be %q or %q", model.ErrInvalidOptions, OrderShortest, OrderLongest)
	}
	if c.Storage.Type != "memory" && c.Storage.Type != "redis" {
		return fmt.Errorf("%w: storage.type must be memory or redis", model.ErrInvalidOptions)
	}
	if c.Corpus.URL == "" && c.Corpus.File == "" {
		return fmt.Errorf("%w: corpus needs a url or a file", model.ErrInvalidOptions)
	}
	return c.LoopOptions().Validate()
}

// RankingOptions converts the ranking section
func (c *Config) RankingOptions() ranking.Config {
	cmp := ranking.ByLength
	if c.Ranking.Order == OrderLongest {
		cmp = ranking.ByLengthDesc
	}
	return ranking.Config{
		Compare:       cmp,
		SortByLength:  c.Ranking.SortByLength,
		SortByEndWord: c.Ranking.SortByEndWord,
		EndWords:      append([]string(nil), c.Ranking.EndWords...),
	}
}

// LoopOptions converts the output and loop sections
func (c *Config) LoopOptions() automation.Options {
	return automation.Options{
		Ranking:         c.RankingOptions(),
		Mode:            model.OutputMode(c.Output.Mode),
		TypingSpeed:     c.Output.TypingSpeed,
		Emit:            model.EmitPosition(c.Output.Emit),
		BatchSize:       c.Output.BatchSize,
		RefreshInterval: c.Loop.RefreshInterval,
	}
}

// BrowserOptions converts the browser section
func (c *Config) BrowserOptions() browser.Config {
	return browser.Config{
		DebuggerURL:  c.Browser.DebuggerURL,
		Headless:     c.Browser.Headless,
		GameURL:      c.Browser.URL,
		PollInterval: c.Browser.PollInterval,
	}
}

// RedisOptions converts the storage section
func (c *Config) RedisOptions() redis.Config {
	cfg := redis.DefaultConfig()
	cfg.URL = c.Storage.RedisURL
	cfg.CorpusTTL = c.Storage.CorpusTTL
	return cfg
}
