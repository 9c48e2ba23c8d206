package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/nunnu1028/kkutu-korea-hack/internal/config"
	"github.com/nunnu1028/kkutu-korea-hack/internal/factory"
	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/corpus"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Settings holds the global flags after flag, env and default resolution
type Settings struct {
	ConfigPath string
	ServerURL  string
	Output     string
	LogFormat  string
	Verbose    bool
	Storage    string // overrides storage.type when set
	RedisURL   string // overrides storage.redis_url when set
}

// DefaultSettings returns the flag defaults
func DefaultSettings() *Settings {
	return &Settings{
		ConfigPath: config.DefaultPath(),
		ServerURL:  "http://127.0.0.1:8787",
		Output:     FormatText,
		LogFormat:  FormatJSON,
	}
}

// resolve reads every setting back through viper so KKUTU_* variables
// apply whenever the matching flag was not given
func (s *Settings) resolve(v *viper.Viper) error {
	s.ConfigPath = v.GetString("config")
	s.ServerURL = v.GetString("server")
	s.Output = v.GetString("output")
	s.LogFormat = v.GetString("log-format")
	s.Verbose = v.GetBool("verbose")
	s.Storage = v.GetString("storage")
	s.RedisURL = v.GetString("redis-url")

	if s.Output != FormatText && s.Output != FormatJSON {
		return fmt.Errorf("%w: output must be %s or %s", model.ErrInvalidOptions, FormatText, FormatJSON)
	}
	if s.LogFormat != FormatText && s.LogFormat != FormatJSON {
		return fmt.Errorf("%w: log-format must be %s or %s", model.ErrInvalidOptions, FormatText, FormatJSON)
	}
	return nil
}

// LoadConfig reads the config file and applies the storage overrides
func (s *Settings) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(s.ConfigPath)
	if err != nil {
		return nil, err
	}
	if s.Storage != "" {
		cfg.Storage.Type = s.Storage
	}
	if s.RedisURL != "" {
		cfg.Storage.RedisURL = s.RedisURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes to w, at debug level when verbose
func newLogger(w io.Writer, s *Settings) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if s.Verbose {
		opts.Level = slog.LevelDebug
	}
	if s.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// upstreamSource is the corpus source named by the config, ignoring storage
func upstreamSource(cfg *config.Config) corpus.Source {
	if cfg.Corpus.File != "" {
		return corpus.FileSource{Path: cfg.Corpus.File}
	}
	return corpus.NewHTTPSource(cfg.Corpus.URL)
}

// newApp wires the application for cfg. Downloaded corpora go through the
// storage cache; local files are always read fresh.
func newApp(cfg *config.Config, logger *slog.Logger) (*factory.App, error) {
	fc := factory.Config{
		Logger:       logger,
		StorageType:  cfg.Storage.Type,
		CorpusSource: upstreamSource(cfg),
		CacheCorpus:  cfg.Corpus.File == "",
		RandomSeed:   cfg.Output.RandomSeed,
	}
	if cfg.Storage.Type == factory.StorageTypeRedis {
		redisCfg := cfg.RedisOptions()
		fc.RedisConfig = &redisCfg
	}
	return factory.New(fc)
}
