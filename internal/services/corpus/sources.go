package corpus

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
	"github.com/nunnu1028/kkutu-korea-hack/internal/storage"
)

// DefaultURL is the published word list
const DefaultURL = "https://raw.githubusercontent.com/nunnu1028/kkutu-korea-hack/stable/data.json"

// HTTPSource downloads a JSON array of words
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates an HTTPSource. An empty url uses DefaultURL.
func NewHTTPSource(url string) *HTTPSource {
	if url == "" {
		url = DefaultURL
	}
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (h *HTTPSource) Load(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", h.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", h.URL, resp.StatusCode)
	}

	return decodeJSON(resp.Body)
}

// FileSource reads words from disk. Files ending in .json hold a JSON array;
// anything else is read as one word per line.
type FileSource struct {
	Path string
}

func (f FileSource) Load(ctx context.Context) ([]string, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(f.Path), ".json") {
		return decodeJSON(file)
	}

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// StorageSource reads a previously cached corpus
type StorageSource struct {
	Storage storage.Storage
}

func (s StorageSource) Load(ctx context.Context) ([]string, error) {
	return s.Storage.GetCorpusWords(ctx)
}

// CachedSource serves the cached corpus when present and otherwise loads
// upstream and fills the cache
type CachedSource struct {
	Cache    storage.Storage
	Upstream Source
	Logger   *slog.Logger
}

func (c CachedSource) Load(ctx context.Context) ([]string, error) {
	words, err := c.Cache.GetCorpusWords(ctx)
	if err == nil {
		return words, nil
	}
	if !errors.Is(err, model.ErrCorpusNotLoaded) {
		c.logger().Warn("corpus cache read failed", slog.String("error", err.Error()))
	}

	words, err = c.Upstream.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.Cache.SaveCorpusWords(ctx, words); err != nil {
		c.logger().Warn("corpus cache write failed", slog.String("error", err.Error()))
	}
	return words, nil
}

func (c CachedSource) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

func decodeJSON(r io.Reader) ([]string, error) {
	var words []string
	if err := json.NewDecoder(r).Decode(&words); err != nil {
		return nil, fmt.Errorf("decode word list: %w", err)
	}
	return words, nil
}
