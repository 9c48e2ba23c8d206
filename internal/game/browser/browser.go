// Package browser drives a live game page through the Chrome DevTools
// protocol.
package browser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/nunnu1028/kkutu-korea-hack/internal/dependencies/clock"
	"github.com/nunnu1028/kkutu-korea-hack/internal/game"
	"github.com/nunnu1028/kkutu-korea-hack/internal/game/dom"
	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
)

// DefaultGameURL is the page opened when no matching tab exists
const DefaultGameURL = "https://kkutu.co.kr/"

// Config holds browser connection settings
type Config struct {
	// DebuggerURL attaches to a running Chrome. Empty launches a new one.
	DebuggerURL string
	// Headless only applies when launching
	Headless bool
	// GameURL selects an open tab, or is opened when none matches
	GameURL string
	// PollInterval is how often the turn input is polled
	PollInterval time.Duration
}

// DefaultConfig returns settings for a visible, freshly launched browser
func DefaultConfig() Config {
	return Config{
		GameURL:      DefaultGameURL,
		PollInterval: game.DefaultPollInterval,
	}
}

// Session is a connection to one game tab
type Session struct {
	pageState

	browser  *rod.Browser
	page     *rod.Page
	launcher *launcher.Launcher
	cfg      Config
	logger   *slog.Logger
}

// Connect attaches to (or launches) Chrome and finds the game tab
func Connect(ctx context.Context, cfg Config, logger *slog.Logger) (*Session, error) {
	logger = logger.With(slog.String("component", "browser"))
	if cfg.GameURL == "" {
		cfg.GameURL = DefaultGameURL
	}

	var l *launcher.Launcher
	controlURL := cfg.DebuggerURL
	if controlURL == "" {
		l = launcher.New().Headless(cfg.Headless)
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch chrome: %w", err)
		}
		controlURL = u
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		if l != nil {
			l.Cleanup()
		}
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}

	page, err := findOrOpen(b, cfg.GameURL)
	if err != nil {
		if l != nil {
			_ = b.Close()
			l.Cleanup()
		}
		return nil, err
	}

	logger.Info("attached to game page",
		slog.String("url", cfg.GameURL),
		slog.Bool("launched", l != nil),
	)

	s := &Session{
		browser:  b,
		page:     page,
		launcher: l,
		cfg:      cfg,
		logger:   logger,
	}
	s.pageState = pageState{html: s.pageHTML, setAnswer: s.setAnswer}
	return s, nil
}

func findOrOpen(b *rod.Browser, gameURL string) (*rod.Page, error) {
	pages, err := b.Pages()
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	if page, err := pages.FindByURL(regexp.QuoteMeta(strings.TrimSuffix(gameURL, "/"))); err == nil {
		return page, nil
	}
	page, err := b.Page(proto.TargetCreateTarget{URL: gameURL})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", gameURL, err)
	}
	return page, nil
}

// Collaborators wires the session into the automation loop. Displayed
// candidates go to lines.
func (s *Session) Collaborators(clk clock.Clock, lines io.Writer) game.Collaborators {
	return game.Collaborators{
		State:  s,
		Signal: game.NewPollingSignal(s.TurnVisible, s.cfg.PollInterval, clk, s.logger),
		Input:  s,
		Lines:  game.NewWriterLines(lines),
	}
}

// Close disconnects, shutting Chrome down only if this session launched it
func (s *Session) Close() error {
	if s.launcher == nil {
		return nil
	}
	err := s.browser.Close()
	s.launcher.Cleanup()
	return err
}

func (s *Session) pageHTML(ctx context.Context) (string, error) {
	return s.page.Context(ctx).HTML()
}

func (s *Session) setAnswer(ctx context.Context, index int, word string) error {
	inputs, err := s.page.Context(ctx).Elements(dom.AnswerSelector)
	if err != nil {
		return fmt.Errorf("find answer input: %w", err)
	}
	if index >= len(inputs) {
		return fmt.Errorf("%w: answer input", model.ErrElementNotFound)
	}
	_, err = inputs[index].Eval(`function (v) { this.value = v }`, word)
	return err
}
