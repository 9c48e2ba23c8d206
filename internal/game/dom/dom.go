// Package dom reads game state out of an HTML snapshot of the game page.
package dom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
)

// Selectors used on the game page
const (
	ChainSelector     = ".chain"
	HistorySelector   = ".ellipse.history-item.expl-mother"
	FragmentSelector  = ".jjo-display.ellipse"
	TurnInputSelector = ".GameBox.Product .game-input"
	AnswerSelector    = ".ChatBox.Product input"
)

// minAnswerStyleLen separates the styled answer input from the plain chat box
const minAnswerStyleLen = 50

// Snapshot is the game state extracted from one copy of the page
type Snapshot struct {
	chain      string
	hasChain   bool
	history    string
	hasHistory bool
	fragment   string
	hasFrag    bool

	// TurnVisible is true while the turn input is displayed
	TurnVisible bool

	// AnswerIndex is the position of the answer input among AnswerSelector
	// matches, or -1 when none qualifies
	AnswerIndex int
}

// Parse builds a Snapshot from page HTML
func Parse(r io.Reader) (*Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse game page: %w", err)
	}
	return FromDocument(doc), nil
}

// FromDocument builds a Snapshot from an already parsed document
func FromDocument(doc *goquery.Document) *Snapshot {
	s := &Snapshot{AnswerIndex: -1}

	if chain := doc.Find(ChainSelector).First(); chain.Length() > 0 {
		s.chain = strings.TrimSpace(chain.Text())
		s.hasChain = true
	}

	if item := doc.Find(HistorySelector).First(); item.Length() > 0 {
		s.history = leadingText(item)
		s.hasHistory = s.history != ""
	}

	if frag := doc.Find(FragmentSelector).First(); frag.Length() > 0 {
		s.fragment = strings.TrimSpace(frag.Text())
		s.hasFrag = true
	}

	doc.Find(TurnInputSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if styleProperty(sel.AttrOr("style", ""), "display") == "block" {
			s.TurnVisible = true
			return false
		}
		return true
	})

	s.AnswerIndex = answerIndex(doc.Find(AnswerSelector))
	return s
}

// ChainLength returns the parsed chain counter
func (s *Snapshot) ChainLength() (int, error) {
	if !s.hasChain {
		return 0, fmt.Errorf("%w: %s", model.ErrElementNotFound, ChainSelector)
	}
	n, err := strconv.Atoi(s.chain)
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %q", model.ErrElementNotFound, model.ErrChainUnreadable, s.chain)
	}
	return n, nil
}

// LastPlayedWord returns the newest history entry
func (s *Snapshot) LastPlayedWord() (string, bool) {
	return s.history, s.hasHistory
}

// RequiredFragment returns the displayed start requirement
func (s *Snapshot) RequiredFragment() (string, error) {
	if !s.hasFrag {
		return "", fmt.Errorf("%w: %s", model.ErrElementNotFound, FragmentSelector)
	}
	return s.fragment, nil
}

// leadingText returns the text that precedes the first child element
func leadingText(sel *goquery.Selection) string {
	var b strings.Builder
	for n := sel.Nodes[0].FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			break
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

// answerIndex skips the first input and picks the first heavily styled one
func answerIndex(inputs *goquery.Selection) int {
	idx := -1
	inputs.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i == 0 {
			return true
		}
		if len(sel.AttrOr("style", "")) > minAnswerStyleLen {
			idx = i
			return false
		}
		return true
	})
	return idx
}

// styleProperty extracts one declaration from an inline style attribute
func styleProperty(style, name string) string {
	for _, decl := range strings.Split(style, ";") {
		key, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), name) {
			return strings.ToLower(strings.TrimSpace(value))
		}
	}
	return ""
}
