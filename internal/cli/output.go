package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/nunnu1028/kkutu-korea-hack/internal/api/response"
)

// gridWidth is the terminal width word grids are wrapped to
const gridWidth = 80

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer

	title lipgloss.Style
	label lipgloss.Style
	muted lipgloss.Style
}

// NewOutput creates a formatter writing to w. Colour is only emitted when w
// is a terminal.
func NewOutput(format string, w io.Writer) *Output {
	r := lipgloss.NewRenderer(w)
	return &Output{
		format: format,
		w:      w,
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ecdc4")),
		label:  r.NewStyle().Foreground(lipgloss.Color("#a8dadc")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
		return
	}
	o.printText(data)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		o.printJSON(map[string]string{"message": msg})
		return
	}
	_, _ = fmt.Fprintln(o.w, msg)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Suggestions:
		o.printSuggestions(v)
	case response.LoopStatus:
		o.printLoopStatus(v)
	case response.Health:
		o.printField("Status", v.Status)
	case CorpusStats:
		o.printCorpusStats(v)
	default:
		o.printJSON(data)
	}
}

// CorpusStats describes the cached corpus
type CorpusStats struct {
	Source string `json:"source"`
	Words  int    `json:"words"`
	Cached bool   `json:"cached"`
}

func (o *Output) printSuggestions(s response.Suggestions) {
	header := fmt.Sprintf("%s  %d words", s.Fragment, s.Total)
	if s.Prefix != s.Fragment {
		header = fmt.Sprintf("%s → %s  %d words", s.Fragment, s.Prefix, s.Total)
	}
	_, _ = fmt.Fprintln(o.w, o.title.Render(header))

	if len(s.Words) == 0 {
		_, _ = fmt.Fprintln(o.w, o.muted.Render("no candidates"))
		return
	}
	o.printGrid(s.Words)
	if rest := s.Total - len(s.Words); rest > 0 {
		_, _ = fmt.Fprintln(o.w, o.muted.Render(fmt.Sprintf("… %d more", rest)))
	}
}

func (o *Output) printLoopStatus(s response.LoopStatus) {
	o.printField("State", s.State)
	if s.RunID != "" {
		o.printField("Run", s.RunID)
	}
	o.printField("Mode", s.Mode)
	o.printField("Corpus", strconv.Itoa(s.CorpusSize))
	o.printField("Turns", fmt.Sprintf("%d handled, %d dropped", s.TurnsHandled, s.TurnsDropped))
	o.printField("Used", strconv.Itoa(len(s.UsedWords)))
	if len(s.UsedWords) > 0 {
		o.printGrid(s.UsedWords)
	}
}

func (o *Output) printCorpusStats(c CorpusStats) {
	o.printField("Source", c.Source)
	o.printField("Words", strconv.Itoa(c.Words))
	cached := "no"
	if c.Cached {
		cached = "yes"
	}
	o.printField("Cached", cached)
}

func (o *Output) printField(name, value string) {
	_, _ = fmt.Fprintf(o.w, "%s %s\n", o.label.Render(runewidth.FillRight(name+":", 8)), value)
}

// printGrid lays words out in columns. Hangul is double width, so columns
// are measured in cells rather than runes.
func (o *Output) printGrid(words []string) {
	for _, row := range gridRows(words, gridWidth) {
		_, _ = fmt.Fprintln(o.w, strings.TrimRight(row, " "))
	}
}

// gridRows packs words into rows no wider than width cells
func gridRows(words []string, width int) []string {
	cell := 0
	for _, w := range words {
		cell = max(cell, runewidth.StringWidth(w))
	}
	cell += 2

	cols := max(width/cell, 1)
	rows := make([]string, 0, (len(words)+cols-1)/cols)
	for start := 0; start < len(words); start += cols {
		var b strings.Builder
		for _, w := range words[start:min(start+cols, len(words))] {
			b.WriteString(runewidth.FillRight(w, cell))
		}
		rows = append(rows, b.String())
	}
	return rows
}
