package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nunnu1028/kkutu-korea-hack/internal/api"
	"github.com/nunnu1028/kkutu-korea-hack/internal/api/response"
	"github.com/nunnu1028/kkutu-korea-hack/internal/factory"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/automation"
	"github.com/nunnu1028/kkutu-korea-hack/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	dir        string
	configPath string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.dir = s.T().TempDir()

	corpusPath := filepath.Join(s.dir, "words.txt")
	s.Require().NoError(os.WriteFile(corpusPath, []byte("사과\n사슴나무\n사릇\n사자\n개미\n"), 0644))

	s.configPath = filepath.Join(s.dir, "config.yaml")
	s.Require().NoError(os.WriteFile(s.configPath, []byte("corpus:\n  file: "+corpusPath+"\n"), 0644))
}

// run executes the CLI and returns stdout
func (s *CLISuite) run(args ...string) (string, error) {
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", s.configPath}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func (s *CLISuite) decode(out string, v any) {
	s.Require().NoError(json.Unmarshal([]byte(out), v), out)
}

func (s *CLISuite) TestSuggestRanksCorpusWords() {
	out, err := s.run("--output", "json", "suggest", "사")
	s.Require().NoError(err)

	var result response.Suggestions
	s.decode(out, &result)
	s.Equal("사", result.Prefix)
	s.Equal(4, result.Total)
	s.Equal([]string{"사과", "사자", "사슴나무", "사릇"}, result.Words)
}

func (s *CLISuite) TestSuggestIgnoresHint() {
	out, err := s.run("--output", "json", "suggest", "사(개)", "--used", "사과,사자", "--limit", "1")
	s.Require().NoError(err)

	var result response.Suggestions
	s.decode(out, &result)
	s.Equal("사(개)", result.Fragment)
	s.Equal("사", result.Prefix)
	s.Equal(2, result.Total)
	s.Equal([]string{"사슴나무"}, result.Words)
}

func (s *CLISuite) TestSuggestNoMatchesIsEmptyList() {
	out, err := s.run("--output", "json", "suggest", "없")
	s.Require().NoError(err)

	var result response.Suggestions
	s.decode(out, &result)
	s.Equal(0, result.Total)
	s.NotNil(result.Words)
	s.Empty(result.Words)
}

func (s *CLISuite) TestSuggestTextOutput() {
	out, err := s.run("suggest", "사")
	s.Require().NoError(err)

	s.Contains(out, "4 words")
	s.Contains(out, "사슴나무")
}

func (s *CLISuite) TestOutputFromEnvironment() {
	s.T().Setenv("KKUTU_OUTPUT", "json")

	out, err := s.run("suggest", "개")
	s.Require().NoError(err)

	var result response.Suggestions
	s.decode(out, &result)
	s.Equal([]string{"개미"}, result.Words)
}

func (s *CLISuite) TestInvalidOutputFormat() {
	_, err := s.run("--output", "yaml", "suggest", "사")
	s.Error(err)
}

func (s *CLISuite) TestMissingCorpusFileFails() {
	s.Require().NoError(os.WriteFile(s.configPath, []byte("corpus:\n  file: "+filepath.Join(s.dir, "missing.txt")+"\n"), 0644))

	_, err := s.run("suggest", "사")
	s.Error(err)
}

func (s *CLISuite) TestCorpusStatsWithoutCache() {
	out, err := s.run("--output", "json", "corpus", "stats")
	s.Require().NoError(err)

	var stats CorpusStats
	s.decode(out, &stats)
	s.False(stats.Cached)
	s.Equal(0, stats.Words)
}

func (s *CLISuite) TestCorpusFetch() {
	out, err := s.run("--output", "json", "corpus", "fetch")
	s.Require().NoError(err)

	var stats CorpusStats
	s.decode(out, &stats)
	s.True(stats.Cached)
	s.Equal(5, stats.Words)
	s.True(strings.HasSuffix(stats.Source, "words.txt"))
}

func (s *CLISuite) TestConfigInit() {
	path := filepath.Join(s.dir, "nested", "config.yaml")

	_, err := s.run("config", "init", path)
	s.Require().NoError(err)
	s.FileExists(path)

	_, err = s.run("config", "init", path)
	s.Error(err)

	_, err = s.run("config", "init", path, "--force")
	s.NoError(err)
}

func (s *CLISuite) TestConfigShow() {
	out, err := s.run("config", "show")
	s.Require().NoError(err)

	s.Contains(out, "corpus:")
	s.Contains(out, "words.txt")
	s.Contains(out, "typing_speed:")
}

func (s *CLISuite) TestLoopCommandsAgainstControlAPI() {
	app := factory.NewTestApp()
	loop, err := app.NewTestLoop(automation.DefaultOptions())
	s.Require().NoError(err)
	s.Require().NoError(loop.Init(context.Background()))

	server := httptest.NewServer(api.NewRouter(api.RouterConfig{Logger: testutil.NopLogger(), Loop: loop}))
	defer server.Close()

	out, err := s.run("--server", server.URL, "--output", "json", "health")
	s.Require().NoError(err)
	var health response.Health
	s.decode(out, &health)
	s.Equal("ok", health.Status)

	out, err = s.run("--server", server.URL, "--output", "json", "loop", "status")
	s.Require().NoError(err)
	var status response.LoopStatus
	s.decode(out, &status)
	s.Equal("initialized", status.State)

	_, err = s.run("--server", server.URL, "loop", "stop")
	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal("NOT_RUNNING", apiErr.Code)
	s.Equal(409, apiErr.Status)

	out, err = s.run("--server", server.URL, "--output", "json", "loop", "start")
	s.Require().NoError(err)
	s.decode(out, &status)
	s.Equal("running", status.State)

	_, err = s.run("--server", server.URL, "loop", "reset")
	s.Require().NoError(err)

	out, err = s.run("--server", server.URL, "--output", "json", "loop", "suggest", "사", "-n", "2")
	s.Require().NoError(err)
	var suggestions response.Suggestions
	s.decode(out, &suggestions)
	s.Len(suggestions.Words, 2)

	_, err = s.run("--server", server.URL, "loop", "stop")
	s.Require().NoError(err)
	loop.Wait()
}

func TestGridRowsMeasuresCells(t *testing.T) {
	words := []string{"사과", "사슴", "개미", "ab"}

	// Hangul syllables are two cells wide: each column is 4+2 cells
	rows := gridRows(words, 13)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(rows), rows)
	}
	if rows[0] != "사과  사슴  " {
		t.Errorf("unexpected first row %q", rows[0])
	}
	if rows[1] != "개미  ab    " {
		t.Errorf("unexpected second row %q", rows[1])
	}
}

func TestGridRowsNarrowWidth(t *testing.T) {
	rows := gridRows([]string{"사과나무", "개"}, 3)
	if len(rows) != 2 {
		t.Fatalf("expected one word per row, got %q", rows)
	}
}
