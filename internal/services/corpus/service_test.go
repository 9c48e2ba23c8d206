package corpus

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
	"github.com/nunnu1028/kkutu-korea-hack/internal/storage/memory"
	"github.com/nunnu1028/kkutu-korea-hack/internal/testutil"
)

type sliceSource struct {
	words []string
	err   error
	calls int
}

func (s *sliceSource) Load(ctx context.Context) ([]string, error) {
	s.calls++
	return s.words, s.err
}

type CorpusSuite struct {
	suite.Suite
	ctx context.Context
}

func TestCorpusSuite(t *testing.T) {
	suite.Run(t, new(CorpusSuite))
}

func (s *CorpusSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *CorpusSuite) TestLoadKeepsOrder() {
	svc := New(&sliceSource{words: []string{"사자", "사과", "개미"}}, testutil.NopLogger())
	s.False(svc.IsLoaded())

	s.Require().NoError(svc.Load(s.ctx))
	s.True(svc.IsLoaded())
	s.Equal(3, svc.WordCount())
	s.Equal([]string{"사자", "사과", "개미"}, svc.Words())
}

func (s *CorpusSuite) TestLoadFailureIsLoadError() {
	cause := errors.New("unreachable")
	svc := New(&sliceSource{err: cause}, testutil.NopLogger())

	err := svc.Load(s.ctx)
	s.ErrorIs(err, model.ErrCorpusLoad)
	s.ErrorIs(err, cause)
	s.False(svc.IsLoaded())
}

func (s *CorpusSuite) TestWordsReturnsCopy() {
	svc := New(&sliceSource{}, testutil.NopLogger())
	svc.LoadWords([]string{"사과"})

	words := svc.Words()
	words[0] = "mutated"
	s.Equal([]string{"사과"}, svc.Words())
}

func (s *CorpusSuite) TestHTTPSource() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["사과","사자"]`))
	}))
	defer server.Close()

	words, err := NewHTTPSource(server.URL).Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"사과", "사자"}, words)
}

func (s *CorpusSuite) TestHTTPSourceBadStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := New(NewHTTPSource(server.URL), testutil.NopLogger())
	s.ErrorIs(svc.Load(s.ctx), model.ErrCorpusLoad)
}

func (s *CorpusSuite) TestHTTPSourceBadJSON() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	svc := New(NewHTTPSource(server.URL), testutil.NopLogger())
	s.ErrorIs(svc.Load(s.ctx), model.ErrCorpusLoad)
}

func (s *CorpusSuite) TestNewHTTPSourceDefaultURL() {
	s.Equal(DefaultURL, NewHTTPSource("").URL)
}

func (s *CorpusSuite) TestFileSourceLines() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("사과\n\n  사자  \n개미\n"), 0o644))

	words, err := FileSource{Path: path}.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"사과", "사자", "개미"}, words)
}

func (s *CorpusSuite) TestFileSourceJSON() {
	path := filepath.Join(s.T().TempDir(), "data.json")
	s.Require().NoError(os.WriteFile(path, []byte(`["사슴","개미"]`), 0o644))

	words, err := FileSource{Path: path}.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"사슴", "개미"}, words)
}

func (s *CorpusSuite) TestFileSourceMissing() {
	_, err := FileSource{Path: filepath.Join(s.T().TempDir(), "nope.txt")}.Load(s.ctx)
	s.Error(err)
}

func (s *CorpusSuite) TestStorageSource() {
	store := memory.New()
	_, err := StorageSource{Storage: store}.Load(s.ctx)
	s.ErrorIs(err, model.ErrCorpusNotLoaded)

	s.Require().NoError(store.SaveCorpusWords(s.ctx, []string{"사과"}))
	words, err := StorageSource{Storage: store}.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"사과"}, words)
}

func (s *CorpusSuite) TestCachedSourceFillsThenServesCache() {
	store := memory.New()
	upstream := &sliceSource{words: []string{"사과", "사자"}}
	src := CachedSource{Cache: store, Upstream: upstream, Logger: testutil.NopLogger()}

	words, err := src.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"사과", "사자"}, words)
	s.Equal(1, upstream.calls)

	words, err = src.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"사과", "사자"}, words)
	s.Equal(1, upstream.calls)
}

func (s *CorpusSuite) TestCachedSourceUpstreamFailure() {
	src := CachedSource{Cache: memory.New(), Upstream: &sliceSource{err: errors.New("down")}}
	_, err := src.Load(s.ctx)
	s.Error(err)
}
