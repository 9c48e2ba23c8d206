package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/nunnu1028/kkutu-korea-hack/internal/api/apierr"
	"github.com/nunnu1028/kkutu-korea-hack/internal/api/response"
	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/automation"
)

// maxSuggestions caps the limit query parameter
const maxSuggestions = 2000

// LoopController is the part of the automation loop exposed over HTTP
type LoopController interface {
	Run(ctx context.Context) error
	Stop() error
	ResetUsedWords() error
	Suggest(fragment string) ([]string, error)
	Status() automation.Status
}

// LoopHandler handles loop control endpoints
type LoopHandler struct {
	loop LoopController
}

// NewLoopHandler creates a new loop handler
func NewLoopHandler(loop LoopController) *LoopHandler {
	return &LoopHandler{loop: loop}
}

// Status handles GET /api/v1/loop
func (h *LoopHandler) Status(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.LoopStatusFromStatus(h.loop.Status()))
}

// Start handles POST /api/v1/loop/start
func (h *LoopHandler) Start(w http.ResponseWriter, r *http.Request) {
	if err := h.loop.Run(r.Context()); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.LoopStatusFromStatus(h.loop.Status()))
}

// Stop handles POST /api/v1/loop/stop
func (h *LoopHandler) Stop(w http.ResponseWriter, r *http.Request) {
	if err := h.loop.Stop(); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.LoopStatusFromStatus(h.loop.Status()))
}

// ResetUsedWords handles DELETE /api/v1/loop/used-words
func (h *LoopHandler) ResetUsedWords(w http.ResponseWriter, r *http.Request) {
	if err := h.loop.ResetUsedWords(); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Suggestions handles GET /api/v1/suggestions?fragment=..&limit=..
// A missing fragment is an empty prefix and lists every unused word.
func (h *LoopHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	fragment := query.Get("fragment")

	limit := maxSuggestions
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			apierr.WriteError(w, apierr.NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = min(n, maxSuggestions)
	}

	words, err := h.loop.Suggest(fragment)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	if words == nil {
		words = []string{}
	}

	response.JSON(w, http.StatusOK, response.Suggestions{
		Fragment: fragment,
		Prefix:   model.Fragment(fragment).Prefix(),
		Total:    len(words),
		Words:    words[:min(limit, len(words))],
	})
}
