package response

import (
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/automation"
)

// LoopStatus represents the automation loop in API responses
type LoopStatus struct {
	State        string   `json:"state"`
	RunID        string   `json:"run_id,omitempty"`
	Mode         string   `json:"mode"`
	CorpusSize   int      `json:"corpus_size"`
	UsedWords    []string `json:"used_words"`
	TurnsHandled int64    `json:"turns_handled"`
	TurnsDropped int64    `json:"turns_dropped"`
}

// LoopStatusFromStatus converts automation.Status
func LoopStatusFromStatus(s automation.Status) LoopStatus {
	used := s.UsedWords
	if used == nil {
		used = []string{}
	}
	return LoopStatus{
		State:        string(s.State),
		RunID:        s.RunID,
		Mode:         string(s.Mode),
		CorpusSize:   s.CorpusSize,
		UsedWords:    used,
		TurnsHandled: s.TurnsHandled,
		TurnsDropped: s.TurnsDropped,
	}
}

// Suggestions is the ranked candidate list for a fragment
type Suggestions struct {
	Fragment string   `json:"fragment"`
	Prefix   string   `json:"prefix"`
	Total    int      `json:"total"`
	Words    []string `json:"words"`
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}
