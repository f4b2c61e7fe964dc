package state

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Status describes a topic relative to the last time it was read
type Status string

const (
	StatusUnread  Status = "unread"
	StatusUpdated Status = "updated"
	StatusRead    Status = "read"
)

// TopicState represents the reading state of a single topic
type TopicState struct {
	Hash     string `json:"hash"`
	ViewedAt int64  `json:"viewed_at"`
	Snapshot string `json:"snapshot,omitempty"` // Markup as last read, for change diffs
}

// State tracks reading progress keyed by content path
type State struct {
	mu     sync.RWMutex
	Topics map[string]*TopicState `json:"topics"`
}

// NewState creates a new empty state
func NewState() *State {
	return &State{
		Topics: make(map[string]*TopicState),
	}
}

// Load reads state from the state file
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, err
	}

	st := NewState()
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("failed to parse state: %w", err)
	}

	if st.Topics == nil {
		st.Topics = make(map[string]*TopicState)
	}

	return st, nil
}

// Save writes state to the state file
func (s *State) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	s.mu.RLock()
	data, err := json.MarshalIndent(s, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// ComputeHash computes the SHA256 hash of lesson content
func ComputeHash(content []byte) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(content))
}

// HasChanged checks if a topic's content differs from what was last read.
// Topics never read count as changed.
func (s *State) HasChanged(path string, content []byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topic, exists := s.Topics[path]
	if !exists {
		return true
	}
	return topic.Hash != ComputeHash(content)
}

// Status classifies a topic as unread, updated since last read, or read
func (s *State) Status(path string, content []byte) Status {
	s.mu.RLock()
	_, exists := s.Topics[path]
	s.mu.RUnlock()

	switch {
	case !exists:
		return StatusUnread
	case s.HasChanged(path, content):
		return StatusUpdated
	default:
		return StatusRead
	}
}

// MarkViewed records that content was read at the given time
func (s *State) MarkViewed(path string, content []byte, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Topics[path] = &TopicState{
		Hash:     ComputeHash(content),
		ViewedAt: at.Unix(),
		Snapshot: string(content),
	}
}

// ViewedAt returns when a topic was last read, or the zero time
func (s *State) ViewedAt(path string) time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if topic, exists := s.Topics[path]; exists {
		return time.Unix(topic.ViewedAt, 0)
	}
	return time.Time{}
}

// Snapshot returns the markup as it was when the topic was last read
func (s *State) Snapshot(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topic, exists := s.Topics[path]
	if !exists {
		return "", false
	}
	return topic.Snapshot, true
}
