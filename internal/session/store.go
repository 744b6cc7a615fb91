// Package session holds the state that the browser app kept in localStorage:
// the bearer token obtained at login and the locally recorded VIP subscription.
// All reads and writes go through the api.Client session accessors - nothing
// else should touch the store directly.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// VIPSubscription is the locally-synthesized record written after a
// subscription payment completes. It gates contact-reveal features in the
// expert directory. It is a hint, not a server-issued credential: the backend
// remains the authority on entitlements.
type VIPSubscription struct {
	ID        string    `json:"id"`
	ProjectID int       `json:"project_id"`
	Plan      string    `json:"plan"` // Basic, Classic or Premium
	Operator  string    `json:"operator"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
}

// VIPSubscriptionExpiry is how long a locally recorded subscription is treated as active
const VIPSubscriptionExpiry = 30 * 24 * time.Hour

// NewVIPSubscription creates a subscription record with a fresh id and expiry
func NewVIPSubscription(projectID int, plan string, operator string, status string) VIPSubscription {
	return VIPSubscription{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Plan:      plan,
		Operator:  operator,
		Status:    status,
		ExpiresAt: time.Now().Add(VIPSubscriptionExpiry),
	}
}

// Active reports whether the record is confirmed and unexpired
func (v VIPSubscription) Active() bool {
	return v.Status == "confirmed" && time.Now().Before(v.ExpiresAt)
}

// Store persists the session state across invocations.
type Store interface {
	Token() string
	SetToken(token string) error
	ClearToken() error

	VIP() (VIPSubscription, bool)
	SetVIP(sub VIPSubscription) error
	ClearVIP() error
}

type state struct {
	Token string           `json:"token,omitempty"`
	VIP   *VIPSubscription `json:"vip_subscription,omitempty"`
}

// MemoryStore is an in-process Store used by the gateway and in tests.
type MemoryStore struct {
	mu    sync.Mutex
	state state
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Token
}

func (m *MemoryStore) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Token = token
	return nil
}

func (m *MemoryStore) ClearToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Token = ""
	return nil
}

func (m *MemoryStore) VIP() (VIPSubscription, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.VIP == nil {
		return VIPSubscription{}, false
	}
	return *m.state.VIP, true
}

func (m *MemoryStore) SetVIP(sub VIPSubscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.VIP = &sub
	return nil
}

func (m *MemoryStore) ClearVIP() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.VIP = nil
	return nil
}

// FileStore persists the session as a JSON file under the user config
// directory so that the CLI keeps its login between runs.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// DefaultSessionPath returns the standard location of the session file
func DefaultSessionPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(configDir, "prf", "session.json"), nil
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (f *FileStore) load() state {
	var s state

	data, err := os.ReadFile(f.path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		// treat a corrupt session file as a logged-out session
		return state{}
	}
	return s
}

func (f *FileStore) save(s state) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (f *FileStore) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load().Token
}

func (f *FileStore) SetToken(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.load()
	s.Token = token
	return f.save(s)
}

func (f *FileStore) ClearToken() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.load()
	s.Token = ""
	return f.save(s)
}

func (f *FileStore) VIP() (VIPSubscription, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.load()
	if s.VIP == nil {
		return VIPSubscription{}, false
	}
	return *s.VIP, true
}

func (f *FileStore) SetVIP(sub VIPSubscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.load()
	s.VIP = &sub
	return f.save(s)
}

func (f *FileStore) ClearVIP() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.load()
	s.VIP = nil
	return f.save(s)
}

var _ Store = (*MemoryStore)(nil)
var _ Store = (*FileStore)(nil)

// ErrNoSession is returned by helpers that need a logged-in session
var ErrNoSession = errors.New("no active session - log in first")
