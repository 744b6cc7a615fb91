package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMemoryStoreTokenRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	if got := store.Token(); got != "" {
		t.Errorf("fresh store token %q, want empty", got)
	}

	if err := store.SetToken("tok"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if got := store.Token(); got != "tok" {
		t.Errorf("got token %q, want tok", got)
	}

	if err := store.ClearToken(); err != nil {
		t.Fatalf("ClearToken: %v", err)
	}
	if got := store.Token(); got != "" {
		t.Errorf("token %q after clear, want empty", got)
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prf", "session.json")

	first, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := first.SetToken("tok"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	sub := NewVIPSubscription(3, "Premium", "mtn", "confirmed")
	if err := first.SetVIP(sub); err != nil {
		t.Fatalf("SetVIP: %v", err)
	}

	// a second store on the same path sees the state, like a new CLI run
	second, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if got := second.Token(); got != "tok" {
		t.Errorf("got token %q, want tok", got)
	}
	stored, ok := second.VIP()
	if !ok {
		t.Fatal("VIP record not persisted")
	}
	if stored.ID != sub.ID || stored.Plan != "Premium" {
		t.Errorf("got %+v, want persisted record %+v", stored, sub)
	}

	// clearing the token must not drop the subscription
	if err := second.ClearToken(); err != nil {
		t.Fatalf("ClearToken: %v", err)
	}
	if _, ok := second.VIP(); !ok {
		t.Error("VIP record lost when token cleared")
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if got := store.Token(); got != "" {
		t.Errorf("corrupt file yielded token %q, want logged-out state", got)
	}
	if _, ok := store.VIP(); ok {
		t.Error("corrupt file yielded a VIP record")
	}

	// the store recovers on the next write
	if err := store.SetToken("tok"); err != nil {
		t.Fatalf("SetToken after corruption: %v", err)
	}
	if got := store.Token(); got != "tok" {
		t.Errorf("got token %q, want tok", got)
	}
}

func TestFileStorePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.SetToken("tok"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Errorf("session file mode %o, want 600", got)
	}
}

func TestVIPSubscriptionActive(t *testing.T) {
	tests := []struct {
		name   string
		status string
		expiry time.Time
		want   bool
	}{
		{"confirmed and current", "confirmed", time.Now().Add(time.Hour), true},
		{"confirmed but expired", "confirmed", time.Now().Add(-time.Hour), false},
		{"pending", "pending", time.Now().Add(time.Hour), false},
		{"failed", "failed", time.Now().Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := VIPSubscription{Status: tt.status, ExpiresAt: tt.expiry}
			if got := sub.Active(); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewVIPSubscription(t *testing.T) {
	sub := NewVIPSubscription(7, "Classic", "orange", "confirmed")

	if sub.ID == "" {
		t.Error("subscription id not generated")
	}
	if sub.ProjectID != 7 || sub.Plan != "Classic" || sub.Operator != "orange" {
		t.Errorf("got %+v, want project 7 Classic via orange", sub)
	}

	wantExpiry := time.Now().Add(VIPSubscriptionExpiry)
	if diff := sub.ExpiresAt.Sub(wantExpiry); diff < -time.Minute || diff > time.Minute {
		t.Errorf("expiry %v, want about %v", sub.ExpiresAt, wantExpiry)
	}

	other := NewVIPSubscription(7, "Classic", "orange", "confirmed")
	if other.ID == sub.ID {
		t.Error("subscription ids must be unique")
	}
}
