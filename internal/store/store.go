package store

import (
	"context"
	"log"
	"sync"
	"time"

	"socialnet-client/internal/model"
)

// LogoutNotifier tells the backend the session should be invalidated.
// Called fire-and-forget on logout; the gateway's Logout method satisfies it.
type LogoutNotifier func(ctx context.Context) error

// Store is the process-wide client state: the authenticated user (or none)
// and the session-alert flag. All mutations go through the defined actions;
// the store is the only shared mutable resource between view handlers, so
// last-writer-wins on the user object as a whole is the consistency rule.
type Store struct {
	mu sync.RWMutex

	user      *model.User
	alertOpen bool

	storage      *Storage
	notifyLogout LogoutNotifier
}

// New builds a store with its initial state read from durable storage.
// A corrupt or unreadable state file degrades to a logged-out store.
func New(storage *Storage) *Store {
	s := &Store{storage: storage}

	if storage != nil {
		user, err := storage.LoadUser()
		if err != nil {
			log.Printf("[Store] Failed to restore persisted user: %v", err)
		} else {
			s.user = user
		}
	}

	return s
}

// SetLogoutNotifier wires the backend logout call. A setter rather than a
// constructor argument because the gateway needs the store for its session
// alerts before the store can know about the gateway.
func (s *Store) SetLogoutNotifier(fn LogoutNotifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifyLogout = fn
}

// Login replaces the stored user and persists it under the startup key.
func (s *Store) Login(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	if s.storage != nil {
		if err := s.storage.SaveUser(user); err != nil {
			log.Printf("[Store] Failed to persist user: %v", err)
		}
	}
}

// Logout clears the user and durable storage, then notifies the backend
// without waiting for the result.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.alertOpen = false
	notify := s.notifyLogout
	if s.storage != nil {
		if err := s.storage.Clear(); err != nil {
			log.Printf("[Store] Failed to clear persisted state: %v", err)
		}
	}
	s.mu.Unlock()

	if notify != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := notify(ctx); err != nil {
				log.Printf("[Store] Backend logout failed: %v", err)
			}
		}()
	}
}

// UpdateUser shallow-merges the given user into the current one. Zero-valued
// fields fall back to the stored value so a partial payload cannot blank
// identity fields. No-op when logged out.
func (s *Store) UpdateUser(updated model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}

	merged := mergeUser(*s.user, updated)
	s.user = &merged
}

func mergeUser(current, updated model.User) model.User {
	if updated.ID == "" {
		updated.ID = current.ID
	}
	if updated.Username == "" {
		updated.Username = current.Username
	}
	if updated.Email == "" {
		updated.Email = current.Email
	}
	if updated.Firstname == "" {
		updated.Firstname = current.Firstname
	}
	if updated.Lastname == "" {
		updated.Lastname = current.Lastname
	}
	if updated.Follows == nil {
		updated.Follows = current.Follows
	}
	if updated.Description == nil {
		updated.Description = current.Description
	}
	if updated.ProfilePicture == nil {
		updated.ProfilePicture = current.ProfilePicture
	}
	if updated.CreatedAt.IsZero() {
		updated.CreatedAt = current.CreatedAt
	}
	return updated
}

// CurrentUser returns the authenticated user, or nil when logged out.
func (s *Store) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// ShowAlert raises the session-expiry flag. Observed by the top-level
// session dialog, which forces logout while the flag is up.
func (s *Store) ShowAlert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alertOpen = true
}

func (s *Store) HideAlert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alertOpen = false
}

func (s *Store) AlertOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alertOpen
}
