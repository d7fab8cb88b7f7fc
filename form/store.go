package form

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

var ErrSessionNotFound = errors.New("no active contact form for user")

// Store owns the active sessions, keyed by user ID. It is process-local by
// design: a restart drops all open forms. Safe for concurrent use across
// users; messages from one user are expected to arrive sequentially.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Start creates a fresh empty session for the user, overwriting any
// existing one.
func (s *Store) Start(userID, displayName string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		UserID:      userID,
		DisplayName: displayName,
		CreatedAt:   s.now().UTC(),
		Status:      StatusIncomplete,
	}
	s.sessions[userID] = sess
	return *sess
}

// Active returns a snapshot of the user's session, if any.
func (s *Store) Active(userID string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// SetField writes a value and recomputes status.
func (s *Store) SetField(userID string, field Field, value string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, userID)
	}

	sess.Values.set(field, value)
	if sess.filled() {
		sess.Status = StatusComplete
	} else {
		sess.Status = StatusIncomplete
	}
	return *sess, nil
}

// EditField writes a value and forces the session back to incomplete, even
// when the edit fills the last missing field. That reopens a finished form
// for re-confirmation; the caller re-prompts from NextMissing.
func (s *Store) EditField(userID string, field Field, value string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, userID)
	}

	sess.Values.set(field, value)
	sess.Status = StatusIncomplete
	return *sess, nil
}

// Complete removes the session and returns its final snapshot. It does not
// check status; the dialog layer only calls it once NextMissing reports
// nothing left.
func (s *Store) Complete(userID string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, false
	}
	delete(s.sessions, userID)
	return *sess, true
}

// Cancel drops any session for the user. Idempotent.
func (s *Store) Cancel(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Summary renders the filled fields in collection order for user review.
func (s *Store) Summary(userID string) (string, bool) {
	sess, ok := s.Active(userID)
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.WriteString("📋 *Current Form Data:*\n\n")
	labels := map[Field]string{
		FieldName:    "👤 Name",
		FieldEmail:   "📧 Email",
		FieldPhone:   "📱 Phone",
		FieldSubject: "📝 Subject",
		FieldMessage: "💬 Message",
	}
	for _, f := range fieldOrder {
		if v := sess.Value(f); v != "" {
			fmt.Fprintf(&b, "%s: %s\n", labels[f], v)
		}
	}
	b.WriteString("\n_To edit a field, type: edit [field] [new value]_\n")
	b.WriteString("_Example: edit name John Smith_")
	return b.String(), true
}

// Prompt returns the question asked for a field, with the standing
// cancel/review hint.
func Prompt(field Field) string {
	const hint = "\n\n_(Type \"cancel\" to stop | \"review\" to see current data)_"
	switch field {
	case FieldName:
		return "👤 Please provide your full name:" + hint
	case FieldEmail:
		return "📧 Please provide your email address:" + hint
	case FieldPhone:
		return "📱 Please provide your phone number:" + hint
	case FieldSubject:
		return "📝 What is the subject of your inquiry?" + hint
	case FieldMessage:
		return "💬 Please describe your inquiry or requirements in detail:" + hint
	default:
		return "Please provide the information:" + hint
	}
}
