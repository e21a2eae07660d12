package http

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"sudoku-engine/internal/engine"
	"sudoku-engine/pkg/constants"
)

// ============================================================================
// Session Store and Signed Handles
// ============================================================================
//
// Store is the RWMutex-guarded singleton map of live solvers, one per
// session, the same shape as the puzzle-file loader this transport layer
// used to wrap. A session's *engine.Solver persists across requests so a
// client can configure, load a problem, and step through Solution/Trace
// calls one HTTP request at a time.
//
// SessionToken/createToken/verifyToken are the HMAC-signed-payload
// scheme this package has always used for client-held handles, rewired
// to carry a session ID instead of a puzzle seed: a client cannot reach
// another client's solver by guessing IDs, because the ID returned to
// them is signed and verified on every subsequent request.
//
// ============================================================================

// SessionToken is the signed payload handed back to clients.
type SessionToken struct {
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func createToken(secret string, session SessionToken) (string, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return "", err
	}

	encoded := base64.URLEncoding.EncodeToString(payload)

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(encoded))
	sig := base64.URLEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s.%s", encoded, sig), nil
}

func verifyToken(secret, token string) (*SessionToken, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid token format")
	}
	encoded, sig := parts[0], parts[1]

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(encoded))
	expectedSig := base64.URLEncoding.EncodeToString(h.Sum(nil))

	if subtle.ConstantTimeCompare([]byte(sig), []byte(expectedSig)) != 1 {
		return nil, fmt.Errorf("invalid signature")
	}

	payload, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	var session SessionToken
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, fmt.Errorf("token expired")
	}

	return &session, nil
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Store holds every live session's solver, keyed by session ID.
type Store struct {
	mu      sync.RWMutex
	solvers map[string]*engine.Solver
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{solvers: make(map[string]*engine.Solver)}
}

// Create allocates a fresh session with a new solver and returns its ID.
func (s *Store) Create() (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.solvers[id] = engine.NewSolver()
	return id, nil
}

// Get returns the solver for a session ID, if one exists.
func (s *Store) Get(id string) (*engine.Solver, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	solver, ok := s.solvers[id]
	return solver, ok
}

// Delete removes a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.solvers, id)
}

var (
	globalStore     *Store
	globalStoreOnce sync.Once
)

// Global returns the process-wide session store singleton.
func Global() *Store {
	globalStoreOnce.Do(func() {
		globalStore = NewStore()
	})
	return globalStore
}

func defaultExpiry() time.Time {
	return time.Now().Add(constants.SessionTokenExpiry)
}
