package core

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

var identityPattern = regexp.MustCompile(`^[0-9]{4}$`)

// NormalizeIdentity trims whitespace and validates the 4-digit format.
func NormalizeIdentity(raw string) (string, bool) {
	id := strings.TrimSpace(raw)
	if !identityPattern.MatchString(id) {
		return "", false
	}
	return id, true
}

// Registry is the authoritative identity<->connection mapping. Both maps
// are always mutated together under one lock so a forward lookup and its
// reverse entry can never disagree.
type Registry struct {
	mu         sync.RWMutex
	byIdentity map[string]*Client
	byClient   map[*Client]string
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byIdentity: make(map[string]*Client),
		byClient:   make(map[*Client]string),
	}
}

// Register binds identity to client. The returned identity is the
// normalized form. changed reports whether membership actually mutated,
// so callers know when to broadcast presence. Claims on an identity held
// by a different live connection are rejected; re-claiming one's own
// identity is a no-op success.
func (r *Registry) Register(rawIdentity string, c *Client) (identity string, changed bool, err *CoreError) {
	identity, ok := NormalizeIdentity(rawIdentity)
	if !ok {
		return "", false, coreError(ErrCodeInvalidIdentity, "ID must be exactly 4 digits (0000-9999)")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, taken := r.byIdentity[identity]; taken {
		if existing == c {
			return identity, false, nil
		}
		return "", false, coreError(ErrCodeIdentityTaken, "This ID is already in use. Choose another.")
	}

	// Release any identity this connection held before.
	if old, held := r.byClient[c]; held {
		delete(r.byIdentity, old)
	}

	r.byIdentity[identity] = c
	r.byClient[c] = identity
	return identity, true, nil
}

// Resolve returns the connection bound to identity, if any. Pure lookup.
func (r *Registry) Resolve(identity string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byIdentity[identity]
	return c, ok
}

// IdentityOf returns the identity held by the connection, if any.
func (r *Registry) IdentityOf(c *Client) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	identity, ok := r.byClient[c]
	return identity, ok
}

// Release removes the entry owned by the connection and returns the
// freed identity for logging.
func (r *Registry) Release(c *Client) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity, ok := r.byClient[c]
	if !ok {
		return "", false
	}
	delete(r.byIdentity, identity)
	delete(r.byClient, c)
	return identity, true
}

// Identities returns a sorted snapshot of all registered identities.
func (r *Registry) Identities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.byIdentity))
	for id := range r.byIdentity {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered identities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byIdentity)
}
