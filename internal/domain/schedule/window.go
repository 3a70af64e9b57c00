package schedule

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultMinNotice       = 24 * time.Hour
	DefaultMaxRange        = 7 * 24 * time.Hour
	DefaultPrivilegedRange = 30 * 24 * time.Hour
)

// Identity is the caller as resolved by the identity provider.
type Identity struct {
	ID   uuid.UUID
	Role string
}

// Authorizer decides which identities skip the standard admission window.
type Authorizer interface {
	HasUnrestrictedScheduling(identity *Identity) bool
}

// RoleAuthorizer grants unrestricted scheduling to a fixed set of roles.
type RoleAuthorizer struct {
	roles map[string]struct{}
}

func NewRoleAuthorizer(roles ...string) RoleAuthorizer {
	set := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		r = strings.ToLower(strings.TrimSpace(r))
		if r != "" {
			set[r] = struct{}{}
		}
	}
	return RoleAuthorizer{roles: set}
}

func (a RoleAuthorizer) HasUnrestrictedScheduling(identity *Identity) bool {
	if identity == nil {
		return false
	}
	_, ok := a.roles[strings.ToLower(identity.Role)]
	return ok
}

// Window is the inclusive [Earliest, Latest] range in which a booking may
// start.
type Window struct {
	Earliest time.Time
	Latest   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Earliest) && !t.After(w.Latest)
}

func (w Window) location() *time.Location {
	if loc := w.Earliest.Location(); loc != nil {
		return loc
	}
	return time.Local
}

type Policy struct {
	MinNotice       time.Duration
	MaxRange        time.Duration
	PrivilegedRange time.Duration
	Authorizer      Authorizer
}

func DefaultPolicy(auth Authorizer) Policy {
	return Policy{
		MinNotice:       DefaultMinNotice,
		MaxRange:        DefaultMaxRange,
		PrivilegedRange: DefaultPrivilegedRange,
		Authorizer:      auth,
	}
}

// ComputeWindow derives the admission window for requester at now. A nil
// requester gets the standard window.
func (p Policy) ComputeWindow(now time.Time, requester *Identity) Window {
	if p.Authorizer != nil && p.Authorizer.HasUnrestrictedScheduling(requester) {
		return Window{Earliest: now, Latest: now.Add(p.PrivilegedRange)}
	}
	return Window{
		Earliest: now.Add(p.MinNotice),
		Latest:   now.Add(p.MaxRange),
	}
}

// IsWithinWindow parses date and hm in the window's location. A pair that
// does not parse is outside every window.
func IsWithinWindow(date, hm string, w Window) bool {
	at, err := time.ParseInLocation(dateTimeLayout, date+" "+hm, w.location())
	if err != nil {
		return false
	}
	return w.Contains(at)
}
