package valueobjects

import "fmt"

// Scope is the physical responsibility boundary of a complaint.
type Scope string

const (
	ScopeCommon    Scope = "COMMON"
	ScopePrivate   Scope = "PRIVATE"
	ScopeEmergency Scope = "EMERGENCY"
)

var validScopes = map[Scope]bool{
	ScopeCommon:    true,
	ScopePrivate:   true,
	ScopeEmergency: true,
}

// AllScopes returns every scope in declaration order.
func AllScopes() []Scope {
	return []Scope{ScopeCommon, ScopePrivate, ScopeEmergency}
}

func (s Scope) String() string {
	return string(s)
}

func (s Scope) IsValid() bool {
	return validScopes[s]
}

func (s Scope) IsPrivate() bool {
	return s == ScopePrivate
}

func (s Scope) IsEmergency() bool {
	return s == ScopeEmergency
}

// AllowsOnSiteWork reports whether work orders may be created for the scope.
func (s Scope) AllowsOnSiteWork() bool {
	return s.IsValid() && !s.IsPrivate()
}

func NewScope(s string) (Scope, error) {
	sc := Scope(s)
	if !sc.IsValid() {
		return "", fmt.Errorf("invalid scope: %s", s)
	}
	return sc, nil
}
