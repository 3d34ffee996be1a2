// Package session resolves who is using the desk. There is no login flow;
// the identity comes from a Provider chosen at startup.
package session

import (
	"context"
	"errors"
	"strings"

	"case_desk_app_go/config"
)

// ErrNoIdentity is returned when a provider cannot resolve a user
var ErrNoIdentity = errors.New("no session identity")

// Identity is the user operating the desk
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// Initials returns up to two upper-case initials for the avatar
func (i Identity) Initials() string {
	var out []rune
	for _, part := range strings.Fields(i.Name) {
		out = append(out, []rune(strings.ToUpper(part))[0])
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// Provider resolves the identity of the current request
type Provider interface {
	Current(ctx context.Context) (Identity, error)
}

// StaticProvider always returns the same identity
type StaticProvider struct {
	identity Identity
}

// NewStaticProvider creates a provider returning identity
func NewStaticProvider(identity Identity) *StaticProvider {
	return &StaticProvider{identity: identity}
}

// FromConfig builds the static provider from the SESSION_USER_* settings
func FromConfig(cfg *config.Config) *StaticProvider {
	return NewStaticProvider(Identity{
		ID:    cfg.SessionUserID,
		Name:  cfg.SessionUserName,
		Email: cfg.SessionUserEmail,
		Role:  cfg.SessionUserRole,
	})
}

func (p *StaticProvider) Current(ctx context.Context) (Identity, error) {
	if p.identity.ID == "" {
		return Identity{}, ErrNoIdentity
	}
	return p.identity, nil
}
