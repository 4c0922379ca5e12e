// Package auth implements the login gate. There are no passwords or tokens:
// a staff member logs in by presenting their id or their name, and protected
// routes only require the staff id header to be present.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/ims/ims/internal/domain/staff"
)

var (
	ErrMissingCredential = errors.New("id or name is required")
	ErrInvalidCredential = errors.New("invalid credentials")
)

// StaffDirectory is the slice of the staff service the gate needs.
type StaffDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*staff.Staff, error)
	GetByName(ctx context.Context, name string) (*staff.Staff, error)
}

// Identity is what a successful login returns.
type Identity struct {
	ID   uuid.UUID  `json:"id"`
	Name string     `json:"name"`
	Role staff.Role `json:"role"`
}

type Service struct {
	directory StaffDirectory
}

func NewService(directory StaffDirectory) *Service {
	return &Service{directory: directory}
}

// Login resolves a credential to a staff identity. The effective credential
// is id when given, else name. A credential containing a hyphen is always
// resolved as an id lookup, never a name lookup — a staff member whose name
// contains a hyphen cannot log in by name. Exactly one lookup path runs; no
// fallback.
func (s *Service) Login(ctx context.Context, id, name string) (*Identity, error) {
	credential := id
	if credential == "" {
		credential = name
	}
	if credential == "" {
		return nil, ErrMissingCredential
	}

	var (
		st  *staff.Staff
		err error
	)
	if strings.Contains(credential, "-") {
		staffID, parseErr := uuid.Parse(credential)
		if parseErr != nil {
			return nil, ErrInvalidCredential
		}
		st, err = s.directory.Get(ctx, staffID)
	} else {
		st, err = s.directory.GetByName(ctx, credential)
	}
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	return &Identity{ID: st.ID, Name: st.Name, Role: st.Role}, nil
}
