package auth

import (
	"time"

	"futureclim/models"
	"futureclim/utils"
)

// CredentialVerifier checks a credential pair and returns the matching
// user. Implementations return ErrInvalidCredentials on mismatch so the
// caller cannot distinguish a wrong password from an unknown account.
type CredentialVerifier interface {
	Verify(email, password string) (*models.User, error)
}

// SessionStore persists sessions keyed by token hash. Get returns
// (nil, nil) for a missing session.
type SessionStore interface {
	Save(tokenHash string, session utils.Session) error
	Get(tokenHash string) (*utils.Session, error)
	Delete(tokenHash string) error
}

// AuthResponse is returned on a successful login.
type AuthResponse struct {
	User      models.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expiresAt"` // epoch milliseconds
}

// AuthService gates access to the rest of the system.
type AuthService interface {
	Login(email, password string) (*AuthResponse, error)
	// RestoreSession returns the user behind a token hash. Expired
	// sessions are cleared on read (lazy expiry) and yield ErrNoSession.
	RestoreSession(tokenHash string) (*models.User, error)
	Logout(tokenHash string) error
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Verifier   CredentialVerifier
	Sessions   SessionStore
	SessionTTL time.Duration
}
