package auth

import (
	"fmt"
	"time"

	"futureclim/models"
	"futureclim/utils"

	"go.uber.org/zap"
)

// Login verifies the credential pair and, on success, issues a signed
// token and persists the session under the token hash.
func (s *DefaultAuthService) Login(email, password string) (*AuthResponse, error) {
	user, err := s.Verifier.Verify(email, password)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.SessionTTL)
	if err != nil {
		utils.GetLogger().Error("Login: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	now := time.Now()
	session := utils.Session{
		User:      *user,
		ExpiresAt: now.Add(s.SessionTTL).UnixMilli(),
		CreatedAt: now,
	}
	if err := s.Sessions.Save(utils.HashToken(token), session); err != nil {
		utils.GetLogger().Error("Login: failed to save session", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		User:      *user,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// RestoreSession resolves a token hash to its user. Expiry is enforced at
// read time: a stale record is deleted and reported as no session.
func (s *DefaultAuthService) RestoreSession(tokenHash string) (*models.User, error) {
	session, err := s.Sessions.Get(tokenHash)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoSession
	}
	if session.Expired(time.Now()) {
		if err := s.Sessions.Delete(tokenHash); err != nil {
			utils.GetLogger().Warn("RestoreSession: failed to clear expired session", zap.Error(err))
		}
		return nil, ErrNoSession
	}
	return &session.User, nil
}

// Logout clears the persisted session.
func (s *DefaultAuthService) Logout(tokenHash string) error {
	return s.Sessions.Delete(tokenHash)
}
