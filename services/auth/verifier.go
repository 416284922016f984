package auth

import (
	userRepo "futureclim/database/repository/user"
	"futureclim/models"
	"futureclim/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// MongoCredentialVerifier checks credentials against the users collection.
type MongoCredentialVerifier struct {
	Repo userRepo.UserRepository
}

func (v *MongoCredentialVerifier) Verify(email, password string) (*models.User, error) {
	user, err := v.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Verify: failed to fetch user", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
