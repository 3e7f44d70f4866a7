package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"docqa/internal/adapter/auth"
	"docqa/internal/domain"
	"docqa/internal/port"
)

// AccountUseCase handles registration, login and profile lookups.
type AccountUseCase struct {
	users  port.UserStore
	tokens *auth.TokenService
}

func NewAccountUseCase(users port.UserStore, tokens *auth.TokenService) *AccountUseCase {
	return &AccountUseCase{users: users, tokens: tokens}
}

// Register creates the user with a bcrypt-hashed password and returns the
// user plus a signed bearer token.
func (u *AccountUseCase) Register(username, email, password string) (domain.User, string, error) {
	if err := ValidateRegistration(username, email, password); err != nil {
		return domain.User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := u.users.CreateUser(user, hash); err != nil {
		return domain.User{}, "", err
	}

	token, err := u.tokens.Issue(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (u *AccountUseCase) Login(email, password string) (domain.User, string, error) {
	if err := ValidateLogin(email, password); err != nil {
		return domain.User{}, "", err
	}

	user, hash, err := u.users.GetUserByEmail(email)
	if err != nil {
		return domain.User{}, "", err
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return domain.User{}, "", domain.ErrInvalidPassword
	}

	token, err := u.tokens.Issue(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (u *AccountUseCase) Profile(id string) (domain.User, error) {
	return u.users.GetUserByID(id)
}
