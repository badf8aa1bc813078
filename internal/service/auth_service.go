package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"iraxas/internal/auth"
	"iraxas/internal/domain"
	"iraxas/internal/mail"
	"iraxas/internal/repository"
)

// AuthService беспарольный вход: одноразовый код на почту, затем обмен кода
// на токен доступа
type AuthService struct {
	users   repository.UserRepository
	codes   repository.VerificationCodeRepository
	mailer  mail.Sender
	tokens  *auth.TokenManager
	codeTTL time.Duration
}

func NewAuthService(users repository.UserRepository, codes repository.VerificationCodeRepository, mailer mail.Sender, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		users:   users,
		codes:   codes,
		mailer:  mailer,
		tokens:  tokens,
		codeTTL: 10 * time.Minute,
	}
}

var ErrInvalidCode = errors.New("invalid or expired code")

// AuthResult результат обмена кода на токен
type AuthResult struct {
	Token     string
	User      *domain.User
	IsNewUser bool
}

// SendVerificationCode генерирует шестизначный код, сохраняет его с TTL и
// отправляет письмом. Повторный запрос перезаписывает прежний код.
func (s *AuthService) SendVerificationCode(ctx context.Context, email, name string) error {
	if email == "" {
		return ErrInvalidInput
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	vc := domain.VerificationCode{
		Email:     email,
		Code:      code,
		Name:      name,
		ExpiresAt: time.Now().UTC().Add(s.codeTTL),
	}
	if err := s.codes.Upsert(ctx, &vc); err != nil {
		return err
	}

	body := fmt.Sprintf(`<h2>Your Verification Code</h2>
<p>Use the following code to verify your email:</p>
<h1 style="color: #2563eb; font-size: 32px; letter-spacing: 5px;">%s</h1>
<p>This code will expire in 10 minutes.</p>`, code)

	return s.mailer.Send(email, "Your Verification Code", body)
}

// VerifyCode проверяет код, находит или создаёт пользователя и выпускает
// токен. Использованный код удаляется.
func (s *AuthService) VerifyCode(ctx context.Context, email, code string) (*AuthResult, error) {
	if email == "" || code == "" {
		return nil, ErrInvalidInput
	}

	vc, err := s.codes.Find(ctx, email, code)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCode
	}
	if err != nil {
		return nil, err
	}
	if time.Now().UTC().After(vc.ExpiresAt) {
		return nil, ErrInvalidCode
	}

	user, err := s.users.GetByEmail(ctx, email)
	isNew := false
	switch {
	case errors.Is(err, repository.ErrNotFound):
		name := vc.Name
		if name == "" {
			name = strings.SplitN(email, "@", 2)[0] // default name
		}
		user = &domain.User{Email: email, Name: name, Role: domain.RoleUser}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		isNew = true
	case err != nil:
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.codes.Delete(ctx, email); err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user, IsNewUser: isNew}, nil
}

// Profile возвращает профиль пользователя
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile меняет имя пользователя
func (s *AuthService) UpdateProfile(ctx context.Context, userID, name string) (*domain.User, error) {
	if userID == "" || name == "" {
		return nil, ErrInvalidInput
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Name = name
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CheckEmail сообщает, зарегистрирован ли email
func (s *AuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, ErrInvalidInput
	}
	_, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// generateCode шестизначный код из криптографического источника
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
