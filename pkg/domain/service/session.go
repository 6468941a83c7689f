package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
)

var (
	ErrPhoneTooShort = errors.New("phone number must have at least 10 digits")
	ErrCodeInvalid   = errors.New("verification code must have at least 4 digits")
	ErrUnknownRole   = errors.New("role must be consumer or owner")
)

const (
	minPhoneDigits = 10
	minCodeDigits  = 4
)

type SessionService interface {
	// RequestOTP validates the phone and asks the auth provider to send a
	// one-time code to it.
	RequestOTP(ctx context.Context, phone string) error
	// VerifyOTP checks the code and, on success, starts a session for the
	// given role. Owners sign in as the dairy; consumers start unnamed and
	// flagged as new until profile setup completes.
	VerifyOTP(ctx context.Context, phone, code string, role model.UserRole) (*model.User, error)
	SetLanguage(lang model.Language) error
	// Logout clears both the current user and the onboarded flag, so the
	// two can never drift apart across a sign-out.
	Logout() error
}

func NewSessionService(sessions model.SessionRepository, auth model.AuthProvider, dairyName string, dispatcher EventDispatcher) SessionService {
	return &sessionService{
		sessions:   sessions,
		auth:       auth,
		dairyName:  dairyName,
		dispatcher: dispatcher,
	}
}

type sessionService struct {
	sessions   model.SessionRepository
	auth       model.AuthProvider
	dairyName  string
	dispatcher EventDispatcher
}

func (s *sessionService) RequestOTP(ctx context.Context, phone string) error {
	if countDigits(phone) < minPhoneDigits {
		return ErrPhoneTooShort
	}
	return s.auth.SendCode(ctx, phone)
}

func (s *sessionService) VerifyOTP(ctx context.Context, phone, code string, role model.UserRole) (*model.User, error) {
	if role != model.RoleConsumer && role != model.RoleOwner {
		return nil, ErrUnknownRole
	}
	if countDigits(phone) < minPhoneDigits {
		return nil, ErrPhoneTooShort
	}
	if countDigits(code) < minCodeDigits {
		return nil, ErrCodeInvalid
	}

	ok, err := s.auth.VerifyCode(ctx, phone, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCodeInvalid
	}

	userID, err := s.sessions.NextID()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:    userID,
		Phone: phone,
		Role:  role,
	}
	switch role {
	case model.RoleOwner:
		user.Name = s.dairyName
		user.DairyName = s.dairyName
		s.sessions.SetOnboarded(true)
	case model.RoleConsumer:
		user.IsNewUser = true
	}

	s.sessions.SetCurrentUser(user)

	_ = s.dispatcher.Dispatch(model.SessionStarted{UserID: userID, Phone: phone, Role: role})
	return user, nil
}

func (s *sessionService) SetLanguage(lang model.Language) error {
	if !lang.Valid() {
		return model.ErrUnknownLanguage
	}
	s.sessions.SetLanguage(lang)
	return nil
}

func (s *sessionService) Logout() error {
	user := s.sessions.CurrentUser()
	if user == nil {
		return model.ErrNotAuthenticated
	}

	s.sessions.SetCurrentUser(nil)
	s.sessions.SetOnboarded(false)

	_ = s.dispatcher.Dispatch(model.SessionEnded{UserID: user.ID})
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
