package model

import (
	"context"
	"errors"
)

var (
	ErrNotAuthenticated = errors.New("no user is signed in")
	ErrUnknownLanguage  = errors.New("unknown language code")
)

type UserRole string

const (
	RoleNone     UserRole = ""
	RoleConsumer UserRole = "consumer"
	RoleOwner    UserRole = "owner"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageMarathi Language = "mr"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageHindi, LanguageMarathi:
		return true
	}
	return false
}

type User struct {
	ID        string   `json:"id"`
	Phone     string   `json:"phone"`
	Name      string   `json:"name"`
	Role      UserRole `json:"role"`
	IsNewUser bool     `json:"isNewUser,omitempty"`
	DairyName string   `json:"dairyName,omitempty"`
	DairyArea string   `json:"dairyArea,omitempty"`
}

// SessionRepository holds the single current session: at most one signed-in
// user, the display language, and the onboarding flag. The user and the
// onboarding flag are stored independently; keeping them consistent on
// logout is the caller's job.
type SessionRepository interface {
	NextID() (string, error)
	SetCurrentUser(user *User)
	CurrentUser() *User
	SetLanguage(lang Language)
	Language() Language
	SetOnboarded(onboarded bool)
	Onboarded() bool
}

// AuthProvider sends and checks one-time codes for phone sign-in. The mock
// implementation simulates delivery; a real SMS gateway can be substituted
// without touching the domain services.
type AuthProvider interface {
	SendCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) (bool, error)
}

// NotificationSender delivers a user-facing message over whatever channel
// the implementation backs (log, push, SMS).
type NotificationSender interface {
	Send(userID, title, body string) error
}
