// Package provider holds the swappable capability implementations: the mock
// OTP sender, the log-backed notifier, and the simulated milkman location.
// Real gateways can replace any of them without touching the domain.
package provider

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
)

var ErrResendTooSoon = errors.New("wait before requesting another code")

// MockAuth simulates SMS OTP delivery. Codes are logged instead of sent, an
// artificial delay stands in for gateway latency, and any code of the right
// shape verifies once a code was requested for the phone.
type MockAuth struct {
	delay    time.Duration
	cooldown time.Duration

	mu       sync.Mutex
	lastSent map[string]time.Time
}

var _ model.AuthProvider = (*MockAuth)(nil)

func NewMockAuth(delay, cooldown time.Duration) *MockAuth {
	return &MockAuth{
		delay:    delay,
		cooldown: cooldown,
		lastSent: make(map[string]time.Time),
	}
}

func (m *MockAuth) SendCode(ctx context.Context, phone string) error {
	m.mu.Lock()
	if last, ok := m.lastSent[phone]; ok && time.Since(last) < m.cooldown {
		m.mu.Unlock()
		return ErrResendTooSoon
	}
	m.lastSent[phone] = time.Now()
	m.mu.Unlock()

	if err := m.wait(ctx); err != nil {
		return err
	}

	code, err := randomCode()
	if err != nil {
		return errors.Wrap(err, "generate otp")
	}

	log.WithFields(log.Fields{"phone": phone, "code": code}).Info("mock OTP sent")
	return nil
}

func (m *MockAuth) VerifyCode(ctx context.Context, phone, code string) (bool, error) {
	if err := m.wait(ctx); err != nil {
		return false, err
	}

	m.mu.Lock()
	_, requested := m.lastSent[phone]
	m.mu.Unlock()

	// The mock accepts any well-formed code, matching the demo sign-in
	// flow; it only insists a code was actually requested first.
	return requested && len(code) >= 4, nil
}

func (m *MockAuth) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.delay):
		return nil
	}
}

func randomCode() (string, error) {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	n := (int(b[0])<<8 | int(b[1])) % 10000
	return fmt.Sprintf("%04d", n), nil
}
