package tests

import (
	"context"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
	"github.com/seeyaaaaa/daily-dairy/pkg/domain/service"
)

var _ service.EventDispatcher = &mockEventDispatcher{}

type mockEventDispatcher struct {
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Reset() {
	m.events = nil
}

var _ model.AuthProvider = &instantAuth{}

// instantAuth verifies immediately so session tests run without the mock
// provider's artificial delay.
type instantAuth struct {
	sent   []string
	accept bool
}

func (a *instantAuth) SendCode(_ context.Context, phone string) error {
	a.sent = append(a.sent, phone)
	return nil
}

func (a *instantAuth) VerifyCode(_ context.Context, _, _ string) (bool, error) {
	return a.accept, nil
}
