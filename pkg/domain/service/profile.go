package service

import (
	"errors"
	"strings"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
)

var (
	ErrNameRequired      = errors.New("name is required")
	ErrAddressIncomplete = errors.New("flat, building and area are required")
)

// AddressInput is the form a consumer fills during profile setup. The store
// accepts any well-typed address; required-field checks happen here.
type AddressInput struct {
	Flat         string
	Building     string
	Area         string
	Landmark     string
	Pincode      string
	City         string
	DeliverySlot model.DeliverySlot
	CustomTime   string
	IsDefault    bool
}

type ProfileService interface {
	SetName(name string) error
	// AddAddress stores a delivery address for the signed-in consumer and
	// marks onboarding complete.
	AddAddress(input AddressInput) (*model.Address, error)
}

func NewProfileService(sessions model.SessionRepository, addresses model.AddressRepository, dispatcher EventDispatcher) ProfileService {
	return &profileService{
		sessions:   sessions,
		addresses:  addresses,
		dispatcher: dispatcher,
	}
}

type profileService struct {
	sessions   model.SessionRepository
	addresses  model.AddressRepository
	dispatcher EventDispatcher
}

func (s *profileService) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}

	user := s.sessions.CurrentUser()
	if user == nil {
		return model.ErrNotAuthenticated
	}

	user.Name = name
	user.IsNewUser = false
	s.sessions.SetCurrentUser(user)
	return nil
}

func (s *profileService) AddAddress(input AddressInput) (*model.Address, error) {
	if s.sessions.CurrentUser() == nil {
		return nil, model.ErrNotAuthenticated
	}
	if strings.TrimSpace(input.Flat) == "" ||
		strings.TrimSpace(input.Building) == "" ||
		strings.TrimSpace(input.Area) == "" {
		return nil, ErrAddressIncomplete
	}

	id, err := s.addresses.NextID()
	if err != nil {
		return nil, err
	}

	slot := input.DeliverySlot
	if slot == "" {
		slot = model.SlotMorning
	}

	address := model.Address{
		ID:           id,
		Flat:         input.Flat,
		Building:     input.Building,
		Area:         input.Area,
		Landmark:     input.Landmark,
		Pincode:      input.Pincode,
		City:         input.City,
		DeliverySlot: slot,
		CustomTime:   input.CustomTime,
		IsDefault:    input.IsDefault,
	}

	s.addresses.AddAddress(address)
	s.sessions.SetOnboarded(true)

	_ = s.dispatcher.Dispatch(model.AddressAdded{AddressID: id, City: input.City})
	return &address, nil
}
