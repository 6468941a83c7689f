package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
	"github.com/seeyaaaaa/daily-dairy/pkg/domain/service"
	"github.com/seeyaaaaa/daily-dairy/pkg/infrastructure/provider"
)

// Store is the full read surface the handlers need; the in-memory store
// satisfies it.
type Store interface {
	model.SessionRepository
	model.AddressRepository
	model.CatalogRepository
	model.SubscriptionRepository
	model.OverrideRepository
	model.DeliveryRepository
	model.CustomerRepository
}

type Handler struct {
	store         Store
	sessions      service.SessionService
	profile       service.ProfileService
	subscriptions service.SubscriptionService
	deliveries    service.DeliveryService
	roster        service.RosterService
	walker        *provider.Walker
}

func Router(store Store, sessions service.SessionService, profile service.ProfileService, subscriptions service.SubscriptionService, deliveries service.DeliveryService, roster service.RosterService, walker *provider.Walker) http.Handler {
	if store == nil {
		panic("transport: store must not be nil")
	}

	h := &Handler{
		store:         store,
		sessions:      sessions,
		profile:       profile,
		subscriptions: subscriptions,
		deliveries:    deliveries,
		roster:        roster,
		walker:        walker,
	}

	r := mux.NewRouter()
	s := r.PathPrefix("/api/v1").Subrouter()

	s.HandleFunc("/auth/otp/request", h.requestOTP).Methods(http.MethodPost)
	s.HandleFunc("/auth/otp/verify", h.verifyOTP).Methods(http.MethodPost)
	s.HandleFunc("/auth/logout", h.logout).Methods(http.MethodPost)
	s.HandleFunc("/session", h.getSession).Methods(http.MethodGet)
	s.HandleFunc("/session/language", h.setLanguage).Methods(http.MethodPut)

	s.HandleFunc("/profile/name", h.setName).Methods(http.MethodPut)
	s.HandleFunc("/addresses", h.addAddress).Methods(http.MethodPost)
	s.HandleFunc("/addresses", h.listAddresses).Methods(http.MethodGet)

	s.HandleFunc("/brands", h.listBrands).Methods(http.MethodGet)
	s.HandleFunc("/products", h.listProducts).Methods(http.MethodGet)

	s.HandleFunc("/subscriptions", h.subscribe).Methods(http.MethodPost)
	s.HandleFunc("/subscriptions/primary", h.primarySubscription).Methods(http.MethodGet)
	s.HandleFunc("/subscriptions/{ID}", h.changePlan).Methods(http.MethodPatch)
	s.HandleFunc("/subscriptions/{ID}/override", h.overrideDay).Methods(http.MethodPost)

	s.HandleFunc("/billing/estimate", h.monthlyEstimate).Methods(http.MethodGet)
	s.HandleFunc("/billing/today", h.todayBilling).Methods(http.MethodGet)

	s.HandleFunc("/deliveries", h.listDeliveries).Methods(http.MethodGet)
	s.HandleFunc("/deliveries/plan", h.planDay).Methods(http.MethodPost)
	s.HandleFunc("/deliveries/{ID}", h.updateDelivery).Methods(http.MethodPatch)

	s.HandleFunc("/owner/customers", h.listCustomers).Methods(http.MethodGet)
	s.HandleFunc("/owner/customers", h.addCustomer).Methods(http.MethodPost)
	s.HandleFunc("/owner/customers/{ID}", h.removeCustomer).Methods(http.MethodDelete)
	s.HandleFunc("/owner/customers/{ID}/pause", h.pauseCustomer).Methods(http.MethodPost)
	s.HandleFunc("/owner/customers/{ID}/resume", h.resumeCustomer).Methods(http.MethodPost)
	s.HandleFunc("/owner/bills", h.ownerBills).Methods(http.MethodGet)
	s.HandleFunc("/owner/stats", h.ownerStats).Methods(http.MethodGet)
	s.HandleFunc("/owner/inventory", h.ownerInventory).Methods(http.MethodGet)
	s.HandleFunc("/owner/location", h.ownerLocation).Methods(http.MethodGet)

	return logMiddleware(r)
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(err, "decode request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("write response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrSubscriptionNotFound),
		errors.Is(err, model.ErrDeliveryNotFound),
		errors.Is(err, model.ErrCustomerNotFound),
		errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrNoActiveSubscription):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, provider.ErrResendTooSoon):
		status = http.StatusTooManyRequests
	case errors.Is(err, service.ErrDeliveryFinalized):
		status = http.StatusConflict
	case errors.Is(err, service.ErrPhoneTooShort),
		errors.Is(err, service.ErrCodeInvalid),
		errors.Is(err, service.ErrUnknownRole),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrAddressIncomplete),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrNoDeliveryDays),
		errors.Is(err, service.ErrCustomerFieldsMissing),
		errors.Is(err, model.ErrBadDate),
		errors.Is(err, model.ErrUnknownLanguage):
		status = http.StatusBadRequest
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
