package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/billing"
	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
	"github.com/seeyaaaaa/daily-dairy/pkg/domain/service"
)

// --- session ---

func (h *Handler) requestOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.sessions.RequestOTP(r.Context(), req.Phone); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
		Role  string `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.sessions.VerifyOTP(r.Context(), req.Phone, req.Code, model.UserRole(req.Role))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	if err := h.sessions.Logout(); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getSession(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":      h.store.CurrentUser(),
		"onboarded": h.store.Onboarded(),
		"language":  h.store.Language(),
	})
}

func (h *Handler) setLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.sessions.SetLanguage(model.Language(req.Language)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- profile ---

func (h *Handler) setName(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.profile.SetName(req.Name); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.store.CurrentUser())
}

func (h *Handler) addAddress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Flat         string `json:"flat"`
		Building     string `json:"building"`
		Area         string `json:"area"`
		Landmark     string `json:"landmark"`
		Pincode      string `json:"pincode"`
		City         string `json:"city"`
		DeliverySlot string `json:"deliverySlot"`
		CustomTime   string `json:"customTime"`
		IsDefault    bool   `json:"isDefault"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	address, err := h.profile.AddAddress(service.AddressInput{
		Flat:         req.Flat,
		Building:     req.Building,
		Area:         req.Area,
		Landmark:     req.Landmark,
		Pincode:      req.Pincode,
		City:         req.City,
		DeliverySlot: model.DeliverySlot(req.DeliverySlot),
		CustomTime:   req.CustomTime,
		IsDefault:    req.IsDefault,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, address)
}

func (h *Handler) listAddresses(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Addresses())
}

// --- catalog ---

func (h *Handler) listBrands(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Brands())
}

func (h *Handler) listProducts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Products())
}

// --- subscriptions ---

type subscriptionBody struct {
	CustomerID    string `json:"customerId"`
	AddressID     string `json:"addressId"`
	MilkProductID string `json:"milkProductId"`
	QuantityML    int64  `json:"quantityMl"`
	DaysOfWeek    []int  `json:"daysOfWeek"`
	StartDate     string `json:"startDate"`
	PaymentMethod string `json:"paymentMethod"`
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscriptionBody
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sub, err := h.subscriptions.Subscribe(service.SubscribeInput{
		CustomerID:    req.CustomerID,
		AddressID:     req.AddressID,
		MilkProductID: req.MilkProductID,
		QuantityML:    req.QuantityML,
		DaysOfWeek:    toWeekdays(req.DaysOfWeek),
		StartDate:     model.Date(req.StartDate),
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (h *Handler) changePlan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["ID"]

	var req struct {
		AddressID     *string `json:"addressId"`
		MilkProductID *string `json:"milkProductId"`
		QuantityML    *int64  `json:"quantityMl"`
		DaysOfWeek    []int   `json:"daysOfWeek"`
		EndDate       *string `json:"endDate"`
		IsActive      *bool   `json:"isActive"`
		PaymentMethod *string `json:"paymentMethod"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	patch := model.SubscriptionPatch{
		AddressID:             req.AddressID,
		MilkProductID:         req.MilkProductID,
		QuantityPerDeliveryML: req.QuantityML,
		IsActive:              req.IsActive,
	}
	if req.DaysOfWeek != nil {
		patch.DaysOfWeek = toWeekdays(req.DaysOfWeek)
	}
	if req.EndDate != nil {
		end := model.Date(*req.EndDate)
		patch.EndDate = &end
	}
	if req.PaymentMethod != nil {
		pay := model.PaymentMethod(*req.PaymentMethod)
		patch.PaymentMethod = &pay
	}

	if err := h.subscriptions.ChangePlan(id, patch); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) primarySubscription(w http.ResponseWriter, r *http.Request) {
	sub, err := h.subscriptions.Primary(r.URL.Query().Get("customerId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *Handler) overrideDay(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["ID"]

	var req struct {
		Date       string `json:"date"`
		Paused     bool   `json:"paused"`
		QuantityML int64  `json:"quantityMl"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	date := model.Date(req.Date)
	if req.Date == "" {
		date = model.Today()
	}

	var err error
	if req.Paused {
		err = h.subscriptions.PauseDay(id, date)
	} else {
		err = h.subscriptions.OverrideDayQuantity(id, date, req.QuantityML)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	override, _ := h.store.OverrideFor(id, date)
	writeJSON(w, http.StatusOK, override)
}

// --- billing ---

func (h *Handler) monthlyEstimate(w http.ResponseWriter, r *http.Request) {
	sub, err := h.subscriptions.Primary(r.URL.Query().Get("customerId"))
	if err != nil {
		writeError(w, err)
		return
	}
	product, err := h.store.FindProduct(sub.MilkProductID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"weeklyDeliveryDays":    billing.WeeklyDeliveryDays(sub),
		"monthlyLitersMl":       billing.MonthlyLitersEstimateML(sub),
		"monthlyCostPaise":      billing.MonthlyCostEstimatePaise(sub, product),
		"quantityPerDeliveryMl": sub.QuantityPerDeliveryML,
		"pricePerLiterPaise":    product.PricePerLiterPaise,
	})
}

func (h *Handler) todayBilling(w http.ResponseWriter, r *http.Request) {
	sub, err := h.subscriptions.Primary(r.URL.Query().Get("customerId"))
	if err != nil {
		writeError(w, err)
		return
	}
	product, err := h.store.FindProduct(sub.MilkProductID)
	if err != nil {
		writeError(w, err)
		return
	}

	today := model.Today()
	overrides := h.store.Overrides()
	quantity := billing.EffectiveQuantityML(sub, today, overrides)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":       today,
		"quantityMl": quantity,
		"costPaise":  billing.CostPaise(quantity, product.PricePerLiterPaise),
		"paused":     quantity == 0,
	})
}

// --- deliveries ---

func (h *Handler) listDeliveries(w http.ResponseWriter, r *http.Request) {
	date := model.Date(r.URL.Query().Get("date"))
	all := h.store.Deliveries()
	if date == "" {
		writeJSON(w, http.StatusOK, all)
		return
	}

	filtered := make([]model.Delivery, 0, len(all))
	for _, d := range all {
		if d.Date == date {
			filtered = append(filtered, d)
		}
	}
	writeJSON(w, http.StatusOK, filtered)
}

func (h *Handler) planDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	date := model.Date(req.Date)
	if req.Date == "" {
		date = model.Today()
	}

	sheet, err := h.deliveries.PlanDay(date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sheet)
}

func (h *Handler) updateDelivery(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["ID"]

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var err error
	switch model.DeliveryStatus(req.Status) {
	case model.DeliveryOutForDelivery:
		err = h.deliveries.MarkOutForDelivery(id)
	case model.DeliveryDelivered:
		err = h.deliveries.MarkDelivered(id)
	case model.DeliveryMissed:
		err = h.deliveries.MarkMissed(id)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown delivery status"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toWeekdays(days []int) []time.Weekday {
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, time.Weekday(d%7))
	}
	return out
}
