package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/billing"
	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
	"github.com/seeyaaaaa/daily-dairy/pkg/infrastructure/provider"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.roster.Search(r.URL.Query().Get("q")))
}

func (h *Handler) addCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	customer, err := h.roster.AddCustomer(req.Name, req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *Handler) removeCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.roster.RemoveCustomer(mux.Vars(r)["ID"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pauseCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.roster.PauseCustomer(mux.Vars(r)["ID"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resumeCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.roster.ResumeCustomer(mux.Vars(r)["ID"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type billRow struct {
	CustomerID   string `json:"customerId"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	MilkName     string `json:"milkName"`
	DeliveryDays int    `json:"deliveryDays"`
	AmountPaise  int64  `json:"amountPaise"`
}

func (h *Handler) ownerBills(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonth(r)
	if err != nil {
		writeError(w, err)
		return
	}

	products := h.store.Products()
	prices := make(map[string]model.MilkProduct, len(products))
	for _, p := range products {
		prices[p.ID] = p
	}

	var rows []billRow
	var totalPaise int64
	for _, customer := range h.store.Customers() {
		row := billRow{CustomerID: customer.ID, Name: customer.Name, Phone: customer.Phone}
		if sub := customer.Subscription; sub != nil {
			if product, ok := prices[sub.MilkProductID]; ok {
				row.MilkName = product.Name
				row.DeliveryDays = billing.DeliveryDaysInMonth(*sub, year, month)
				row.AmountPaise = billing.MonthlyBillPaise(*sub, product, year, month)
			}
		}
		totalPaise += row.AmountPaise
		rows = append(rows, row)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"year":       year,
		"month":      int(month),
		"bills":      rows,
		"totalPaise": totalPaise,
	})
}

func (h *Handler) ownerStats(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonth(r)
	if err != nil {
		writeError(w, err)
		return
	}

	stats := billing.ComputeMonthlyStats(h.store.Customers(), h.store.Products(), year, month)
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) ownerInventory(w http.ResponseWriter, r *http.Request) {
	day := time.Now().Weekday()
	if raw := r.URL.Query().Get("weekday"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 6 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weekday must be 0 (Sunday) through 6"})
			return
		}
		day = time.Weekday(n)
	}

	// The roster's embedded plans are the owner's view of demand.
	var subs []model.Subscription
	for _, c := range h.store.Customers() {
		if c.Subscription != nil {
			subs = append(subs, *c.Subscription)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"weekday":              int(day),
		"neededMlByProduct":    billing.InventoryForWeekday(subs, day),
		"dailyCollectionPaise": billing.DailyCollectionPaise(h.store.Customers(), h.store.Products()),
	})
}

func (h *Handler) ownerLocation(w http.ResponseWriter, r *http.Request) {
	position := h.walker.Current()
	resp := map[string]interface{}{"position": position}

	q := r.URL.Query()
	if q.Has("lat") && q.Has("lng") {
		lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
		lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
		if errLat != nil || errLng != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng must be numbers"})
			return
		}
		dest := provider.LatLng{Lat: lat, Lng: lng}
		resp["distanceMeters"] = provider.DistanceMeters(position, dest)
		resp["etaSeconds"] = int(h.walker.ETA(dest).Seconds())
	}

	writeJSON(w, http.StatusOK, resp)
}

func yearMonth(r *http.Request) (int, time.Month, error) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	q := r.URL.Query()
	if raw := q.Get("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, model.ErrBadDate
		}
		year = n
	}
	if raw := q.Get("month"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 12 {
			return 0, 0, model.ErrBadDate
		}
		month = time.Month(n)
	}
	return year, month, nil
}
