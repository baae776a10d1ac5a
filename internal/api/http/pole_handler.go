package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/service"
)

// PoleHandler serves the listing CRUD and request endpoints.
type PoleHandler struct {
	poles    service.PoleService
	requests service.RequestService
}

func NewPoleHandler(poles service.PoleService, requests service.RequestService) *PoleHandler {
	return &PoleHandler{
		poles:    poles,
		requests: requests,
	}
}

// parseFilters maps query parameters onto SearchFilters. Unknown parameters
// are ignored; malformed numbers are a validation error.
func parseFilters(r *http.Request) (domain.SearchFilters, error) {
	var filters domain.SearchFilters
	q := r.URL.Query()

	intParam := func(name string) (*int32, error) {
		raw := q.Get(name)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, domain.Validationf("%s must be a number", name)
		}
		v32 := int32(v)
		return &v32, nil
	}

	var err error
	if filters.LengthMin, err = intParam("length_min"); err != nil {
		return filters, err
	}
	if filters.LengthMax, err = intParam("length_max"); err != nil {
		return filters, err
	}
	if filters.WeightMin, err = intParam("weight_min"); err != nil {
		return filters, err
	}
	if filters.WeightMax, err = intParam("weight_max"); err != nil {
		return filters, err
	}
	if filters.ConditionMin, err = intParam("condition_min"); err != nil {
		return filters, err
	}
	if filters.RadiusKM, err = intParam("radius_km"); err != nil {
		return filters, err
	}
	filters.Municipality = q.Get("municipality")
	filters.Brand = q.Get("brand")

	if raw := q.Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filters.Statuses = append(filters.Statuses, domain.PoleStatus(s))
			}
		}
	}
	return filters, nil
}

func parseSort(r *http.Request) domain.SortOrder {
	if r.URL.Query().Get("sort") == "newest" {
		return domain.SortByNewest
	}
	return domain.SortByLength
}

func poleID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Validationf("invalid pole id")
	}
	return id, nil
}

func (h *PoleHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	poles, err := h.poles.Search(r.Context(), filters, parseSort(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"poles": poles})
}

func (h *PoleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := poleID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pole, err := h.poles.Get(r.Context(), id, IdentityFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pole)
}

func (h *PoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	var pole domain.Pole
	if err := decodeJSON(r, &pole); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.poles.Create(r.Context(), identity.UserID, &pole); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, pole)
}

type bulkCreateRequest struct {
	Poles []domain.Pole `json:"poles"`
}

// CreateBulk inserts a batch of listings. The response reports per-index
// outcomes; a bad row never aborts the rest.
func (h *PoleHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	var req bulkCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if len(req.Poles) == 0 {
		writeError(w, r, domain.Validationf("poles must not be empty"))
		return
	}

	result := h.poles.CreateBulk(r.Context(), identity.UserID, req.Poles)
	writeJSON(w, http.StatusOK, result)
}

func (h *PoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	id, err := poleID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var pole domain.Pole
	if err := decodeJSON(r, &pole); err != nil {
		writeError(w, r, err)
		return
	}
	pole.ID = id

	updated, err := h.poles.Update(r.Context(), identity.UserID, &pole)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	id, err := poleID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.poles.Delete(r.Context(), identity.UserID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PoleHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	poles, err := h.poles.ListMine(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"poles": poles})
}

type createRequestBody struct {
	RequestType     domain.RequestType `json:"request_type"`
	Message         *string            `json:"message,omitempty"`
	RentalStartDate *string            `json:"rental_start_date,omitempty"`
	RentalEndDate   *string            `json:"rental_end_date,omitempty"`
	AgreedPrice     *int32             `json:"agreed_price,omitempty"`
}

func (h *PoleHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	id, err := poleID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body createRequestBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	req := &domain.PoleRequest{
		PoleID:          id,
		RequestType:     body.RequestType,
		Message:         body.Message,
		RentalStartDate: body.RentalStartDate,
		RentalEndDate:   body.RentalEndDate,
		AgreedPrice:     body.AgreedPrice,
	}
	created, err := h.requests.Create(r.Context(), identity, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListRequests returns requests made against the caller's poles.
func (h *PoleHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	requests, err := h.requests.ListForOwner(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": requests})
}
