package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/blagoySimandov/novafields/internal/cache"
	"github.com/blagoySimandov/novafields/internal/field"
	"github.com/blagoySimandov/novafields/internal/logging"
	"github.com/blagoySimandov/novafields/internal/models"
	"github.com/blagoySimandov/novafields/internal/resource"
	"github.com/blagoySimandov/novafields/internal/store"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ResourceHandler serves the admin API of the registered resources. Records
// are read from the events store.
type ResourceHandler struct {
	registry *resource.Registry
	store    store.Store
	filters  cache.FilterCache
	pageSize int
}

func NewResourceHandler(registry *resource.Registry, s store.Store, filters cache.FilterCache, pageSize int) *ResourceHandler {
	return &ResourceHandler{
		registry: registry,
		store:    s,
		filters:  filters,
		pageSize: pageSize,
	}
}

type recordResponse struct {
	ID     uuid.UUID     `json:"id"`
	Fields []*field.JSON `json:"fields"`
}

type indexResponse struct {
	Resources []recordResponse `json:"resources"`
	Offset    int              `json:"offset"`
	Limit     int              `json:"limit"`
}

func (h *ResourceHandler) lookup(w http.ResponseWriter, r *http.Request) (*resource.Resource, bool) {
	uriKey := mux.Vars(r)["resource"]
	logging.EnrichResource(r.Context(), uriKey, mux.Vars(r)["id"])

	res, ok := h.registry.Get(uriKey)
	if !ok {
		writeJSONError(w, r, http.StatusNotFound, codeNotFound, fmt.Sprintf("unknown resource %q", uriKey))
		return nil, false
	}
	return res, true
}

// Fields returns the resource's fields. On create and attach requests each
// field carries its default value.
func (h *ResourceHandler) Fields(w http.ResponseWriter, r *http.Request) {
	res, ok := h.lookup(w, r)
	if !ok {
		return
	}

	req := field.NewRequest(r)
	logging.EnrichEditMode(r.Context(), req.EditMode())

	if req.IsCreateOrAttachRequest() {
		writeJSON(w, http.StatusOK, map[string]any{"fields": res.CreationFields(req)})
		return
	}

	fields, err := res.Resolve(nil)
	if err != nil {
		h.internalError(w, r, err, "resolve")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"fields": fields})
}

// SyncField re-renders a dependent field against the submitted form data.
func (h *ResourceHandler) SyncField(w http.ResponseWriter, r *http.Request) {
	res, ok := h.lookup(w, r)
	if !ok {
		return
	}

	attribute := mux.Vars(r)["attribute"]
	f, ok := res.FieldFor(attribute)
	if !ok {
		writeJSONError(w, r, http.StatusNotFound, codeNotFound, fmt.Sprintf("unknown field %q", attribute))
		return
	}

	var formData map[string]any
	if err := json.NewDecoder(r.Body).Decode(&formData); err != nil {
		writeJSONError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	req := field.NewRequest(r)
	if pd, ok := f.(*field.PersianDate); ok {
		writeJSON(w, http.StatusOK, pd.SyncDependsOn(req, formData).ResolveDefaultFor(req).JSON())
		return
	}
	writeJSON(w, http.StatusOK, f.ResolveDefaultFor(req).JSON())
}

// Filters serves the resource's filter metadata, cached under the
// registry's fingerprint of the filter declarations.
func (h *ResourceHandler) Filters(w http.ResponseWriter, r *http.Request) {
	res, ok := h.lookup(w, r)
	if !ok {
		return
	}

	key := h.registry.FiltersKey(res.URIKey)
	if cached, ok := h.filters.Get(r.Context(), key); ok {
		logging.EnrichMetadata(r.Context(), "filters_cached", true)
		w.Header().Set("Content-Type", "application/json")
		w.Write(cached)
		return
	}

	filters := res.Filters(field.NewRequest(r))
	payload := make([]*field.JSON, 0, len(filters))
	for _, f := range filters {
		payload = append(payload, f.JSON())
	}

	data, err := json.Marshal(map[string]any{"filters": payload})
	if err != nil {
		h.internalError(w, r, err, "filters")
		return
	}
	if err := h.filters.Set(r.Context(), key, data); err != nil {
		h.internalError(w, r, err, "filters")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// Index lists records, narrowed by the base64 "filters" parameter.
func (h *ResourceHandler) Index(w http.ResponseWriter, r *http.Request) {
	res, ok := h.lookup(w, r)
	if !ok {
		return
	}

	offset := 0
	limit := h.pageSize

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if _, err := fmt.Sscanf(offsetStr, "%d", &offset); err != nil {
			writeJSONError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
			return
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if _, err := fmt.Sscanf(limitStr, "%d", &limit); err != nil {
			writeJSONError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
			return
		}
	}

	if offset < 0 {
		writeJSONError(w, r, http.StatusBadRequest, codeBadRequest, "offset must not be negative")
		return
	}
	if limit <= 0 {
		limit = h.pageSize
	}

	encoded := r.URL.Query().Get("filters")
	if inputs, err := resource.DecodeFilters(encoded); err == nil {
		keys := make([]string, 0, len(inputs))
		for _, in := range inputs {
			keys = append(keys, in.Key)
		}
		logging.EnrichFilters(r.Context(), keys)
	}

	req := field.NewRequest(r)
	scope := func(q field.Query) (field.Query, error) {
		return res.ApplyFilters(req, q, encoded)
	}

	events, err := h.store.ListEvents(r.Context(), scope, offset, limit)
	if errors.Is(err, resource.ErrInvalidFilters) {
		logging.EnrichError(r.Context(), err, "filters")
		writeJSONError(w, r, http.StatusBadRequest, codeInvalidFilters, err.Error())
		return
	}
	if err != nil {
		h.internalError(w, r, err, "list")
		return
	}

	rows := make([]recordResponse, 0, len(events))
	for _, event := range events {
		fields, err := res.Resolve(event)
		if err != nil {
			h.internalError(w, r, err, "resolve")
			return
		}
		rows = append(rows, recordResponse{ID: event.ID, Fields: fields})
	}
	logging.EnrichResultCount(r.Context(), len(rows))

	writeJSON(w, http.StatusOK, indexResponse{
		Resources: rows,
		Offset:    offset,
		Limit:     limit,
	})
}

func (h *ResourceHandler) Show(w http.ResponseWriter, r *http.Request) {
	res, ok := h.lookup(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSONError(w, r, http.StatusBadRequest, codeBadRequest, "invalid id")
		return
	}

	event, err := h.store.GetEvent(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, r, http.StatusNotFound, codeNotFound, err.Error())
		return
	}
	if err != nil {
		h.internalError(w, r, err, "get")
		return
	}

	fields, err := res.Resolve(event)
	if err != nil {
		h.internalError(w, r, err, "resolve")
		return
	}
	writeJSON(w, http.StatusOK, recordResponse{ID: event.ID, Fields: fields})
}

// Create stores a new event. The event date is read in whatever calendar the
// submitted form selected.
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	res, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var formData map[string]any
	if err := json.NewDecoder(r.Body).Decode(&formData); err != nil {
		writeJSONError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	title, _ := formData["title"].(string)
	if title == "" {
		writeJSONError(w, r, http.StatusBadRequest, codeBadRequest, "title is required")
		return
	}

	event := &models.EventDB{Title: title}

	if raw, _ := formData[resource.EventDateAttribute].(string); raw != "" {
		f, ok := res.FieldFor(resource.EventDateAttribute)
		pd, isDate := f.(*field.PersianDate)
		if !ok || !isDate {
			writeJSONError(w, r, http.StatusBadRequest, codeBadRequest, "resource has no event date field")
			return
		}

		normalized, err := pd.SyncDependsOn(field.NewRequest(r), formData).NormalizeInput(raw)
		if err != nil {
			writeJSONError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
			return
		}
		date, err := time.Parse(field.DateLayout, normalized)
		if err != nil {
			writeJSONError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
			return
		}
		event.EventDate = sql.NullTime{Time: date, Valid: true}
	}

	if err := h.store.CreateEvent(r.Context(), event); err != nil {
		h.internalError(w, r, err, "create")
		return
	}
	logging.EnrichResource(r.Context(), res.URIKey, event.ID.String())

	fields, err := res.Resolve(event)
	if err != nil {
		h.internalError(w, r, err, "resolve")
		return
	}
	writeJSON(w, http.StatusCreated, recordResponse{ID: event.ID, Fields: fields})
}

func (h *ResourceHandler) internalError(w http.ResponseWriter, r *http.Request, err error, stage string) {
	logging.EnrichError(r.Context(), err, stage)
	writeJSONError(w, r, http.StatusInternalServerError, codeInternalError, err.Error())
}
