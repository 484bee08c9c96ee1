package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"

	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// decodeJSON reads the body into dst, rejecting unknown fields. It writes the
// error response itself and returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, initTime time.Time, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		common.RespondError(w, initTime, nil, constants.MsgInvalidJSON+": "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// pathID parses a positive integer URL parameter.
func pathID(w http.ResponseWriter, r *http.Request, initTime time.Time, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		common.RespondServiceError(w, initTime, apperr.Invalid(name, constants.MsgInvalidID))
		return 0, false
	}
	return uint(id), true
}

func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

func queryBool(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}

func queryUint(r *http.Request, name string) uint {
	v, err := strconv.ParseUint(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}
