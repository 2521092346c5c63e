package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"shipment-leg-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("encode response failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps the domain error taxonomy onto HTTP statuses.
// The response body names the error kind; details stay in the logs.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrPreconditionFailed):
		writeError(w, r, http.StatusPreconditionFailed, "precondition failed")
	case errors.Is(err, domain.ErrCapacityRejected):
		writeError(w, r, http.StatusUnprocessableEntity, "truck capacity rejected")
	case errors.Is(err, domain.ErrDataUnavailable):
		writeError(w, r, http.StatusBadGateway, "required upstream data unavailable")
	case errors.Is(err, domain.ErrUpstreamFailure):
		writeError(w, r, http.StatusBadGateway, "upstream gateway failure")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, r, http.StatusConflict, "write conflict")
	default:
		log.WithError(err).WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("request failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody enforces a single strict JSON object per request.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
