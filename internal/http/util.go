package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps domain errors to HTTP statuses. Remote errors keep the
// upstream status and detail verbatim.
func writeErr(w http.ResponseWriter, err error) {
	var remote *domain.RemoteRequestError
	if errors.As(err, &remote) {
		writeJSON(w, remote.Status, Fail(remote.Detail))
		return
	}
	var decode *domain.DecodeError
	if errors.As(err, &decode) {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}
	var syncErr *domain.UpstreamSyncError
	if errors.As(err, &syncErr) {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, Fail(err.Error()))
		return
	}
	if errors.Is(err, domain.ErrInvalid) {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func readBodyJSON(r *http.Request, maxBytes int64, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
