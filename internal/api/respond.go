package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/matzehuels/chartopt/pkg/errors"
)

// violation is the wire form of one chart violation.
type violation struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeJSON encodes v without HTML escaping, so option documents go out
// byte for byte as they were serialized.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		jsonError(w, "encode response: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// writeError maps err to a status code and writes it. Chart violations are
// listed in full.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := errors.AsValidation(err); ok {
		vs := make([]violation, len(ve.Violations))
		for i, v := range ve.Violations {
			vs[i] = violation{Code: v.Code, Message: v.Message}
		}
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":      "chart validation failed",
			"violations": vs,
		})
		return
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		jsonError(w, "internal error", status)
		return
	}
	writeJSON(w, status, map[string]any{
		"error": errors.UserMessage(err),
		"code":  errors.GetCode(err),
	})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeChartNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPath,
		errors.ErrCodeUnsupported,
		errors.ErrCodeNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
