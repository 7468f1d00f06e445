package httputil

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Fantasim/site/internal/view"
)

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// Error writes an error response with the given status code, error code, and message.
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, errorResponse{
		Error: errorBody{
			Code:    code,
			Message: message,
		},
	})
}

// HTML renders doc as a full document. Rendering happens before any header is
// written, so a failure leaves the response untouched and is returned to the caller.
func HTML(w http.ResponseWriter, status int, doc *view.Node) error {
	var buf bytes.Buffer
	if err := view.RenderDocument(&buf, doc); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("failed to write HTML response", "error", err)
	}
	return nil
}
