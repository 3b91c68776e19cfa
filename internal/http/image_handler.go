package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/images"
)

// ImageHandler serves locally stored profile images at the references the
// directory hands out (/api/images/{employeeID}).
type ImageHandler struct {
	resolver *images.Resolver
	logger   *zap.Logger
}

func NewImageHandler(resolver *images.Resolver, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{resolver: resolver, logger: logger}
}

func (h *ImageHandler) Serve(w http.ResponseWriter, r *http.Request, employeeID string) {
	data, contentType, err := h.resolver.Load(r.Context(), employeeID)
	if err != nil {
		writeErr(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
