package handlers

import (
	"LinkBoard/internal/errx"
	"LinkBoard/internal/service"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ImageHandler отдаёт содержимое сохранённых картинок.
type ImageHandler struct {
	ImageService *service.ImageService
	Logger       *zap.SugaredLogger
}

// NewImageHandler создаёт хендлер картинок
func NewImageHandler(imageService *service.ImageService, logger *zap.SugaredLogger) *ImageHandler {
	return &ImageHandler{ImageService: imageService, Logger: logger}
}

// Download отдаёт байты картинки по id. Тип содержимого определяем по байтам.
func (h *ImageHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	img, err := h.ImageService.ByID(r.Context(), uint(id))
	if errx.KindOf(err) == errx.NotFound {
		http.Error(w, "image not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Errorw("Download: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(img.Data))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}
