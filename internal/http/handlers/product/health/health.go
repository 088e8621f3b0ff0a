// Package health реализует liveness-обработчик корневого маршрута.
package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
)

// Handler отвечает на проверку живости сервиса.
type Handler struct {
	log *slog.Logger
}

// Response — конверт ответа liveness-проверки.
type Response struct {
	response.Response
	Timestamp time.Time `json:"timestamp"`
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	render.JSON(w, r, Response{
		Response:  response.OK("product catalog api is running"),
		Timestamp: time.Now().UTC(),
	})
}
