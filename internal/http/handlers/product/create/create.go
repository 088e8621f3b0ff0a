// Package create реализует HTTP-обработчик для создания новых товаров.
//
// Handler принимает JSON-запрос с шестью полями товара, передаёт их
// бизнес-логике как есть и возвращает созданную запись с назначенным
// идентификатором.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// Handler управляет HTTP-запросами на создание новых товаров.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики создания товара.
type Service interface {
	Create(ctx context.Context, req models.DummyProduct) (*models.Product, error)
}

// Response — конверт ответа с созданным товаром.
type Response struct {
	response.Response
	Product *models.Product `json:"product"`
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Создать новый товар
// @Description Создает новый товар. Возвращает созданную запись с назначенным ID.
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.DummyProduct true "Данные нового товара"
// @Success 201 {object} Response "Созданный товар"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 500 {object} response.Response "Ошибка сервера"
// @Router /products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyProduct
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create product"))
		return
	}

	log.Info("success to create product", slog.String("id", product.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, Response{
		Response: response.OK("product created successfully"),
		Product:  product,
	})
}
