// Package list реализует HTTP-обработчик для получения списка товаров.
//
// Handler переводит параметры запроса page, limit, category и sort в фильтр
// хранилища, вызывает бизнес-логику выборки и возвращает конверт с товарами
// и счётчиками пагинации.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	catalog "github.com/magabrotheeeer/product-catalog/internal/services/catalog"
)

// Handler обрабатывает запросы на получение списка товаров.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки товаров.
type Service interface {
	List(ctx context.Context, filter models.ProductFilter) (*models.ProductPage, error)
}

// Response — конверт ответа со списком товаров и счётчиками пагинации.
type Response struct {
	response.Response
	Products      []*models.Product `json:"products"`
	TotalProducts int               `json:"totalProducts"`
	TotalPages    int               `json:"totalPages"`
	CurrentPage   int               `json:"currentPage"`
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список товаров
// @Description Возвращает список товаров с фильтром по категории, сортировкой по цене и необязательной пагинацией.
// @Tags Products
// @Produce json
// @Param page query int false "Номер страницы, по умолчанию 1"
// @Param limit query int false "Размер страницы; без него возвращается вся выборка"
// @Param category query string false "Категория (точное совпадение)"
// @Param sort query string false "asc — по возрастанию цены, иначе по убыванию"
// @Success 200 {object} Response "Список товаров"
// @Failure 500 {object} response.Response "Ошибка сервера"
// @Router /products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter := catalog.BuildFilter(
		r.URL.Query().Get("page"),
		r.URL.Query().Get("limit"),
		r.URL.Query().Get("category"),
		r.URL.Query().Get("sort"),
	)

	page, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not fetch products"))
		return
	}

	log.Info("list products", slog.Int("count", len(page.Products)))
	render.JSON(w, r, Response{
		Response:      response.OK("products fetched successfully"),
		Products:      page.Products,
		TotalProducts: page.TotalProducts,
		TotalPages:    page.TotalPages,
		CurrentPage:   page.CurrentPage,
	})
}
