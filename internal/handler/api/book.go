package api

import (
	"net/http"

	reqdto "book-rental-tracker/internal/handler/dto/request"
	resdto "book-rental-tracker/internal/handler/dto/response"
	"book-rental-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	q queries.CatalogQueries
}

func NewBookHandler(q queries.CatalogQueries) *BookHandler {
	return &BookHandler{q: q}
}

// @Summary Search books by name
// @Description Case-insensitive substring match on the book name
// @Tags books
// @Produce json
// @Param name query string false "Name fragment"
// @Success 200 {array} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Router /api/books/search/name [get]
func (h *BookHandler) SearchByName(c *gin.Context) {
	var query reqdto.BookNameQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBadRequest(c, err, "Invalid query parameters")
		return
	}
	views, err := h.q.FindBooksByName(c.Request.Context(), query.Name)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.writeBooks(c, views)
}

// @Summary Search books by rent
// @Description Books whose rent per day lies within [minRent, maxRent]
// @Tags books
// @Produce json
// @Param minRent query number false "Lower bound, defaults to 0"
// @Param maxRent query number false "Upper bound, unbounded when omitted"
// @Success 200 {array} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Router /api/books/search/rent [get]
func (h *BookHandler) SearchByRent(c *gin.Context) {
	var query reqdto.RentRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBadRequest(c, err, "Invalid rent range")
		return
	}
	views, err := h.q.FindBooksByRentRange(c.Request.Context(), query.MinRent, query.MaxRent)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.writeBooks(c, views)
}

// @Summary Search books by category, name and rent
// @Tags books
// @Produce json
// @Param category query string false "Exact category"
// @Param term query string false "Name fragment"
// @Param minRent query number false "Lower bound, defaults to 0"
// @Param maxRent query number false "Upper bound, unbounded when omitted"
// @Success 200 {array} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Router /api/books/search/category-rent [get]
func (h *BookHandler) SearchByCategoryAndRent(c *gin.Context) {
	var query reqdto.CategoryRentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBadRequest(c, err, "Invalid query parameters")
		return
	}
	views, err := h.q.FindBooksByCategoryAndRent(c.Request.Context(),
		query.Category, query.Term, query.MinRent, query.MaxRent)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.writeBooks(c, views)
}

// @Summary List users
// @Tags books
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Router /api/books/allUsers [get]
func (h *BookHandler) ListUsers(c *gin.Context) {
	views, err := h.q.ListAllUsers(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromUserContacts(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {array} resdto.BookListItemResponse
// @Failure 400 {object} map[string]string
// @Router /api/books/allBooks [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	views, err := h.q.ListAllBooks(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromBookSummaries(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *BookHandler) writeBooks(c *gin.Context, views []queries.BookView) {
	res, err := resdto.FromBookViews(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
