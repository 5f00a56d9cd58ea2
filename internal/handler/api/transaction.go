package api

import (
	"net/http"

	reqdto "book-rental-tracker/internal/handler/dto/request"
	resdto "book-rental-tracker/internal/handler/dto/response"
	"book-rental-tracker/internal/usecase/commands"
	"book-rental-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	cmds commands.TransactionCommands
	q    queries.TransactionQueries
}

func NewTransactionHandler(cmds commands.TransactionCommands, q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{cmds: cmds, q: q}
}

// @Summary Issue a book
// @Description Opens a transaction for the first book whose name contains bookName.
// @Description issueDate defaults to now.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body reqdto.IssueBookRequest true "Issue request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/issue [post]
func (h *TransactionHandler) Issue(c *gin.Context) {
	var req reqdto.IssueBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithBadRequest(c, err, "Invalid issueDate")
		return
	}
	if _, err := h.cmds.IssueBook(c.Request.Context(), cmd); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.IssueBookMessage())
}

// @Summary Return a book
// @Description Closes the open transaction for the exact book name and user, and computes the rent.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body reqdto.ReturnBookRequest true "Return request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/return [post]
func (h *TransactionHandler) Return(c *gin.Context) {
	var req reqdto.ReturnBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithBadRequest(c, err, "Invalid returnDate")
		return
	}
	result, err := h.cmds.ReturnBook(c.Request.Context(), cmd)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReturnBookMessage(result))
}

// @Summary Book issuers
// @Tags transactions
// @Produce json
// @Param bookName query string false "Name fragment"
// @Success 200 {object} resdto.BookIssuersResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/issuers [get]
func (h *TransactionHandler) Issuers(c *gin.Context) {
	var param reqdto.BookNameParam
	if err := c.ShouldBindQuery(&param); err != nil {
		abortWithBadRequest(c, err, "Invalid query parameters")
		return
	}
	view, err := h.q.GetBookIssuers(c.Request.Context(), param.BookName)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookIssuers(view))
}

// @Summary Total rent generated by a book
// @Description Open transactions contribute nothing.
// @Tags transactions
// @Produce json
// @Param bookName query string false "Name fragment"
// @Success 200 {object} resdto.TotalRentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/rent [get]
func (h *TransactionHandler) TotalRent(c *gin.Context) {
	var param reqdto.BookNameParam
	if err := c.ShouldBindQuery(&param); err != nil {
		abortWithBadRequest(c, err, "Invalid query parameters")
		return
	}
	view, err := h.q.GetTotalRentGenerated(c.Request.Context(), param.BookName)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.TotalRentResponse{TotalRent: view.TotalRent})
}

// @Summary Books issued by a user
// @Tags transactions
// @Produce json
// @Param username query string false "Name fragment"
// @Success 200 {object} resdto.UserIssuedBooksResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/userBooks [get]
func (h *TransactionHandler) UserBooks(c *gin.Context) {
	var param reqdto.UsernameParam
	if err := c.ShouldBindQuery(&param); err != nil {
		abortWithBadRequest(c, err, "Invalid query parameters")
		return
	}
	view, err := h.q.GetUserIssuedBooks(c.Request.Context(), param.Username)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserIssuedBooks(view))
}

// @Summary Books issued within a date range
// @Description Both bounds are inclusive.
// @Tags transactions
// @Produce json
// @Param startDate query string true "RFC 3339 timestamp or YYYY-MM-DD"
// @Param endDate query string true "RFC 3339 timestamp or YYYY-MM-DD"
// @Success 200 {array} resdto.DateRangeIssueResponse
// @Failure 400 {object} map[string]string
// @Router /api/transactions/dateRange [get]
func (h *TransactionHandler) DateRange(c *gin.Context) {
	var query reqdto.DateRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBadRequest(c, err, "Invalid query parameters")
		return
	}
	start, end, err := query.Bounds()
	if err != nil {
		abortWithBadRequest(c, err, "Invalid date range")
		return
	}
	views, err := h.q.GetBooksIssuedInDateRange(c.Request.Context(), start, end)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDateRangeIssues(views))
}
