package api

import (
	"errors"
	"net/http"

	reqdto "bookhaven/internal/handler/dto/request"
	resdto "bookhaven/internal/handler/dto/response"
	"bookhaven/internal/handler/httperr"
	"bookhaven/internal/handler/middleware"
	"bookhaven/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LendingHandler struct {
	lendingUseCase usecase.LendingUseCase
}

func NewLendingHandler(lendingUseCase usecase.LendingUseCase) *LendingHandler {
	return &LendingHandler{
		lendingUseCase: lendingUseCase,
	}
}

// @Summary Borrow a book
// @Description Borrow one copy of a book until the given return date
// @Tags lending
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BorrowBookRequest true "Borrow request"
// @Success 201 {object} resdto.BorrowBookResponse
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /borrow [post]
func (h *LendingHandler) Borrow(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.BorrowBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	// The token identity must match the borrower named in the request.
	if callerID != req.UserID {
		httperr.AbortWithError(c, http.StatusForbidden, nil, "User ID mismatch")
		return
	}

	receipt, err := h.lendingUseCase.BorrowBook(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadyBorrowed):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":           "You have already borrowed this book. You can borrow it again after returning it.",
				"alreadyBorrowed": true,
			})
		case errors.Is(err, usecase.ErrBookOutOfStock):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Book is out of stock")
		case errors.Is(err, usecase.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found")
		case errors.Is(err, usecase.ErrInvalidLoan):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid loan request")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBorrowReceipt(receipt))
}

// @Summary Return a book
// @Description Return a borrowed book and close the loan
// @Tags lending
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReturnBookRequest true "Return request"
// @Success 200 {object} resdto.ReturnBookResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /return [post]
func (h *LendingHandler) Return(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.ReturnBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	if callerID != req.UserID {
		httperr.AbortWithError(c, http.StatusForbidden, nil, "User ID mismatch")
		return
	}

	err := h.lendingUseCase.ReturnBook(c.Request.Context(), req.LoanID, req.BookID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrLoanNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Loan not found or already returned")
		case errors.Is(err, usecase.ErrLoanNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "You do not have permission to return this book")
		case errors.Is(err, usecase.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ReturnBookResponse{
		Success: true,
		Message: "Book returned successfully",
	})
}

// @Summary Get own loans
// @Description All loans of the authenticated user, newest first
// @Tags lending
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LoanResponse
// @Failure 401 {object} map[string]string
// @Router /loans [get]
func (h *LendingHandler) ListOwnLoans(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	loans, err := h.lendingUseCase.GetUserLoans(c.Request.Context(), callerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoanRMs(loans))
}
