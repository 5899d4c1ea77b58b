package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "bookhaven/internal/handler/dto/request"
	resdto "bookhaven/internal/handler/dto/response"
	"bookhaven/internal/handler/httperr"
	"bookhaven/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewBookHandler(catalogUseCase usecase.CatalogUseCase) *BookHandler {
	return &BookHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List books
// @Description All books in the catalog
// @Tags books
// @Produce json
// @Success 200 {array} resdto.BookResponse
// @Router /books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.catalogUseCase.ListBooks(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookRMs(books))
}

// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book ID")
		return
	}

	book, err := h.catalogUseCase.GetBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrBookNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookRM(book))
}

// @Summary List books by genre
// @Tags books
// @Produce json
// @Param genre path string true "Genre"
// @Success 200 {array} resdto.BookResponse
// @Router /books/genre/{genre} [get]
func (h *BookHandler) ListByGenre(c *gin.Context) {
	books, err := h.catalogUseCase.ListBooksByGenre(c.Request.Context(), c.Param("genre"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookRMs(books))
}

// @Summary List genres
// @Description Distinct genres present in the catalog
// @Tags books
// @Produce json
// @Success 200 {array} string
// @Router /genres [get]
func (h *BookHandler) ListGenres(c *gin.Context) {
	genres, err := h.catalogUseCase.ListGenres(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, genres)
}

// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookRequest true "Book"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	id, err := h.catalogUseCase.CreateBook(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateBook):
			httperr.AbortWithError(c, http.StatusConflict, err, "Book already exists")
		case errors.Is(err, usecase.ErrInvalidBook):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.Header("Location", fmt.Sprintf("/api/books/%s", id))
	c.JSON(http.StatusCreated, gin.H{
		"id": id.String(),
	})
}

// @Summary Update a book
// @Description Partial update of book fields; quantity is managed by lending only
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Param request body reqdto.UpdateBookRequest true "Fields to update"
// @Success 200 {object} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book ID")
		return
	}

	var req reqdto.UpdateBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	book, err := h.catalogUseCase.UpdateBook(c.Request.Context(), id, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found")
		case errors.Is(err, usecase.ErrInvalidBook):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookRM(book))
}
