package board

import (
	"errors"
	"net/http"
	"strings"

	"nourishnet/internal/listing"

	"github.com/gin-gonic/gin"
)

// ImageBounds limits the size of ingested listing photos.
type ImageBounds struct {
	MaxWidth  uint
	MaxHeight uint
}

type Handler struct {
	board  *Board
	bounds ImageBounds
}

func NewHandler(board *Board, bounds ImageBounds) *Handler {
	return &Handler{board: board, bounds: bounds}
}

// --------------------------------------------------
// GET /api/board
// --------------------------------------------------
func (h *Handler) GetBoard(c *gin.Context) {
	c.JSON(http.StatusOK, h.board.Snapshot())
}

// --------------------------------------------------
// PUT /api/view
// --------------------------------------------------
func (h *Handler) SetView(c *gin.Context) {
	var req struct {
		View View `json:"view"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.board.SetView(req.View); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"view": req.View})
}

// --------------------------------------------------
// GET /api/listings?status=available|claimed
// --------------------------------------------------
func (h *Handler) ListListings(c *gin.Context) {
	status := listing.Status(c.DefaultQuery("status", string(listing.StatusAvailable)))
	if status != listing.StatusAvailable && status != listing.StatusClaimed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be available or claimed"})
		return
	}

	c.JSON(http.StatusOK, h.board.Listings(status))
}

// --------------------------------------------------
// POST /api/listings
// --------------------------------------------------
func (h *Handler) CreateListing(c *gin.Context) {
	form, err := h.bindForm(c)
	if err != nil {
		writeError(c, err)
		return
	}

	l, err := form.Submit(h.board)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, l)
}

// maxFormBytes bounds a whole listing request: one image plus text fields.
const maxFormBytes = listing.MaxImageBytes + 1<<20

// bindForm reads a JSON draft or form fields. A multipart form may carry an
// "image" file, which is encoded in place as a data URI. The returned form
// holds whatever fields were bound, even when err is set.
func (h *Handler) bindForm(c *gin.Context) (*listing.Form, error) {
	form := &listing.Form{}
	ct := c.ContentType()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFormBytes)

	if ct == "" || ct == gin.MIMEJSON {
		if err := c.ShouldBindJSON(&form.Draft); err != nil {
			return form, errBadBody
		}
		return form, nil
	}

	form.Name = c.PostForm("name")
	form.Description = c.PostForm("description")
	form.Quantity = c.PostForm("quantity")
	form.PickupTime = c.PostForm("pickup_time")

	if !strings.HasPrefix(ct, "multipart/") {
		return form, nil
	}

	header, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return form, nil
	}
	if err != nil {
		return form, errBadBody
	}
	if header.Size > listing.MaxImageBytes {
		return form, &listing.ValidationError{Fields: []string{"image"}, Reason: "image is too large"}
	}

	file, err := header.Open()
	if err != nil {
		return form, err
	}
	defer file.Close()

	uri, err := listing.EncodeImage(file, h.bounds.MaxWidth, h.bounds.MaxHeight)
	if err != nil {
		return form, err
	}
	form.Image = uri

	return form, nil
}

// --------------------------------------------------
// POST /api/listings/:id/claim
// --------------------------------------------------
func (h *Handler) ClaimListing(c *gin.Context) {
	l, err := h.board.Claim(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, l)
}

// --------------------------------------------------
// PUT /api/selection/:id
// --------------------------------------------------
func (h *Handler) SetSelection(c *gin.Context) {
	var req struct {
		Selected *bool `json:"selected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Selected == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "selected is required"})
		return
	}

	if err := h.board.Select(c.Param("id"), *req.Selected); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selected": h.board.Selected()})
}

// --------------------------------------------------
// POST /api/meal-idea
// --------------------------------------------------
func (h *Handler) RequestMealIdea(c *gin.Context) {
	res, err := h.board.RequestMealIdea(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, SuggestionView{Result: res})
}

// --------------------------------------------------
// GET /api/meal-idea
// --------------------------------------------------
func (h *Handler) GetMealIdea(c *gin.Context) {
	res := h.board.Suggestion()
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no meal idea requested"})
		return
	}

	c.JSON(http.StatusOK, SuggestionView{Result: res, Blocks: res.ParsedBlocks()})
}

// --------------------------------------------------
// DELETE /api/meal-idea
// --------------------------------------------------
func (h *Handler) CloseMealIdea(c *gin.Context) {
	h.board.CloseSuggestion()
	c.Status(http.StatusNoContent)
}

var errBadBody = errors.New("invalid request body")

func statusFor(err error) int {
	switch {
	case listing.IsValidation(err),
		errors.Is(err, errBadBody),
		errors.Is(err, ErrEmptySelection),
		errors.Is(err, ErrInvalidView):
		return http.StatusBadRequest
	case errors.Is(err, listing.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrClaimed):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
