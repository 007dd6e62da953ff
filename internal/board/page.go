package board

import (
	"net/http"
	"strconv"

	"nourishnet/internal/listing"

	"github.com/gin-gonic/gin"
)

// page is the data behind index.html.
type page struct {
	Projection
	Notice string
	Form   listing.Draft
}

func (h *Handler) render(c *gin.Context, status int, notice string, form listing.Draft) {
	c.HTML(status, "index.html", page{
		Projection: h.board.Snapshot(),
		Notice:     notice,
		Form:       form,
	})
}

func backToIndex(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// GET /
func (h *Handler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, "", listing.Draft{})
}

// POST /ui/view
func (h *Handler) PageSetView(c *gin.Context) {
	if err := h.board.SetView(View(c.PostForm("view"))); err != nil {
		h.render(c, statusFor(err), err.Error(), listing.Draft{})
		return
	}
	backToIndex(c)
}

// POST /ui/listings
func (h *Handler) PageCreateListing(c *gin.Context) {
	form, err := h.bindForm(c)
	if err != nil {
		h.render(c, statusFor(err), err.Error(), form.Draft)
		return
	}

	if _, err := form.Submit(h.board); err != nil {
		h.render(c, statusFor(err), err.Error(), form.Draft)
		return
	}
	backToIndex(c)
}

// POST /ui/listings/:id/claim
func (h *Handler) PageClaim(c *gin.Context) {
	if _, err := h.board.Claim(c.Param("id")); err != nil {
		h.render(c, statusFor(err), err.Error(), listing.Draft{})
		return
	}
	backToIndex(c)
}

// POST /ui/selection/:id
func (h *Handler) PageSelect(c *gin.Context) {
	selected, _ := strconv.ParseBool(c.PostForm("selected"))
	if err := h.board.Select(c.Param("id"), selected); err != nil {
		h.render(c, statusFor(err), err.Error(), listing.Draft{})
		return
	}
	backToIndex(c)
}

// POST /ui/meal-idea
func (h *Handler) PageRequestMealIdea(c *gin.Context) {
	if _, err := h.board.RequestMealIdea(c.Request.Context()); err != nil {
		h.render(c, statusFor(err), err.Error(), listing.Draft{})
		return
	}
	backToIndex(c)
}

// POST /ui/meal-idea/close
func (h *Handler) PageCloseMealIdea(c *gin.Context) {
	h.board.CloseSuggestion()
	backToIndex(c)
}
