package router

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"nourishnet/internal/board"
	"nourishnet/internal/realtime"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Deps struct {
	Board       *board.Handler
	Hub         *realtime.Hub
	CORSOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: d.CORSOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	r.SetHTMLTemplate(template.Must(
		template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"),
	))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── API ─────────────────────────
	api := r.Group("/api")
	{
		api.GET("/board", d.Board.GetBoard)
		api.PUT("/view", d.Board.SetView)

		api.GET("/listings", d.Board.ListListings)
		api.POST("/listings", d.Board.CreateListing)
		api.POST("/listings/:id/claim", d.Board.ClaimListing)

		api.PUT("/selection/:id", d.Board.SetSelection)

		api.POST("/meal-idea", d.Board.RequestMealIdea)
		api.GET("/meal-idea", d.Board.GetMealIdea)
		api.DELETE("/meal-idea", d.Board.CloseMealIdea)
	}

	// ───────────────────────── PAGE ─────────────────────────
	r.GET("/", d.Board.Index)
	ui := r.Group("/ui")
	{
		ui.POST("/view", d.Board.PageSetView)
		ui.POST("/listings", d.Board.PageCreateListing)
		ui.POST("/listings/:id/claim", d.Board.PageClaim)
		ui.POST("/selection/:id", d.Board.PageSelect)
		ui.POST("/meal-idea", d.Board.PageRequestMealIdea)
		ui.POST("/meal-idea/close", d.Board.PageCloseMealIdea)
	}

	// ───────────────────────── REALTIME ─────────────────────────
	if d.Hub != nil {
		r.GET("/ws", d.Hub.ServeWS)
	}

	return r
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
	// data URIs and remote URLs are both valid listing images
	"safeImage": func(ref string) template.URL {
		if strings.HasPrefix(ref, "data:image/") ||
			strings.HasPrefix(ref, "https://") ||
			strings.HasPrefix(ref, "http://") {
			return template.URL(ref)
		}
		return ""
	},
}
