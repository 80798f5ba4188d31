package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"restaurant-backoffice/services"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Server wires the record store and event sinks into the gin engine.
type Server struct {
	store       *services.Store
	sinks       []services.Sink
	recentAudit func(ctx context.Context, limit int) ([]services.AuditEntry, error)
	engine      *gin.Engine
}

func NewServer(store *services.Store, sinks ...services.Sink) (*Server, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	s := &Server{store: store, sinks: sinks, recentAudit: services.RecentAudit}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger())
	r.SetHTMLTemplate(tmpl)
	if err := serveStatic(r, static); err != nil {
		return nil, err
	}

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/dashboard") })
	r.GET("/healthz", s.health)
	r.GET("/dashboard", s.dashboard)
	r.GET("/manage", s.manage)

	menu := r.Group("/menu")
	{
		menu.POST("", s.createMenu)
		menu.GET("/:id/edit", s.editMenuForm)
		menu.POST("/:id/edit", s.updateMenu)
		menu.POST("/:id/delete", s.deleteMenu)
	}
	r.POST("/services", s.createService)

	s.engine = r
	return s, nil
}

// serveStatic registers one route per embedded asset, so /static/ has no directory listing.
func serveStatic(r *gin.Engine, static fs.FS) error {
	assets := http.FS(static)
	return fs.WalkDir(static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		r.StaticFileFS("/static/"+name, name, assets)
		return nil
	})
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) Run(addr string) error { return s.engine.Run(addr) }

var templateFuncs = template.FuncMap{
	"price":      services.FormatPrice,
	"priceInput": priceInput,
	"imgsrc":     imageSrc,
}

// priceInput is the plain form value for an edit field, e.g. 124950 -> "1249.50".
func priceInput(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// imageSrc marks inline data URLs and http(s)/root-relative URLs as safe for
// <img src>; anything else goes through html/template's URL filter.
func imageSrc(s string) interface{} {
	switch {
	case strings.HasPrefix(s, "data:image/"),
		strings.HasPrefix(s, "data:application/octet-stream"),
		strings.HasPrefix(s, "http://"),
		strings.HasPrefix(s, "https://"),
		strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//"):
		return template.URL(s)
	}
	return s
}
