package web

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"restaurant-backoffice/models"
	"restaurant-backoffice/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	notFoundMessage = "Menu item not found"

	// sinkTimeout bounds all sink work done inside one request.
	sinkTimeout = 5 * time.Second

	recentAuditLimit = 10
)

// reach is illustrative trend data for the dashboard chart.
var reach = []int{120, 150, 180, 220, 260, 300, 340}

type reachBar struct {
	Value   int
	Percent int
}

func reachBars() []reachBar {
	max := 0
	for _, v := range reach {
		if v > max {
			max = v
		}
	}
	bars := make([]reachBar, len(reach))
	for i, v := range reach {
		bars[i] = reachBar{Value: v}
		if max > 0 {
			bars[i].Percent = v * 100 / max
		}
	}
	return bars
}

func (s *Server) health(c *gin.Context) {
	menu, svcs := s.store.Counts()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "menu": menu, "services": svcs})
}

func (s *Server) dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"menu":  s.store.ListMenu(),
		"reach": reachBars(),
	})
}

func (s *Server) manage(c *gin.Context) {
	audit, err := s.recentAudit(c.Request.Context(), recentAuditLimit)
	if err != nil {
		log.Warn().Err(err).Msg("load recent audit")
	}
	c.HTML(http.StatusOK, "manage.html", gin.H{
		"menu":     s.store.ListMenu(),
		"services": s.store.ListServices(),
		"audit":    audit,
		"msg":      c.Query("msg"),
		"err":      c.Query("err"),
	})
}

// POST /menu
func (s *Server) createMenu(c *gin.Context) {
	price, err := services.ParsePrice(c.PostForm("price"))
	if err != nil {
		redirectWith(c, "/manage", "err", err.Error(), "")
		return
	}
	item := s.store.CreateMenu(models.MenuInput{
		Name:        strings.TrimSpace(c.PostForm("name")),
		PriceCents:  price,
		Image:       services.EncodeImage(formFile(c), c.PostForm("image_url")),
		Description: strings.TrimSpace(c.PostForm("description")),
	})
	s.publish(c.Request.Context(), services.Event{
		Entity: services.EntityMenu, Action: services.ActionAdded,
		ID: item.ID, Name: item.Name, PriceCents: item.PriceCents,
	})
	redirectWith(c, "/manage", "msg", "Menu added", "")
}

// GET /menu/:id/edit
func (s *Server) editMenuForm(c *gin.Context) {
	id, ok := menuID(c)
	if !ok {
		return
	}
	item, err := s.store.FindMenu(id)
	if err != nil {
		s.abortStoreError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit_menu.html", gin.H{
		"item": item,
		"err":  c.Query("err"),
	})
}

// POST /menu/:id/edit
func (s *Server) updateMenu(c *gin.Context) {
	id, ok := menuID(c)
	if !ok {
		return
	}
	if _, err := s.store.FindMenu(id); err != nil {
		s.abortStoreError(c, err)
		return
	}
	price, err := services.ParsePrice(c.PostForm("price"))
	if err != nil {
		redirectWith(c, fmt.Sprintf("/menu/%d/edit", id), "err", err.Error(), "")
		return
	}
	item, err := s.store.UpdateMenu(id, models.MenuInput{
		Name:        strings.TrimSpace(c.PostForm("name")),
		PriceCents:  price,
		Image:       services.EncodeImage(formFile(c), c.PostForm("image_url")),
		Description: strings.TrimSpace(c.PostForm("description")),
	})
	if err != nil {
		// deleted between the lookup and the update
		s.abortStoreError(c, err)
		return
	}
	s.publish(c.Request.Context(), services.Event{
		Entity: services.EntityMenu, Action: services.ActionUpdated,
		ID: item.ID, Name: item.Name, PriceCents: item.PriceCents,
	})
	redirectWith(c, "/manage", "msg", "Menu updated", "")
}

// POST /menu/:id/delete
func (s *Server) deleteMenu(c *gin.Context) {
	id, ok := menuID(c)
	if !ok {
		return
	}
	removed, err := s.store.DeleteMenu(id)
	if err != nil {
		s.abortStoreError(c, err)
		return
	}
	s.publish(c.Request.Context(), services.Event{
		Entity: services.EntityMenu, Action: services.ActionDeleted,
		ID: removed.ID, Name: removed.Name, PriceCents: removed.PriceCents,
	})
	redirectWith(c, "/manage", "msg", "Menu deleted", "")
}

// POST /services
func (s *Server) createService(c *gin.Context) {
	price, err := services.ParsePrice(c.PostForm("price"))
	if err != nil {
		redirectWith(c, "/manage", "err", err.Error(), "services")
		return
	}
	item := s.store.CreateService(models.ServiceInput{
		Name:       strings.TrimSpace(c.PostForm("name")),
		PriceCents: price,
		Image:      services.EncodeImage(formFile(c), ""),
	})
	s.publish(c.Request.Context(), services.Event{
		Entity: services.EntityService, Action: services.ActionAdded,
		ID: item.ID, Name: item.Name, PriceCents: item.PriceCents,
	})
	redirectWith(c, "/manage", "msg", "Service added", "services")
}

func (s *Server) publish(ctx context.Context, ev services.Event) {
	if len(s.sinks) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, sinkTimeout)
	defer cancel()

	for _, sink := range s.sinks {
		if err := sink.Publish(ctx, ev); err != nil {
			log.Warn().Err(err).Str("entity", ev.Entity).Int64("id", ev.ID).Str("action", ev.Action).Msg("event sink failed")
		}
	}
}

func (s *Server) abortStoreError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// menuID parses :id; anything that is not an integer is an unknown id.
func menuID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return 0, false
	}
	return id, true
}

// formFile returns nil when the request carries no image_file part.
func formFile(c *gin.Context) *multipart.FileHeader {
	fh, err := c.FormFile("image_file")
	if err != nil {
		return nil
	}
	return fh
}

// redirectWith sends a 303 so the browser re-issues a GET, e.g. /manage?msg=Menu+added#services.
func redirectWith(c *gin.Context, path, key, value, anchor string) {
	target := path + "?" + url.Values{key: {value}}.Encode()
	if anchor != "" {
		target += "#" + anchor
	}
	c.Redirect(http.StatusSeeOther, target)
}
