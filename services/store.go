package services

import (
	"errors"
	"sync"

	"restaurant-backoffice/models"
)

var ErrNotFound = errors.New("menu item not found")

// Store owns the menu and service lists. Both keep insertion order and have
// their own id sequence starting at 1; ids are never handed out twice, even
// after a delete. Callers always get copies.
type Store struct {
	mu            sync.Mutex
	menu          []models.MenuItem
	services      []models.ServiceItem
	lastMenuID    int64
	lastServiceID int64
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) CreateMenu(in models.MenuInput) models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastMenuID++
	item := models.MenuItem{
		ID:          s.lastMenuID,
		Name:        in.Name,
		PriceCents:  in.PriceCents,
		Image:       in.Image,
		Description: in.Description,
	}
	s.menu = append(s.menu, item)
	return item
}

func (s *Store) CreateService(in models.ServiceInput) models.ServiceItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastServiceID++
	item := models.ServiceItem{
		ID:         s.lastServiceID,
		Name:       in.Name,
		PriceCents: in.PriceCents,
		Image:      in.Image,
	}
	s.services = append(s.services, item)
	return item
}

func (s *Store) FindMenu(id int64) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.menuIndex(id)
	if i < 0 {
		return models.MenuItem{}, ErrNotFound
	}
	return s.menu[i], nil
}

// UpdateMenu rewrites name, price and description in place. The image is
// replaced only when in.Image is non-empty.
func (s *Store) UpdateMenu(id int64, in models.MenuInput) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.menuIndex(id)
	if i < 0 {
		return models.MenuItem{}, ErrNotFound
	}
	item := &s.menu[i]
	item.Name = in.Name
	item.PriceCents = in.PriceCents
	item.Description = in.Description
	if in.Image != "" {
		item.Image = in.Image
	}
	return *item, nil
}

// DeleteMenu removes the item and returns what was removed.
func (s *Store) DeleteMenu(id int64) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.menuIndex(id)
	if i < 0 {
		return models.MenuItem{}, ErrNotFound
	}
	removed := s.menu[i]
	s.menu = append(s.menu[:i], s.menu[i+1:]...)
	return removed, nil
}

func (s *Store) ListMenu() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.MenuItem, len(s.menu))
	copy(out, s.menu)
	return out
}

func (s *Store) ListServices() []models.ServiceItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ServiceItem, len(s.services))
	copy(out, s.services)
	return out
}

func (s *Store) Counts() (menu, services int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.menu), len(s.services)
}

// Seed inserts the catalog only when both lists are empty. It reports whether anything was inserted.
func (s *Store) Seed(c *SeedCatalog) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.menu) > 0 || len(s.services) > 0 {
		return false
	}
	for _, in := range c.Menu {
		s.lastMenuID++
		s.menu = append(s.menu, models.MenuItem{
			ID:          s.lastMenuID,
			Name:        in.Name,
			PriceCents:  in.PriceCents,
			Image:       in.Image,
			Description: in.Description,
		})
	}
	for _, in := range c.Services {
		s.lastServiceID++
		s.services = append(s.services, models.ServiceItem{
			ID:         s.lastServiceID,
			Name:       in.Name,
			PriceCents: in.PriceCents,
			Image:      in.Image,
		})
	}
	return true
}

func (s *Store) menuIndex(id int64) int {
	for i := range s.menu {
		if s.menu[i].ID == id {
			return i
		}
	}
	return -1
}
