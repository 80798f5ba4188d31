package models

// MenuItem is one dish on the menu. Price is in minor units (centavos).
type MenuItem struct {
	ID          int64
	Name        string
	PriceCents  int64
	Image       string // data URL, external URL or empty
	Description string
}

// ServiceItem is a bookable service such as an event place.
type ServiceItem struct {
	ID         int64
	Name       string
	PriceCents int64
	Image      string
}

// MenuInput carries validated form values for create and edit.
// On edit an empty Image leaves the stored image unchanged.
type MenuInput struct {
	Name        string
	PriceCents  int64
	Image       string
	Description string
}

type ServiceInput struct {
	Name       string
	PriceCents int64
	Image      string
}
