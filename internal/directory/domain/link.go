package domain

import (
	"fmt"
	"time"
)

// Column names one of the three directory columns.
type Column string

const (
	ColumnWBS        Column = "wbs"
	ColumnEnFacebook Column = "en_facebook"
	ColumnDeFacebook Column = "de_facebook"
)

// Columns lists the directory columns in display order.
var Columns = []Column{ColumnWBS, ColumnEnFacebook, ColumnDeFacebook}

// ParseColumn validates a column name from client input.
func ParseColumn(s string) (Column, error) {
	switch Column(s) {
	case ColumnWBS, ColumnEnFacebook, ColumnDeFacebook:
		return Column(s), nil
	}
	return "", fmt.Errorf("unknown directory column %q", s)
}

// Link is one card in the housing directory.
type Link struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	Column      Column    `json:"column" gorm:"column:col;index;not null"`
	Name        string    `json:"name" gorm:"not null"`
	URL         string    `json:"url" gorm:"not null"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Defaults are the built-in links seeded into a fresh user's directory.
var Defaults = map[Column][]Link{
	ColumnWBS: {
		{Name: "Degewo", URL: "https://www.degewo.de/wohnen", Description: "One of Berlin's largest, with many WBS apartments."},
		{Name: "HOWOGE", URL: "https://www.howoge.de/wohnungsangebote", Description: "Manages a large portfolio of social housing."},
		{Name: "GESOBAU", URL: "https://www.gesobau.de/wohnungssuche", Description: "Major provider in many districts."},
		{Name: "Stadt und Land", URL: "https://www.stadtundland.de", Description: "Significant stock of subsidized housing."},
		{Name: "WOGEHEG", URL: "https://www.wogeheg.de", Description: "Active in several Berlin boroughs."},
		{Name: "Berlinovo", URL: "https://www.berlinovo.de/en", Description: "Offers various subsidized housing options."},
	},
	ColumnEnFacebook: {
		{Name: "Berlin Housing", URL: "https://www.facebook.com/groups/316886635183491/", Description: "Apartments, rooms, sublets."},
		{Name: "Housing in Berlin", URL: "https://www.facebook.com/groups/berlin.housing.and.roommates", Description: "All types of housing."},
		{Name: "Flats in Berlin", URL: "https://www.facebook.com/groups/flatsinberlin", Description: "Apartments and rooms."},
		{Name: "Berlin Housing, Rooms, Apartments, Sublets", URL: "https://www.facebook.com/groups/156793591673300/", Description: "All types."},
		{Name: "Find Housing for Rent in Berlin", URL: "https://www.facebook.com/groups/houseberlin/", Description: "General rentals."},
		{Name: "Co-Housing in Berlin", URL: "https://www.facebook.com/search/groups?q=Co-Housing%20in%20Berlin", Description: "Shared living projects and WG flats."},
		{Name: "International Women in Berlin Housing", URL: "https://www.facebook.com/search/groups?q=International%20Women%20in%20Berlin%20Housing", Description: "Women-only listings."},
		{Name: "Berlin Student Flat Exchange", URL: "https://www.facebook.com/search/groups?q=Berlin%20Student%20Flat%20Exchange", Description: "Student-focused."},
		{Name: "Berlin Apartments & Rooms for Rent", URL: "https://www.facebook.com/groups/183048595060764/", Description: "Rooms and apartments."},
	},
	ColumnDeFacebook: {
		{Name: "WG & Wohnung Berlin", URL: "https://www.facebook.com/groups/wg.wohnung.berlin", Description: "WG rooms and apartments. Highly active."},
		{Name: "wg.wohnung.Berlin", URL: "https://www.facebook.com/groups/wg.wohnung.berlin/", Description: "WG rooms and apartments. Frequently mentioned in guides."},
		{Name: "Wohnungen in Berlin", URL: "https://www.facebook.com/groups/wohnenberlin/", Description: "Large, general-purpose housing group."},
		{Name: "WG-Zimmer & Wohnungen Berlin", URL: "https://www.facebook.com/groups/1705212493049107/", Description: "Focused on WG rooms. Active listings."},
		{Name: "Berliner WG-Zimmer", URL: "https://www.facebook.com/groups/251856141592447/", Description: "WG rooms only. Specialized for shared flats."},
		{Name: "Flatmate.Berlin", URL: "https://www.facebook.com/groups/flatmate.berlin", Description: "Finding flatmates. Shared living focused."},
		{Name: "Berlin.startup.flats & flatshares", URL: "https://www.facebook.com/groups/berlin.startup.flats", Description: "Young professionals. Sublets and flatshares."},
		{Name: "Zimmer / WG / Wohnung in Berlin", URL: "https://www.facebook.com/groups/easy.wg/", Description: "All types. Regular postings."},
		{Name: "Wohnung Berlin - privat & provisionsfrei", URL: "https://www.facebook.com/groups/158572641291/", Description: "No-commission private listings."},
		{Name: "Wohnungen mieten in Berlin", URL: "https://www.facebook.com/groups/1678546859106556/", Description: "Apartments for rent. General listings."},
	},
}
