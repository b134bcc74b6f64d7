package santsg

import "strings"

// Location types used by autocomplete and price search.
const (
	LocationTypeCity  = 1
	LocationTypeHotel = 2
)

// Nationality mirrors an entry from /api/v1/lookups/nationalities.
type Nationality struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Currency mirrors an entry from /api/v1/lookups/currencies.
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LocationSuggestion is one autocomplete hit. Type distinguishes cities
// from individual hotels and selects the price-search endpoint later.
type LocationSuggestion struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    int    `json:"type"`
	Country string `json:"country"`
}

// IsHotel reports whether the suggestion points at a single property.
func (s LocationSuggestion) IsHotel() bool { return s.Type == LocationTypeHotel }

// RoomCriterion describes occupancy for one room in a search request.
type RoomCriterion struct {
	Adults    int   `json:"adults"`
	Children  int   `json:"children"`
	ChildAges []int `json:"childAges"`
}

// ArrivalLocation scopes a by-location search.
type ArrivalLocation struct {
	ID   string `json:"id"`
	Type int    `json:"type"`
}

// PriceSearchRequest is the payload for both price-search endpoints.
// ArrivalLocations is set for by-location searches, Products for by-hotel.
type PriceSearchRequest struct {
	CheckAllotment    bool              `json:"checkAllotment"`
	CheckStopSale     bool              `json:"checkStopSale"`
	GetOnlyBestOffers bool              `json:"getOnlyBestOffers"`
	ProductType       int               `json:"productType"`
	RoomCriteria      []RoomCriterion   `json:"roomCriteria"`
	Nationality       string            `json:"nationality"`
	CheckIn           string            `json:"checkIn"`
	Night             int               `json:"night"`
	Currency          string            `json:"currency"`
	Culture           string            `json:"culture"`
	ArrivalLocations  []ArrivalLocation `json:"arrivalLocations,omitempty"`
	Products          []string          `json:"products,omitempty"`
}

type priceSearchResponse struct {
	Body struct {
		Hotels []Hotel `json:"hotels"`
	} `json:"body"`
}

// Place is a named geographic entity (city or country).
type Place struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Price is a monetary amount in a specific currency.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Offer is one priced availability entry for a hotel.
type Offer struct {
	Price *Price `json:"price"`
}

// Presentation carries one block of descriptive text, possibly HTML.
type Presentation struct {
	Text string `json:"text"`
}

// TextCategory groups descriptive text under a heading.
type TextCategory struct {
	Name          string         `json:"name"`
	Presentations []Presentation `json:"presentations"`
}

// MediaFile points at a hotel photo.
type MediaFile struct {
	URLFull string `json:"urlFull"`
}

// Facility is a single amenity entry.
type Facility struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FacilityCategory groups facilities under a heading.
type FacilityCategory struct {
	Name       string     `json:"name"`
	Facilities []Facility `json:"facilities"`
}

// Season bundles the descriptive content for a hotel. Every field may be
// absent in API responses.
type Season struct {
	Name               string             `json:"name"`
	TextCategories     []TextCategory     `json:"textCategories"`
	MediaFiles         []MediaFile        `json:"mediaFiles"`
	FacilityCategories []FacilityCategory `json:"facilityCategories"`
}

// Hotel is the search-result and detail projection of a property. Nested
// fields are nullable; use the accessors instead of indexing directly.
type Hotel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Stars         float64  `json:"stars"`
	ThumbnailFull string   `json:"thumbnailFull"`
	City          *Place   `json:"city"`
	Country       *Place   `json:"country"`
	Amenities     []string `json:"amenities"`
	Offers        []Offer  `json:"offers"`
	Seasons       []Season `json:"seasons"`
}

// BestPrice returns the first offer's price when present.
func (h Hotel) BestPrice() (Price, bool) {
	for _, offer := range h.Offers {
		if offer.Price != nil {
			return *offer.Price, true
		}
	}
	return Price{}, false
}

// LocationLabel renders "City, Country" tolerating missing pieces.
func (h Hotel) LocationLabel() string {
	var parts []string
	if h.City != nil && strings.TrimSpace(h.City.Name) != "" {
		parts = append(parts, h.City.Name)
	}
	if h.Country != nil && strings.TrimSpace(h.Country.Name) != "" {
		parts = append(parts, h.Country.Name)
	}
	if len(parts) == 0 {
		return "Location unavailable"
	}
	return strings.Join(parts, ", ")
}

// PrimarySeason returns the first season when present.
func (h Hotel) PrimarySeason() (Season, bool) {
	if len(h.Seasons) == 0 {
		return Season{}, false
	}
	return h.Seasons[0], true
}

// FacilityNames flattens the primary season's facility categories into at
// most limit names. A non-positive limit means no cap.
func (h Hotel) FacilityNames(limit int) []string {
	season, ok := h.PrimarySeason()
	if !ok {
		return nil
	}
	var names []string
	for _, cat := range season.FacilityCategories {
		for _, fac := range cat.Facilities {
			if strings.TrimSpace(fac.Name) == "" {
				continue
			}
			names = append(names, fac.Name)
			if limit > 0 && len(names) >= limit {
				return names
			}
		}
	}
	return names
}

// FallbackNationalities is served when the lookup endpoint is unavailable.
func FallbackNationalities() []Nationality {
	return []Nationality{
		{ID: "TR", Name: "Türkiye"},
		{ID: "US", Name: "United States"},
		{ID: "DE", Name: "Germany"},
	}
}

// FallbackCurrencies is served when the lookup endpoint is unavailable.
func FallbackCurrencies() []Currency {
	return []Currency{
		{Code: "EUR", Name: "Euro"},
		{Code: "USD", Name: "US Dollar"},
		{Code: "TRY", Name: "Turkish Lira"},
	}
}
