package controller

import (
	"fmt"
	"time"

	"github.com/voyago/voyago/internal/santsg"
	"github.com/voyago/voyago/internal/search"
)

// View is the active top-level view. Exactly one is active at a time and
// transitions happen only through the named actions below.
type View int

const (
	ViewSearch View = iota
	ViewResults
	ViewDetail
)

const (
	productTypeHotel   = 2
	requestCulture     = "en-US"
	defaultNationality = "TR"
	defaultCurrency    = "EUR"

	dateLayout = "2006-01-02"
)

// Controller owns the application-level state: the active view, reference
// data, the result list, the selected hotel, and the global loading and
// error flags. It performs no I/O; the UI dispatches network calls and
// feeds the outcomes back through the Apply* actions.
type Controller struct {
	view    View
	loading bool

	fatal  bool
	errMsg string

	nationalities []santsg.Nationality
	currencies    []santsg.Currency
	nationality   string
	currency      string

	results     []santsg.Hotel
	haveResults bool
	selected    *santsg.Hotel
	lastSearch  *search.Request
}

// New returns a controller waiting for the initial reference data.
func New() *Controller {
	return &Controller{view: ViewSearch, loading: true}
}

// ApplyReferenceData installs the joined result of the two startup
// fetches. A nil err selects defaults (TR nationality, EUR currency, or
// the first available); a non-nil err is fatal: no partial UI is shown and
// the only recovery is Retry at the app layer.
func (c *Controller) ApplyReferenceData(nats []santsg.Nationality, curs []santsg.Currency, err error) {
	c.loading = false
	if err != nil {
		c.fatal = true
		c.errMsg = "Initial data could not be loaded. Check that the API is reachable and restart."
		return
	}
	c.fatal = false
	c.errMsg = ""
	c.nationalities = nats
	c.currencies = curs

	c.nationality = ""
	for _, n := range nats {
		if n.ID == defaultNationality {
			c.nationality = n.ID
			break
		}
	}
	if c.nationality == "" && len(nats) > 0 {
		c.nationality = nats[0].ID
	}

	c.currency = ""
	for _, cur := range curs {
		if cur.Code == defaultCurrency {
			c.currency = cur.Code
			break
		}
	}
	if c.currency == "" && len(curs) > 0 {
		c.currency = curs[0].Code
	}
}

// SetNationality switches the active nationality selection.
func (c *Controller) SetNationality(id string) { c.nationality = id }

// SetCurrency switches the active currency selection.
func (c *Controller) SetCurrency(code string) { c.currency = code }

// BeginSearch gates and assembles a price search. It returns the remote
// payload, whether to dispatch to the by-hotel endpoint, and whether the
// search was accepted. Re-entrant calls while loading are ignored.
func (c *Controller) BeginSearch(req search.Request) (santsg.PriceSearchRequest, bool, bool) {
	if c.loading {
		return santsg.PriceSearchRequest{}, false, false
	}
	nights, err := nightCount(req.CheckIn, req.CheckOut)
	if err != nil {
		c.errMsg = "Invalid date range."
		return santsg.PriceSearchRequest{}, false, false
	}

	reqCopy := req
	c.lastSearch = &reqCopy
	c.loading = true
	c.errMsg = ""

	payload := santsg.PriceSearchRequest{
		CheckAllotment:    true,
		CheckStopSale:     true,
		GetOnlyBestOffers: true,
		ProductType:       productTypeHotel,
		RoomCriteria:      req.RoomCriteria,
		Nationality:       c.nationality,
		CheckIn:           req.CheckIn,
		Night:             nights,
		Currency:          c.currency,
		Culture:           requestCulture,
	}

	byHotel := req.LocationType == santsg.LocationTypeHotel
	if byHotel {
		payload.Products = []string{req.LocationID}
	} else {
		payload.ArrivalLocations = []santsg.ArrivalLocation{{ID: req.LocationID, Type: req.LocationType}}
	}
	return payload, byHotel, true
}

// ApplySearchResults stores the outcome of a dispatched search. Success
// always transitions to the results view; an empty list renders an
// explicit empty state there rather than silently staying on search.
func (c *Controller) ApplySearchResults(hotels []santsg.Hotel, err error) {
	c.loading = false
	if err != nil {
		c.errMsg = "Search failed. Please try again."
		return
	}
	c.results = hotels
	c.haveResults = true
	c.view = ViewResults
}

// SelectHotel gates a detail fetch for the given product id.
func (c *Controller) SelectHotel(id string) bool {
	if c.loading || id == "" {
		return false
	}
	c.loading = true
	c.errMsg = ""
	return true
}

// ApplyHotelDetail stores a fetched detail projection and moves to the
// detail view, or records a recoverable error.
func (c *Controller) ApplyHotelDetail(hotel *santsg.Hotel, err error) {
	c.loading = false
	if err != nil || hotel == nil {
		c.errMsg = "Hotel details could not be loaded."
		return
	}
	c.selected = hotel
	c.view = ViewDetail
}

// ClearError dismisses a recoverable error message.
func (c *Controller) ClearError() { c.errMsg = "" }

// BackToSearch leaves the current view for the search form, clearing the
// error and all state owned by the views being left.
func (c *Controller) BackToSearch() {
	c.view = ViewSearch
	c.errMsg = ""
	c.results = nil
	c.haveResults = false
	c.selected = nil
}

// BackToResults leaves the detail view, clearing the error and the
// selected hotel.
func (c *Controller) BackToResults() {
	c.view = ViewResults
	c.errMsg = ""
	c.selected = nil
}

// View returns the active view.
func (c *Controller) View() View { return c.view }

// Loading reports whether a controller-initiated call is in flight.
func (c *Controller) Loading() bool { return c.loading }

// Err returns the current global error message, empty when none.
func (c *Controller) Err() string { return c.errMsg }

// Fatal reports whether the initial load failed; no partial UI is shown.
func (c *Controller) Fatal() bool { return c.fatal }

// Results returns the last search's hotels.
func (c *Controller) Results() []santsg.Hotel { return c.results }

// HaveResults distinguishes "searched, zero hits" from "never searched".
func (c *Controller) HaveResults() bool { return c.haveResults }

// Selected returns the hotel shown in the detail view.
func (c *Controller) Selected() *santsg.Hotel { return c.selected }

// LastSearch returns the most recently accepted search request.
func (c *Controller) LastSearch() *search.Request { return c.lastSearch }

// Nationalities returns the reference nationality list.
func (c *Controller) Nationalities() []santsg.Nationality { return c.nationalities }

// Currencies returns the reference currency list.
func (c *Controller) Currencies() []santsg.Currency { return c.currencies }

// Nationality returns the selected nationality id.
func (c *Controller) Nationality() string { return c.nationality }

// Currency returns the selected currency code.
func (c *Controller) Currency() string { return c.currency }

// NationalityName resolves the selected nationality's display name.
func (c *Controller) NationalityName() string {
	for _, n := range c.nationalities {
		if n.ID == c.nationality {
			return n.Name
		}
	}
	return c.nationality
}

// CurrencyName resolves the selected currency's display name.
func (c *Controller) CurrencyName() string {
	for _, cur := range c.currencies {
		if cur.Code == c.currency {
			return cur.Name
		}
	}
	return c.currency
}

func nightCount(checkIn, checkOut string) (int, error) {
	start, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0, fmt.Errorf("parse check-in: %w", err)
	}
	end, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0, fmt.Errorf("parse check-out: %w", err)
	}
	nights := int(end.Sub(start) / (24 * time.Hour))
	if nights <= 0 {
		return 0, fmt.Errorf("check-out %s not after check-in %s", checkOut, checkIn)
	}
	return nights, nil
}
