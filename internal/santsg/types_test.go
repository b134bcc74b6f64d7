package santsg

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestHotel_AccessorsTolerateAbsentFields(t *testing.T) {
	var h Hotel

	if _, ok := h.BestPrice(); ok {
		t.Fatal("BestPrice on empty hotel = ok, want !ok")
	}
	if got := h.LocationLabel(); got != "Location unavailable" {
		t.Fatalf("LocationLabel = %q, want placeholder", got)
	}
	if _, ok := h.PrimarySeason(); ok {
		t.Fatal("PrimarySeason on empty hotel = ok, want !ok")
	}
	if names := h.FacilityNames(5); names != nil {
		t.Fatalf("FacilityNames = %#v, want nil", names)
	}

	// Offers may exist with a null price.
	h.Offers = []Offer{{Price: nil}, {Price: &Price{Amount: 120.5, Currency: "EUR"}}}
	price, ok := h.BestPrice()
	if !ok || price.Amount != 120.5 {
		t.Fatalf("BestPrice = %#v ok=%v, want 120.5", price, ok)
	}
}

func TestHotel_DecodeWithNullNestedFields(t *testing.T) {
	raw := `{
		"id": "h9",
		"name": "Cave Suites",
		"city": null,
		"country": {"id": "TR", "name": "Türkiye"},
		"offers": [{"price": null}],
		"seasons": [{"textCategories": null, "mediaFiles": null, "facilityCategories": [
			{"name": "Wellness", "facilities": [{"id": "f1", "name": "Spa"}, {"id": "f2", "name": ""}]}
		]}]
	}`

	var h Hotel
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if h.LocationLabel() != "Türkiye" {
		t.Fatalf("LocationLabel = %q, want Türkiye", h.LocationLabel())
	}
	if _, ok := h.BestPrice(); ok {
		t.Fatal("BestPrice with null price = ok, want !ok")
	}
	if got := h.FacilityNames(0); !reflect.DeepEqual(got, []string{"Spa"}) {
		t.Fatalf("FacilityNames = %#v, want [Spa]", got)
	}
}

func TestHotel_FacilityNamesHonorsLimit(t *testing.T) {
	h := Hotel{Seasons: []Season{{
		FacilityCategories: []FacilityCategory{
			{Name: "Pool", Facilities: []Facility{{Name: "Outdoor pool"}, {Name: "Indoor pool"}}},
			{Name: "Food", Facilities: []Facility{{Name: "Restaurant"}, {Name: "Bar"}}},
		},
	}}}

	got := h.FacilityNames(3)
	want := []string{"Outdoor pool", "Indoor pool", "Restaurant"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FacilityNames(3) = %#v, want %#v", got, want)
	}
}

func TestLocationSuggestion_IsHotel(t *testing.T) {
	if (LocationSuggestion{Type: LocationTypeCity}).IsHotel() {
		t.Fatal("city suggestion reported as hotel")
	}
	if !(LocationSuggestion{Type: LocationTypeHotel}).IsHotel() {
		t.Fatal("hotel suggestion not reported as hotel")
	}
}

func TestFallbackLists(t *testing.T) {
	nats := FallbackNationalities()
	if len(nats) == 0 || nats[0].ID != "TR" {
		t.Fatalf("FallbackNationalities = %#v, want TR first", nats)
	}
	curs := FallbackCurrencies()
	if len(curs) == 0 || curs[0].Code != "EUR" {
		t.Fatalf("FallbackCurrencies = %#v, want EUR first", curs)
	}
}
