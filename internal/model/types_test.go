package model

import (
	"encoding/json"
	"testing"
)

func TestTags(t *testing.T) {
	t.Run("Has", func(t *testing.T) {
		tags := TagFitted | TagDestroyed
		if !tags.Has(TagFitted) {
			t.Error("expected TagFitted")
		}
		if tags.Has(TagDropped) {
			t.Error("unexpected TagDropped")
		}
		if !tags.Has(TagFitted | TagDestroyed) {
			t.Error("expected both tags")
		}
	})

	t.Run("String", func(t *testing.T) {
		tags := TagBlueprintCopy | TagDropped
		if got := tags.String(); got != "dropped,blueprint_copy" {
			t.Errorf("String() = %q, want %q", got, "dropped,blueprint_copy")
		}
		if got := Tags(0).String(); got != "" {
			t.Errorf("String() = %q, want empty", got)
		}
	})

	t.Run("JSON", func(t *testing.T) {
		data, err := json.Marshal(TagFitted | TagBlueprintCopy)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(data) != `["fitted","blueprint_copy"]` {
			t.Errorf("json = %s", data)
		}

		var got Tags
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got != TagFitted|TagBlueprintCopy {
			t.Errorf("Tags = %v, want %v", got, TagFitted|TagBlueprintCopy)
		}

		if err := json.Unmarshal([]byte(`["shiny"]`), &got); err == nil {
			t.Error("expected error for unknown tag")
		}
	})
}

func TestQuoteAddScaled(t *testing.T) {
	component := Quote{
		Buy:  Stats{Avg: 1, Min: 2, Max: 3, Price: 4},
		Sell: Stats{Avg: 5, Min: 6, Max: 7, Price: 8},
		All:  Stats{Avg: 9, Min: 10, Max: 11, Price: 12},
	}

	got := ZeroQuote().AddScaled(component, 10).AddScaled(component, 1)

	want := Quote{
		Buy:  Stats{Avg: 11, Min: 22, Max: 33, Price: 44},
		Sell: Stats{Avg: 55, Min: 66, Max: 77, Price: 88},
		All:  Stats{Avg: 99, Min: 110, Max: 121, Price: 132},
	}
	if got != want {
		t.Errorf("AddScaled = %+v, want %+v", got, want)
	}
	if got.IsZero() {
		t.Error("IsZero() = true for non-zero quote")
	}
	if !ZeroQuote().IsZero() {
		t.Error("IsZero() = false for ZeroQuote")
	}
}

func TestScope(t *testing.T) {
	hubs, ok := LookupScope(TradeHubSystemID)
	if !ok {
		t.Fatal("trade hub scope not found")
	}
	if !hubs.IsAggregate() {
		t.Error("trade hub scope should be aggregate")
	}
	if got := hubs.CacheKey(34); got != "-1:34" {
		t.Errorf("CacheKey = %q, want %q", got, "-1:34")
	}

	jita, ok := LookupScope(30000142)
	if !ok {
		t.Fatal("jita not found")
	}
	if jita.IsAggregate() {
		t.Error("jita should not be aggregate")
	}
	if got := jita.CacheKey(34); got != "30000142:34" {
		t.Errorf("CacheKey = %q, want %q", got, "30000142:34")
	}
	if DefaultScope != jita {
		t.Errorf("DefaultScope = %v, want Jita", DefaultScope)
	}

	if _, ok := LookupScope(12345); ok {
		t.Error("unexpected scope for unknown system")
	}
}

func TestLineItemRepresentativeValue(t *testing.T) {
	li := LineItem{Totals: Totals{Sell: 10, Buy: 12}}
	if got := li.RepresentativeValue(); got != 12 {
		t.Errorf("RepresentativeValue() = %v, want 12", got)
	}
}
