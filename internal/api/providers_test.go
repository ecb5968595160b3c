package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetMarketStat(t *testing.T) {
	t.Run("single system", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/marketstat" {
				t.Errorf("path = %q, want %q", r.URL.Path, "/marketstat")
			}
			q := r.URL.Query()
			if diff := cmp.Diff([]string{"34", "35"}, q["typeid"]); diff != "" {
				t.Errorf("typeid mismatch (-want +got):\n%s", diff)
			}
			if q.Get("usesystem") != "30000142" {
				t.Errorf("usesystem = %q, want %q", q.Get("usesystem"), "30000142")
			}
			if len(q["regionlimit"]) != 0 {
				t.Errorf("regionlimit = %v, want none", q["regionlimit"])
			}
			w.Header().Set("Content-Type", "application/xml")
			w.Write([]byte(marketStatXML))
		}))
		defer server.Close()

		c := NewClient(server.URL, "")
		resp, err := c.GetMarketStat(context.Background(), MarketStatOptions{
			TypeIDs:     []int64{34, 35},
			SystemID:    30000142,
			RegionLimit: []int64{10000002},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Types) != 1 || resp.Types[0].ID != 34 {
			t.Errorf("Types = %+v, want one type 34", resp.Types)
		}
	})

	t.Run("region limits", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if diff := cmp.Diff([]string{"10000002", "10000042"}, q["regionlimit"]); diff != "" {
				t.Errorf("regionlimit mismatch (-want +got):\n%s", diff)
			}
			if q.Get("usesystem") != "" {
				t.Errorf("usesystem = %q, want empty", q.Get("usesystem"))
			}
			w.Write([]byte(`<evec_api><marketstat></marketstat></evec_api>`))
		}))
		defer server.Close()

		c := NewClient(server.URL, "")
		resp, err := c.GetMarketStat(context.Background(), MarketStatOptions{
			TypeIDs:     []int64{34},
			SystemID:    -1,
			RegionLimit: []int64{10000002, 10000042},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Types) != 0 {
			t.Errorf("len(Types) = %d, want 0", len(resp.Types))
		}
	})

	t.Run("invalid XML", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<evec_api><marketstat>`))
		}))
		defer server.Close()

		c := NewClient(server.URL, "")
		_, err := c.GetMarketStat(context.Background(), MarketStatOptions{TypeIDs: []int64{34}})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "unmarshal") {
			t.Errorf("error should contain 'unmarshal', got %v", err)
		}
	})
}

func TestGetItemPrices(t *testing.T) {
	t.Run("with system and char name", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/item_prices2.json" {
				t.Errorf("path = %q, want %q", r.URL.Path, "/item_prices2.json")
			}
			q := r.URL.Query()
			if q.Get("type_ids") != "34,35" {
				t.Errorf("type_ids = %q, want %q", q.Get("type_ids"), "34,35")
			}
			if q.Get("buysell") != "a" {
				t.Errorf("buysell = %q, want %q", q.Get("buysell"), "a")
			}
			if q.Get("solarsystem_ids") != "30000142" {
				t.Errorf("solarsystem_ids = %q, want %q", q.Get("solarsystem_ids"), "30000142")
			}
			if q.Get("char_name") != "appraiser" {
				t.Errorf("char_name = %q, want %q", q.Get("char_name"), "appraiser")
			}
			w.Write([]byte(`{"emd":{"result":[{"row":{"buysell":"s","typeID":"34","price":"5"}}]}}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, "")
		resp, err := c.GetItemPrices(context.Background(), ItemPricesOptions{
			TypeIDs:  []int64{34, 35},
			SystemID: 30000142,
			CharName: "appraiser",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rows := resp.Rows()
		if len(rows) != 1 || rows[0].BuySell != SideSell {
			t.Errorf("Rows() = %+v, want one sell row", rows)
		}
	})

	t.Run("aggregate omits system", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if _, ok := q["solarsystem_ids"]; ok {
				t.Errorf("solarsystem_ids should not be sent, got %q", q.Get("solarsystem_ids"))
			}
			if _, ok := q["char_name"]; ok {
				t.Errorf("char_name should not be sent, got %q", q.Get("char_name"))
			}
			w.Write([]byte(`{"emd":{"result":[]}}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, "")
		if _, err := c.GetItemPrices(context.Background(), ItemPricesOptions{TypeIDs: []int64{34}, SystemID: -1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not valid json`))
		}))
		defer server.Close()

		c := NewClient(server.URL, "")
		_, err := c.GetItemPrices(context.Background(), ItemPricesOptions{TypeIDs: []int64{34}})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "unmarshal") {
			t.Errorf("error should contain 'unmarshal', got %v", err)
		}
	})
}
