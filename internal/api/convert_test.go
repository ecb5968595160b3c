package api

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rickgao/eve-appraisal/internal/model"
)

const marketStatXML = `<?xml version="1.0" encoding="utf-8"?>
<evec_api version="2.0" method="marketstat_xml">
  <marketstat>
    <type id="34">
      <buy><volume>100</volume><avg>4.5</avg><max>5.00</max><min>4.00</min><stddev>0.2</stddev><median>4.5</median><percentile>4.9</percentile></buy>
      <sell><volume>200</volume><avg>5.5</avg><max>7.00</max><min>5.10</min><stddev>0.3</stddev><median>5.5</median><percentile>5.2</percentile></sell>
      <all><volume>300</volume><avg>5.0</avg><max>7.00</max><min>4.00</min><stddev>0.4</stddev><median>5.0</median><percentile>4.8</percentile></all>
    </type>
  </marketstat>
</evec_api>`

func TestMarketStatType_ToQuote(t *testing.T) {
	var resp MarketStatResponse
	if err := xml.Unmarshal([]byte(marketStatXML), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Types) != 1 {
		t.Fatalf("len(Types) = %d, want 1", len(resp.Types))
	}

	t.Run("single system", func(t *testing.T) {
		want := model.Quote{
			Buy:  model.Stats{Avg: 4.5, Min: 4, Max: 5, Price: 5},
			Sell: model.Stats{Avg: 5.5, Min: 5.1, Max: 7, Price: 5.1},
			All:  model.Stats{Avg: 5, Min: 4, Max: 7, Price: 4.8},
		}
		if diff := cmp.Diff(want, resp.Types[0].ToQuote(false)); diff != "" {
			t.Errorf("ToQuote(false) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("aggregate", func(t *testing.T) {
		q := resp.Types[0].ToQuote(true)
		if q.Buy.Price != 4.9 {
			t.Errorf("Buy.Price = %v, want 4.9", q.Buy.Price)
		}
		if q.Sell.Price != 5.2 {
			t.Errorf("Sell.Price = %v, want 5.2", q.Sell.Price)
		}
		if q.All.Price != 4.8 {
			t.Errorf("All.Price = %v, want 4.8", q.All.Price)
		}
	})
}

func TestItemPricesResponse_QuotesByType(t *testing.T) {
	body := `{"emd":{"version":2,"result":[
		{"row":{"buysell":"s","typeID":"34","solarsystemID":"30000142","price":"5.10","updated":"2014-01-01 00:00:00"}},
		{"row":{"buysell":"b","typeID":"34","solarsystemID":"30000142","price":"4.90","updated":"2014-01-01 00:00:00"}},
		{"row":{"buysell":"s","typeID":35,"price":10}},
		{"row":{"buysell":"b","typeID":35,"price":8}},
		{"row":{"buysell":"s","typeID":"36","price":"100"}},
		{"row":{"buysell":"b","typeID":"bogus","price":"1"}},
		{"row":{"buysell":"b","typeID":"37","price":"n/a"}}
	]}}`

	var resp ItemPricesResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	quotes := resp.QuotesByType()

	want := map[int64]model.Quote{
		34: {
			Buy:  model.Stats{Avg: 4.9, Min: 4.9, Max: 4.9, Price: 4.9},
			Sell: model.Stats{Avg: 5.1, Min: 5.1, Max: 5.1, Price: 5.1},
			All:  model.Stats{Avg: 5, Min: 5, Max: 5, Price: 5},
		},
		35: {
			Buy:  model.Stats{Avg: 8, Min: 8, Max: 8, Price: 8},
			Sell: model.Stats{Avg: 10, Min: 10, Max: 10, Price: 10},
			All:  model.Stats{Avg: 9, Min: 9, Max: 9, Price: 9},
		},
	}
	if diff := cmp.Diff(want, quotes); diff != "" {
		t.Errorf("QuotesByType() mismatch (-want +got):\n%s", diff)
	}
}

func TestItemPricesResponse_MultipleRowsPerSide(t *testing.T) {
	body := `{"emd":{"result":[
		{"row":{"buysell":"s","typeID":"34","price":"6"}},
		{"row":{"buysell":"s","typeID":"34","price":"4"}},
		{"row":{"buysell":"b","typeID":"34","price":"2"}},
		{"row":{"buysell":"b","typeID":"34","price":"3"}}
	]}}`

	var resp ItemPricesResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	q := resp.QuotesByType()[34]
	if q.Sell.Price != 4 {
		t.Errorf("Sell.Price = %v, want 4", q.Sell.Price)
	}
	if q.Buy.Price != 3 {
		t.Errorf("Buy.Price = %v, want 3", q.Buy.Price)
	}
	if q.Sell.Avg != 5 {
		t.Errorf("Sell.Avg = %v, want 5", q.Sell.Avg)
	}
	if q.All.Avg != 3.75 {
		t.Errorf("All.Avg = %v, want 3.75", q.All.Avg)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{`"5.10"`, 5.1, false},
		{`5.1`, 5.1, false},
		{`"abc"`, 0, true},
		{`null`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var n Number
			if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got, err := n.Float64()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Float64() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Float64() = %v, want %v", got, tt.want)
			}
		})
	}
}
