package api

import (
	"math"

	"github.com/rickgao/eve-appraisal/internal/model"
)

// ToQuote converts marketstat statistics to a quote. The all side is priced
// at its percentile. Within a single system buy is priced at the highest bid
// and sell at the lowest ask; across regions both use the percentile.
func (t *MarketStatType) ToQuote(aggregate bool) model.Quote {
	q := model.Quote{
		Buy:  t.Buy.stats(t.Buy.Max),
		Sell: t.Sell.stats(t.Sell.Min),
		All:  t.All.stats(t.All.Percentile),
	}
	if aggregate {
		q.Buy.Price = t.Buy.Percentile
		q.Sell.Price = t.Sell.Percentile
	}
	return q
}

func (s MarketStatSide) stats(price float64) model.Stats {
	return model.Stats{
		Avg:   s.Avg,
		Min:   s.Min,
		Max:   s.Max,
		Price: price,
	}
}

// QuotesByType converts every type in the response.
func (r *MarketStatResponse) QuotesByType(aggregate bool) map[int64]model.Quote {
	quotes := make(map[int64]model.Quote, len(r.Types))
	for i := range r.Types {
		quotes[r.Types[i].ID] = r.Types[i].ToQuote(aggregate)
	}
	return quotes
}

type sideAccumulator struct {
	min, max, sum float64
	n             int
}

func (a *sideAccumulator) add(price float64) {
	if a.n == 0 || price < a.min {
		a.min = price
	}
	if a.n == 0 || price > a.max {
		a.max = price
	}
	a.sum += price
	a.n++
}

func (a *sideAccumulator) stats(price float64) model.Stats {
	return model.Stats{
		Avg:   a.sum / float64(a.n),
		Min:   a.min,
		Max:   a.max,
		Price: price,
	}
}

// QuotesByType converts item price rows to quotes. Buy is priced at the
// highest bid and sell at the lowest ask; the all side is the mean of the
// buy and sell averages. Types without both a buy and a sell row, and rows
// that fail to parse, are left out.
func (r *ItemPricesResponse) QuotesByType() map[int64]model.Quote {
	type sides struct {
		buy, sell sideAccumulator
	}
	byType := make(map[int64]*sides)

	for _, row := range r.Rows() {
		id, err := row.TypeID.Int64()
		if err != nil {
			continue
		}
		price, err := row.Price.Float64()
		if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
			continue
		}

		s, ok := byType[id]
		if !ok {
			s = &sides{}
			byType[id] = s
		}
		switch row.BuySell {
		case SideBuy:
			s.buy.add(price)
		case SideSell:
			s.sell.add(price)
		}
	}

	quotes := make(map[int64]model.Quote, len(byType))
	for id, s := range byType {
		if s.buy.n == 0 || s.sell.n == 0 {
			continue
		}
		buy := s.buy.stats(s.buy.max)
		sell := s.sell.stats(s.sell.min)
		avg := (buy.Avg + sell.Avg) / 2
		quotes[id] = model.Quote{
			Buy:  buy,
			Sell: sell,
			All:  model.Stats{Avg: avg, Min: avg, Max: avg, Price: avg},
		}
	}
	return quotes
}
