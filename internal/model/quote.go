package model

// Stats is the price summary for one market side.
type Stats struct {
	Avg   float64 `json:"avg"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Price float64 `json:"price"` // representative price for the side
}

// Quote holds price statistics for each market side of one type.
type Quote struct {
	Buy  Stats `json:"buy"`
	Sell Stats `json:"sell"`
	All  Stats `json:"all"`
}

// ZeroQuote is the quote for items that cannot be traded.
func ZeroQuote() Quote {
	return Quote{}
}

// IsZero reports whether every statistic on every side is zero.
func (q Quote) IsZero() bool {
	return q == Quote{}
}

// Scale returns the stats multiplied by n.
func (s Stats) Scale(n float64) Stats {
	return Stats{
		Avg:   s.Avg * n,
		Min:   s.Min * n,
		Max:   s.Max * n,
		Price: s.Price * n,
	}
}

// Add returns the element-wise sum of two stats.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Avg:   s.Avg + o.Avg,
		Min:   s.Min + o.Min,
		Max:   s.Max + o.Max,
		Price: s.Price + o.Price,
	}
}

// AddScaled returns q plus o multiplied by n on every side.
func (q Quote) AddScaled(o Quote, n float64) Quote {
	return Quote{
		Buy:  q.Buy.Add(o.Buy.Scale(n)),
		Sell: q.Sell.Add(o.Sell.Scale(n)),
		All:  q.All.Add(o.All.Scale(n)),
	}
}
