package model

import (
	"fmt"
	"strconv"
)

// TradeHubSystemID is the pseudo system ID of the trade hub aggregate scope.
const TradeHubSystemID int64 = -1

// TradeHubRegions are the regions around the five main trade hubs:
// The Forge (Jita), Metropolis (Hek), Heimatar (Rens), Sinq Laison (Dodixie)
// and Domain (Amarr).
var TradeHubRegions = []int64{10000002, 10000042, 10000030, 10000032, 10000043}

// Scope selects which market prices are read from.
type Scope struct {
	SystemID int64  `json:"system_id"` // TradeHubSystemID for the aggregate
	Name     string `json:"name"`
}

// Markets lists the scopes an appraisal may be priced against.
var Markets = []Scope{
	{SystemID: TradeHubSystemID, Name: "Trade Hub Regions"},
	{SystemID: 30000142, Name: "Jita"},
	{SystemID: 30002187, Name: "Amarr"},
	{SystemID: 30002659, Name: "Dodixie"},
	{SystemID: 30002510, Name: "Rens"},
	{SystemID: 30002053, Name: "Hek"},
}

// DefaultScope is Jita.
var DefaultScope = Markets[1]

// LookupScope returns the known market with the given system ID.
func LookupScope(systemID int64) (Scope, bool) {
	for _, s := range Markets {
		if s.SystemID == systemID {
			return s, true
		}
	}
	return Scope{}, false
}

// IsAggregate reports whether the scope spans the trade hub regions.
func (s Scope) IsAggregate() bool {
	return s.SystemID == TradeHubSystemID
}

// Key is the scope part of a cache key.
func (s Scope) Key() string {
	return strconv.FormatInt(s.SystemID, 10)
}

// CacheKey returns the cache key for a type priced in this scope.
func (s Scope) CacheKey(typeID int64) string {
	return fmt.Sprintf("%s:%d", s.Key(), typeID)
}

func (s Scope) String() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Key()
}
