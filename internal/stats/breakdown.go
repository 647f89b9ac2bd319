package stats

import (
	"math"
	"sort"
	"time"

	"github.com/limbo/hydration/pkg/entity"
)

type BeverageShare struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	TotalMl int    `json:"total_ml"`
	Percent int    `json:"percent"`
}

// BeverageBreakdown gives every beverage type's share of the intake inside the
// lookback window, largest first. Percentages are rounded independently and may
// not add up to exactly 100. An empty window yields an empty breakdown.
func BeverageBreakdown(logs []entity.BeverageLog, now time.Time) []BeverageShare {
	sums := make(map[string]int)
	grand := 0
	for _, l := range inLookback(logs, now) {
		sums[l.BeverageType] += l.AmountMl
		grand += l.AmountMl
	}
	shares := make([]BeverageShare, 0, len(sums))
	if grand == 0 {
		return shares
	}
	for typ, total := range sums {
		bev, _ := LookupBeverage(typ)
		shares = append(shares, BeverageShare{
			Type:    typ,
			Name:    bev.Name,
			Color:   bev.Color,
			TotalMl: total,
			Percent: int(math.Round(float64(total) * 100 / float64(grand))),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].TotalMl != shares[j].TotalMl {
			return shares[i].TotalMl > shares[j].TotalMl
		}
		return shares[i].Type < shares[j].Type
	})
	return shares
}
