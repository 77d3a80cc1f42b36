package web

import (
	"os"

	"github.com/peterkuimelis/artheist/internal/game"
)

// DealInfo is the JSON representation of a fixed deal for the /api/deals endpoint.
type DealInfo struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Cards  []string `json:"cards"`
	Error  string   `json:"error,omitempty"` // set when the deal is not a permutation of the table
}

func loadDeals(path string) ([]DealInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	df, err := game.ParseDealYAML(data)
	if err != nil {
		return nil, err
	}

	deals := make([]DealInfo, 0, len(df.Deals))
	for i, entry := range df.Deals {
		di := DealInfo{
			Number: i + 1,
			Name:   entry.Name,
			Cards:  entry.Cards,
		}
		if _, err := entry.Deck(); err != nil {
			di.Error = err.Error()
		}
		deals = append(deals, di)
	}
	return deals, nil
}
