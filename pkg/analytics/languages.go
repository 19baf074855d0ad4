package analytics

import (
	"sort"

	"github.com/matzehuels/ghinsight/pkg/integrations/github"
)

// TopLanguages is the number of languages kept in a distribution.
const TopLanguages = 10

// LanguageShare is one slice of the language chart.
type LanguageShare struct {
	Name    string  `json:"name"`
	Bytes   int64   `json:"bytes"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

// LanguageDistribution is a ranked byte breakdown across repositories.
//
// Percent values are relative to DisplayedTotal, the sum of the kept
// languages, so they add up to 100 even when Truncated is true.
type LanguageDistribution struct {
	Languages      []LanguageShare `json:"languages"`
	DisplayedTotal int64           `json:"displayed_total"`
	GrandTotal     int64           `json:"grand_total"`
	Truncated      bool            `json:"truncated"`
}

// SumLanguages adds up byte counts per language across repositories.
func SumLanguages(langs []github.RepoLanguages) map[string]int64 {
	totals := make(map[string]int64)
	for _, rl := range langs {
		for name, bytes := range rl.Languages {
			totals[name] += bytes
		}
	}
	return totals
}

// BuildLanguageDistribution ranks languages by total bytes, largest first,
// and keeps the top ten. Ties are broken by name.
func BuildLanguageDistribution(langs []github.RepoLanguages) LanguageDistribution {
	totals := SumLanguages(langs)

	shares := make([]LanguageShare, 0, len(totals))
	var dist LanguageDistribution
	for name, bytes := range totals {
		shares = append(shares, LanguageShare{Name: name, Bytes: bytes})
		dist.GrandTotal += bytes
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Bytes != shares[j].Bytes {
			return shares[i].Bytes > shares[j].Bytes
		}
		return shares[i].Name < shares[j].Name
	})
	if len(shares) > TopLanguages {
		shares = shares[:TopLanguages]
		dist.Truncated = true
	}

	for _, s := range shares {
		dist.DisplayedTotal += s.Bytes
	}
	for i := range shares {
		shares[i].Color = LanguageColor(shares[i].Name)
		if dist.DisplayedTotal > 0 {
			shares[i].Percent = float64(shares[i].Bytes) / float64(dist.DisplayedTotal) * 100
		}
	}
	dist.Languages = shares
	return dist
}
