package rates

import "strings"

// Period names a compounding period.
type Period string

// Supported compounding periods.
const (
	Daily       Period = "daily"
	Biweekly    Period = "biweekly"
	Bimonthly   Period = "bimonthly"
	Monthly     Period = "monthly"
	Quarterly   Period = "quarterly"
	FourMonthly Period = "four-monthly"
	Semiannual  Period = "semiannual"
	Annual      Period = "annual"
)

// periodTable maps each period to its compounding periods per year. It is
// never written after package initialization.
var periodTable = map[Period]int{
	Daily:       365,
	Biweekly:    24,
	Bimonthly:   6,
	Monthly:     12,
	Quarterly:   4,
	FourMonthly: 3,
	Semiannual:  2,
	Annual:      1,
}

// periodOrder lists the periods from shortest to longest.
var periodOrder = []Period{Daily, Biweekly, Bimonthly, Monthly, Quarterly, FourMonthly, Semiannual, Annual}

var periodAliases = map[string]Period{
	"diaria":        Daily,
	"quincenal":     Biweekly,
	"bimestral":     Bimonthly,
	"mensual":       Monthly,
	"trimestral":    Quarterly,
	"cuatrimestral": FourMonthly,
	"semestral":     Semiannual,
	"anual":         Annual,
	"fourmonthly":   FourMonthly,
	"four_monthly":  FourMonthly,
	"semi-annual":   Semiannual,
}

// PeriodInfo describes one row of the period table.
type PeriodInfo struct {
	Key            Period `json:"key"`
	PeriodsPerYear int    `json:"periodsPerYear"`
}

// Periods returns the period table in order from shortest to longest period.
// The returned slice is a copy.
func Periods() []PeriodInfo {
	out := make([]PeriodInfo, 0, len(periodOrder))
	for _, p := range periodOrder {
		out = append(out, PeriodInfo{Key: p, PeriodsPerYear: periodTable[p]})
	}
	return out
}

// PeriodsPerYear returns the number of compounding periods per year for p.
func PeriodsPerYear(p Period) (int, bool) {
	n, ok := periodTable[p]
	return n, ok
}

// Valid reports whether p is in the period table.
func (p Period) Valid() bool {
	_, ok := periodTable[p]
	return ok
}

// NormalizePeriod maps a period key or one of its Spanish aliases to its
// canonical key. Unknown input is returned lowercased and trimmed so that
// Convert can report it.
func NormalizePeriod(s string) Period {
	key := strings.ToLower(strings.TrimSpace(s))
	if p, ok := periodAliases[key]; ok {
		return p
	}
	return Period(key)
}
