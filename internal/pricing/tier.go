// Package pricing resolves tiered depot prices. All functions are pure:
// they sort and scan their own copies of the input and never touch a
// database or mutate their arguments, so they are safe to call from any
// number of request handlers at once.
package pricing

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"fuelmarket/internal/model"
)

// ErrNoTiersConfigured is returned when a price is requested for a fuel
// type that has no tiers at all. Callers should treat the fuel type as
// unavailable rather than guess a price.
var ErrNoTiersConfigured = errors.New("no price tiers configured")

// TierRange pairs a tier with its display label, e.g. "1000L - 4999L".
type TierRange struct {
	Tier  model.PriceTier `json:"tier"`
	Label string          `json:"label"`
}

// CoerceMinVolume turns a user-entered minimum volume into a number.
// Supplier pricing forms submit this field as a number, a string, or not
// at all; anything that does not parse cleanly becomes 0. This is the one
// permissive rule in the package, kept at the boundary so the resolver
// itself only ever sees clean values.
func CoerceMinVolume(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		return f
	case nil:
		return 0
	default:
		return 0
	}
}

// Normalize returns a copy of tiers stable-sorted ascending by MinVolume.
// Original order is preserved between equal thresholds; equal thresholds
// are a data-entry anomaly the write path rejects, not something this
// function corrects.
func Normalize(tiers []model.PriceTier) []model.PriceTier {
	out := make([]model.PriceTier, len(tiers))
	copy(out, tiers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MinVolume < out[j].MinVolume
	})
	return out
}

// ComputeRanges sorts the tiers and labels each with the volume span its
// price covers. A tier's range ends one unit below the next tier's
// threshold; the last tier, or any tier whose successor does not strictly
// increase, gets an open-ended "<min><unit>+" label. The result has the
// same cardinality as the input, in ascending MinVolume order.
func ComputeRanges(tiers []model.PriceTier, unit string) []TierRange {
	sorted := Normalize(tiers)
	out := make([]TierRange, 0, len(sorted))
	for i, t := range sorted {
		label := fmt.Sprintf("%s%s+", formatVolume(t.MinVolume), unit)
		if i+1 < len(sorted) && sorted[i+1].MinVolume > t.MinVolume {
			label = fmt.Sprintf("%s%s - %s%s",
				formatVolume(t.MinVolume), unit,
				formatVolume(sorted[i+1].MinVolume-1), unit)
		}
		out = append(out, TierRange{Tier: t, Label: label})
	}
	return out
}

// PriceForVolume selects the price of the tier with the greatest MinVolume
// not exceeding volume. A volume below every threshold is priced at the
// lowest tier rather than rejected. A single tier acts as a flat price for
// any volume.
func PriceForVolume(tiers []model.PriceTier, volume float64) (float64, error) {
	if len(tiers) == 0 {
		return 0, ErrNoTiersConfigured
	}
	sorted := Normalize(tiers)
	price := sorted[0].PricePerUnit
	for _, t := range sorted {
		if t.MinVolume > volume {
			break
		}
		price = t.PricePerUnit
	}
	return price, nil
}

// formatVolume renders thresholds without a trailing ".0" for whole values.
func formatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
