package model

import "time"

// FuelType is a sellable fuel category offered by a supplier's depot.
type FuelType struct {
	ID         string    `json:"id"`
	SupplierID string    `json:"supplier_id"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	CreatedAt  time.Time `json:"created_at"`
}

// PriceTier is one price bracket for a fuel type. The price applies to any
// order whose volume is at least MinVolume, up to the next tier's threshold.
// MinVolume values are unique per fuel type; the write path enforces this.
type PriceTier struct {
	ID           string    `json:"id"`
	FuelTypeID   string    `json:"fuel_type_id"`
	MinVolume    float64   `json:"min_volume"`
	PricePerUnit float64   `json:"price_per_unit"`
	CreatedAt    time.Time `json:"created_at"`
}
