package domain

import "time"

type PoleStatus string

const (
	PoleStatusAvailable   PoleStatus = "available"
	PoleStatusRented      PoleStatus = "rented"
	PoleStatusReserved    PoleStatus = "reserved"
	PoleStatusForSale     PoleStatus = "for_sale"
	PoleStatusUnavailable PoleStatus = "unavailable"
)

// ValidPoleStatus reports whether s is one of the known lifecycle statuses.
func ValidPoleStatus(s PoleStatus) bool {
	switch s {
	case PoleStatusAvailable, PoleStatusRented, PoleStatusReserved, PoleStatusForSale, PoleStatusUnavailable:
		return true
	}
	return false
}

// Physical bounds for a pole listing. The advisor package narrows the
// length range further for its recommendations.
const (
	PoleLengthMinCM  = 250
	PoleLengthMaxCM  = 520
	PoleWeightMinLbs = 50
	PoleWeightMaxLbs = 210
)

type Pole struct {
	ID              int64       `json:"id"`
	OwnerID         string      `json:"owner_id"`
	Owner           *OwnerInfo  `json:"owner,omitempty"` // Populated on detail fetch
	LengthCM        int32       `json:"length_cm"`
	WeightLbs       int32       `json:"weight_lbs"`
	Brand           string      `json:"brand"`
	ConditionRating int32       `json:"condition_rating"`
	Status          PoleStatus  `json:"status"`
	Municipality    string      `json:"municipality"`
	PostalCode      string      `json:"postal_code"`
	FlexRating      *string     `json:"flex_rating,omitempty"`
	ProductionYear  *int32      `json:"production_year,omitempty"`
	SerialNumber    *string     `json:"serial_number,omitempty"`
	InternalNotes   *string     `json:"internal_notes,omitempty"` // Visible to the owner only
	PriceWeekly     *int32      `json:"price_weekly,omitempty"`
	PriceSale       *int32      `json:"price_sale,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OwnerInfo is the public slice of the owner's profile shown on a listing.
type OwnerInfo struct {
	Name     *string `json:"name,omitempty"`
	Email    string  `json:"email"`
	ClubName *string `json:"club_name,omitempty"`
}

type SortOrder string

const (
	// SortByLength is the public browse default.
	SortByLength SortOrder = "length"
	// SortByNewest orders by creation time, newest first.
	SortByNewest SortOrder = "newest"
)

// SearchFilters is the sparse filter set for listing discovery. Each present
// field contributes exactly one conjunctive predicate; absent fields impose
// no constraint. Range bounds are inclusive.
type SearchFilters struct {
	LengthMin    *int32
	LengthMax    *int32
	WeightMin    *int32
	WeightMax    *int32
	Municipality string
	Brand        string
	ConditionMin *int32
	Statuses     []PoleStatus

	// RadiusKM is accepted from clients but not consumed by any query path.
	RadiusKM *int32
}
