// Package advisor recommends a pole length/weight search range from
// subjective rider feedback. It is a fixed decision table of linear
// adjustments and clamps, recomputed statelessly per call.
package advisor

import "pvmarket-backend/internal/domain"

type Experience string

const (
	ExperienceTooSoft  Experience = "too_soft"
	ExperiencePerfect  Experience = "perfect"
	ExperienceTooStiff Experience = "too_stiff"
)

// Clamp bounds for recommendations. The length floor is deliberately higher
// than the listing schema's 250 cm: the heuristic only advises on
// competition-length poles.
const (
	lengthMin = 365
	lengthMax = 520
	weightMin = 100
	weightMax = 210
)

type Input struct {
	CurrentLengthCM  int32      `json:"current_length_cm"`
	CurrentWeightLbs int32      `json:"current_weight_lbs"`
	Experience       Experience `json:"experience"`

	// Optional; zero means not provided.
	BodyWeightKG int32 `json:"body_weight_kg,omitempty"`
	GripHeightCM int32 `json:"grip_height_cm,omitempty"`
}

type Range struct {
	Min int32 `json:"min"`
	Max int32 `json:"max"`
}

type Recommendation struct {
	Length    Range    `json:"length"`
	Weight    Range    `json:"weight"`
	Reasoning []string `json:"reasoning"`
}

// Recommend applies the decision table to the rider's feedback. Both current
// pole specs are required; the experience rating must be one of the three
// known values.
func Recommend(in Input) (*Recommendation, error) {
	if in.CurrentLengthCM == 0 || in.CurrentWeightLbs == 0 {
		return nil, domain.Validationf("current pole length and weight are required")
	}

	var reasoning []string
	lengthLo, lengthHi := in.CurrentLengthCM, in.CurrentLengthCM
	weightLo, weightHi := in.CurrentWeightLbs, in.CurrentWeightLbs

	switch in.Experience {
	case ExperienceTooSoft:
		if in.BodyWeightKG > 0 && float64(in.BodyWeightKG) < float64(in.CurrentWeightLbs)*0.45 {
			lengthLo = in.CurrentLengthCM + 10
			lengthHi = in.CurrentLengthCM + 15
			reasoning = append(reasoning, "Siden staven føles for myk og vekten din er under stavens vektmerking, anbefaler vi en lengre stav.")
		} else {
			weightLo = in.CurrentWeightLbs + 5
			weightHi = in.CurrentWeightLbs + 10
			reasoning = append(reasoning, "Siden staven føles for myk, anbefaler vi en stivere stav med høyere vektmerking.")
		}
	case ExperienceTooStiff:
		weightLo = max32(weightMin, in.CurrentWeightLbs-10)
		weightHi = max32(weightMin, in.CurrentWeightLbs-5)
		reasoning = append(reasoning, "Siden staven føles for stiv, anbefaler vi en mykere stav med lavere vektmerking.")
	case ExperiencePerfect:
		lengthLo = in.CurrentLengthCM - 5
		lengthHi = in.CurrentLengthCM + 5
		weightLo = in.CurrentWeightLbs - 5
		weightHi = in.CurrentWeightLbs + 5
		reasoning = append(reasoning, "Siden din nåværende stav fungerer bra, ser vi etter lignende staver.")
	default:
		return nil, domain.Validationf("unknown experience rating %q", in.Experience)
	}

	rec := &Recommendation{
		Length: Range{Min: clamp32(lengthLo, lengthMin, lengthMax), Max: clamp32(lengthHi, lengthMin, lengthMax)},
		Weight: Range{Min: clamp32(weightLo, weightMin, weightMax), Max: clamp32(weightHi, weightMin, weightMax)},
	}

	// Grip-height notes are advisory text only; they never move the ranges.
	if in.GripHeightCM > 0 {
		ratio := float64(in.GripHeightCM) / float64(in.CurrentLengthCM)
		if ratio > 0.85 {
			reasoning = append(reasoning, "Du griper høyt på staven, som tyder på at du kan være klar for en lengre stav.")
		} else if ratio < 0.75 {
			reasoning = append(reasoning, "Du griper lavt på staven, som kan tyde på at du trenger mer kontroll.")
		}
	}

	rec.Reasoning = reasoning
	return rec, nil
}

// Filters converts a recommendation into search filters for listing discovery.
func (r *Recommendation) Filters() domain.SearchFilters {
	lMin, lMax := r.Length.Min, r.Length.Max
	wMin, wMax := r.Weight.Min, r.Weight.Max
	return domain.SearchFilters{
		LengthMin: &lMin,
		LengthMax: &lMax,
		WeightMin: &wMin,
		WeightMax: &wMax,
	}
}

func clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
