package generator

import (
	"pagespec_server/internal/seeded"
	"pagespec_server/internal/spec"
	"pagespec_server/internal/types"
)

// Strategy names a transform applied to specification arrays.
type Strategy string

const (
	StrategyNone            Strategy = "none"
	StrategyReverseFeatures Strategy = "reverse-features"
	StrategyShufflePricing  Strategy = "shuffle-pricing"
	StrategyBoth            Strategy = "both"
	// StrategyAuto picks transforms from seed parity: even seeds reverse the
	// features, multiples of three shuffle the pricing plans.
	StrategyAuto Strategy = "auto"
)

// ParseStrategy validates a strategy name. The empty string means auto.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case "", StrategyAuto:
		return StrategyAuto, nil
	case StrategyNone, StrategyReverseFeatures, StrategyShufflePricing, StrategyBoth:
		return Strategy(name), nil
	}
	return StrategyAuto, types.NewMalformedInputError("variationStrategy", name, "unknown strategy")
}

// Variation records which transforms actually ran.
type Variation struct {
	Strategy         Strategy
	ReversedFeatures bool
	ShuffledPricing  bool
}

// ApplyVariation mutates s in place. Transforms whose target block is
// absent are skipped.
func ApplyVariation(s *spec.PageSpec, strategy Strategy, seed int64) Variation {
	v := Variation{Strategy: strategy}

	var reverse, shuffle bool
	switch strategy {
	case StrategyReverseFeatures:
		reverse = true
	case StrategyShufflePricing:
		shuffle = true
	case StrategyBoth:
		reverse, shuffle = true, true
	case StrategyAuto:
		reverse = seed%2 == 0
		shuffle = seed%3 == 0
	}

	if reverse && s.Features.Items != nil {
		s.Features.Items = seeded.Reverse(s.Features.Items)
		v.ReversedFeatures = true
	}
	if shuffle && s.Pricing != nil && s.Pricing.Plans != nil {
		s.Pricing.Plans = seeded.Shuffle(s.Pricing.Plans, seed)
		v.ShuffledPricing = true
	}
	return v
}
