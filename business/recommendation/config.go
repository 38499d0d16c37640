package recommendation

import (
	"fmt"

	"bobTheBar/domain"
)

// Band is the half-open score interval [Low, High) a scorer emits into.
type Band struct {
	Low  float64
	High float64
}

// At maps strength in [0,1] into the band. Out of range strengths are
// clamped; the result is always strictly below High.
func (b Band) At(strength float64) float64 {
	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}
	return b.Low + (b.High-b.Low)*strength*bandCeiling
}

func (b Band) Contains(score float64) bool {
	return score >= b.Low && score < b.High
}

type Config struct {
	// SimilarityThreshold excludes near-duplicates of the collection; in (0,1].
	SimilarityThreshold float64

	TopFlavors int

	PriceLowerFactor float64
	PriceUpperFactor float64

	SimilarBand       Band
	PriceRangeBand    Band
	ComplementaryBand Band

	// SpiritTypes is the closed set the diversification scorer draws from.
	SpiritTypes []domain.SpiritType
}

const (
	defaultSimilarityThreshold = 0.8
	defaultTopFlavors          = 3
	defaultPriceLowerFactor    = 0.9
	defaultPriceUpperFactor    = 1.1

	// keeps Band.At strictly inside the half-open band
	bandCeiling = 0.999
)

var (
	SimilarBand       = Band{Low: 0.7, High: 0.9}
	PriceRangeBand    = Band{Low: 0.6, High: 0.8}
	ComplementaryBand = Band{Low: 0.5, High: 0.7}
)

func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: defaultSimilarityThreshold,
		TopFlavors:          defaultTopFlavors,
		PriceLowerFactor:    defaultPriceLowerFactor,
		PriceUpperFactor:    defaultPriceUpperFactor,
		SimilarBand:         SimilarBand,
		PriceRangeBand:      PriceRangeBand,
		ComplementaryBand:   ComplementaryBand,
		SpiritTypes:         domain.AllSpiritTypes(),
	}
}

// WithThreshold returns a copy of cfg using the given similarity threshold.
func (c Config) WithThreshold(threshold float64) Config {
	c.SimilarityThreshold = threshold
	return c
}

func (c Config) Validate() error {
	if !(c.SimilarityThreshold > 0 && c.SimilarityThreshold <= 1) {
		return fmt.Errorf("similarity threshold must be in (0,1], got %v", c.SimilarityThreshold)
	}
	if c.TopFlavors <= 0 {
		return fmt.Errorf("top flavors must be positive, got %d", c.TopFlavors)
	}
	if len(c.SpiritTypes) == 0 {
		return fmt.Errorf("spirit type table is empty")
	}
	return nil
}
