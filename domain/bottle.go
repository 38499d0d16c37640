package domain

import (
	"time"

	"gorm.io/datatypes"
)

type SpiritType string

const (
	SpiritWhisky  SpiritType = "WHISKY"
	SpiritGin     SpiritType = "GIN"
	SpiritRum     SpiritType = "RUM"
	SpiritTequila SpiritType = "TEQUILA"
	SpiritVodka   SpiritType = "VODKA"
	SpiritBrandy  SpiritType = "BRANDY"
	SpiritCognac  SpiritType = "COGNAC"
	SpiritMezcal  SpiritType = "MEZCAL"
	SpiritLiqueur SpiritType = "LIQUEUR"
	SpiritOther   SpiritType = "OTHER"
)

var allSpiritTypes = [...]SpiritType{
	SpiritWhisky, SpiritGin, SpiritRum, SpiritTequila, SpiritVodka,
	SpiritBrandy, SpiritCognac, SpiritMezcal, SpiritLiqueur, SpiritOther,
}

// AllSpiritTypes returns the closed set of known spirit types in declaration order.
// The returned slice is a fresh copy.
func AllSpiritTypes() []SpiritType {
	out := make([]SpiritType, len(allSpiritTypes))
	copy(out, allSpiritTypes[:])
	return out
}

func (s SpiritType) Valid() bool {
	for _, st := range allSpiritTypes {
		if st == s {
			return true
		}
	}
	return false
}

type Flavor string

const (
	FlavorPeaty     Flavor = "PEATY"
	FlavorSmoky     Flavor = "SMOKY"
	FlavorFruity    Flavor = "FRUITY"
	FlavorSpicy     Flavor = "SPICY"
	FlavorHerbal    Flavor = "HERBAL"
	FlavorFloral    Flavor = "FLORAL"
	FlavorCitrus    Flavor = "CITRUS"
	FlavorSweet     Flavor = "SWEET"
	FlavorDry       Flavor = "DRY"
	FlavorOaky      Flavor = "OAKY"
	FlavorVanilla   Flavor = "VANILLA"
	FlavorCaramel   Flavor = "CARAMEL"
	FlavorNutty     Flavor = "NUTTY"
	FlavorChocolate Flavor = "CHOCOLATE"
)

var allFlavors = [...]Flavor{
	FlavorPeaty, FlavorSmoky, FlavorFruity, FlavorSpicy, FlavorHerbal, FlavorFloral, FlavorCitrus,
	FlavorSweet, FlavorDry, FlavorOaky, FlavorVanilla, FlavorCaramel, FlavorNutty, FlavorChocolate,
}

func (f Flavor) Valid() bool {
	for _, fl := range allFlavors {
		if fl == f {
			return true
		}
	}
	return false
}

type Region string

const (
	RegionIslay       Region = "ISLAY"
	RegionSpeyside    Region = "SPEYSIDE"
	RegionHighland    Region = "HIGHLAND"
	RegionLowland     Region = "LOWLAND"
	RegionCampbeltown Region = "CAMPBELTOWN"
	RegionBourbon     Region = "BOURBON"
	RegionRye         Region = "RYE"
	RegionJamaica     Region = "JAMAICA"
	RegionBarbados    Region = "BARBADOS"
	RegionMexico      Region = "MEXICO"
	RegionLondon      Region = "LONDON"
	RegionScandinavia Region = "SCANDINAVIA"
	RegionOther       Region = "OTHER"
)

var allRegions = [...]Region{
	RegionIslay, RegionSpeyside, RegionHighland, RegionLowland, RegionCampbeltown, RegionBourbon, RegionRye,
	RegionJamaica, RegionBarbados, RegionMexico, RegionLondon, RegionScandinavia, RegionOther,
}

func (r Region) Valid() bool {
	for _, rg := range allRegions {
		if rg == r {
			return true
		}
	}
	return false
}

// CREATE TABLE public.bottles (
//     id            TEXT PRIMARY KEY,
//     name          TEXT NOT NULL,
//     spirit_type   TEXT NOT NULL,
//     region        TEXT,
//     price         NUMERIC NOT NULL,
//     flavors       JSONB NOT NULL,
//     age_statement NUMERIC,
//     abv           NUMERIC,
//     description   TEXT,
//     image_url     TEXT,
//     embedding     JSONB,
//     created_at    TIMESTAMPTZ DEFAULT NOW(),
//     updated_at    TIMESTAMPTZ DEFAULT NOW()
// );

// Bottle is a catalog item. The recommendation engine only reads it.
type Bottle struct {
	ID           string                       `gorm:"column:id;primaryKey" json:"id"`
	Name         string                       `gorm:"column:name;type:text;index" json:"name"`
	SpiritType   SpiritType                   `gorm:"column:spirit_type;type:text;index:idx_bottle_type_region" json:"spirit_type"`
	Region       Region                       `gorm:"column:region;type:text;index:idx_bottle_type_region" json:"region,omitempty"`
	Price        float64                      `gorm:"column:price;type:numeric;index" json:"price"`
	Flavors      datatypes.JSONSlice[Flavor]  `gorm:"column:flavors;type:jsonb" json:"flavors"`
	AgeStatement *float64                     `gorm:"column:age_statement;type:numeric" json:"age_statement,omitempty"`
	ABV          *float64                     `gorm:"column:abv;type:numeric" json:"abv,omitempty"`
	Description  string                       `gorm:"column:description;type:text" json:"description,omitempty"`
	ImageURL     string                       `gorm:"column:image_url;type:text" json:"image_url,omitempty"`
	Embedding    datatypes.JSONSlice[float64] `gorm:"column:embedding;type:jsonb" json:"-"`
	CreatedAt    time.Time                    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time                    `gorm:"column:updated_at" json:"updated_at"`
}

func (Bottle) TableName() string {
	return "bottles"
}
