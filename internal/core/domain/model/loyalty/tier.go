package loyalty

import (
	"github.com/shopspring/decimal"
)

// Tier is a loyalty level derived from lifetime earned coins.
type Tier string

const (
	Bronze   Tier = "bronze"
	Silver   Tier = "silver"
	Gold     Tier = "gold"
	Platinum Tier = "platinum"
)

// Total-earned thresholds at which a tier starts.
const (
	SilverThreshold   = 500
	GoldThreshold     = 2000
	PlatinumThreshold = 5000
)

// TierFor is a pure function of the lifetime earned coins.
func TierFor(totalEarned int) Tier {
	switch {
	case totalEarned >= PlatinumThreshold:
		return Platinum
	case totalEarned >= GoldThreshold:
		return Gold
	case totalEarned >= SilverThreshold:
		return Silver
	default:
		return Bronze
	}
}

// Multiplier scales the coins awarded per delivered order.
func (t Tier) Multiplier() decimal.Decimal {
	switch t {
	case Silver:
		return decimal.RequireFromString("1.25")
	case Gold:
		return decimal.RequireFromString("1.5")
	case Platinum:
		return decimal.NewFromInt(2)
	default:
		return decimal.NewFromInt(1)
	}
}

// NextTier returns the tier after the one totalEarned reaches and how many more
// coins must be earned to get there. At platinum it returns "" and 0.
func NextTier(totalEarned int) (Tier, int) {
	switch {
	case totalEarned >= PlatinumThreshold:
		return "", 0
	case totalEarned >= GoldThreshold:
		return Platinum, PlatinumThreshold - totalEarned
	case totalEarned >= SilverThreshold:
		return Gold, GoldThreshold - totalEarned
	default:
		return Silver, SilverThreshold - totalEarned
	}
}
