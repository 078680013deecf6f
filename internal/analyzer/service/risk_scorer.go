package service

import (
	"math"

	"gaus-thesis/internal/entity"
)

const (
	riskBaseline = 3
	minRiskScore = 1
	maxRiskScore = 10

	megaCapThreshold = 500_000_000_000
)

// CalculateRiskScore rates a ticker from 1 (low) to 10 (high) from its valuation
// and recent move. Absent or zero metrics contribute nothing.
func CalculateRiskScore(v entity.Valuation, priceChangePct float64) int {
	score := riskBaseline

	marketCap, hasMarketCap := nonZeroInt(v.MarketCap)

	if pe, ok := nonZero(v.ForwardPE); ok {
		if hasMarketCap && marketCap > megaCapThreshold {
			switch {
			case pe > 100:
				score += 3
			case pe > 70:
				score += 2
			case pe > 45:
				score++
			case pe < 20:
				score--
			}
		} else {
			switch {
			case pe > 80:
				score += 3
			case pe > 50:
				score += 2
			case pe > 35:
				score++
			case pe < 15:
				score--
			}
		}
	}

	if pb, ok := nonZero(v.PriceToBook); ok {
		switch {
		case pb > 40:
			score += 2
		case pb > 25:
			score++
		}
	}

	if beta, ok := nonZero(v.Beta); ok {
		switch {
		case beta > 2.5:
			score += 2
		case beta > 2.0:
			score++
		case beta < 0.8:
			score--
		}
	}

	switch move := math.Abs(priceChangePct); {
	case move > 20:
		score += 2
	case move > 15:
		score++
	case move < 3:
		score--
	}

	if hasMarketCap {
		switch {
		case marketCap < 1_000_000_000:
			score += 3
		case marketCap < 5_000_000_000:
			score += 2
		case marketCap < 20_000_000_000:
			score++
		case marketCap > megaCapThreshold:
			score -= 2
		case marketCap > 100_000_000_000:
			score--
		}
	}

	return max(minRiskScore, min(maxRiskScore, score))
}

func nonZero(v *float64) (float64, bool) {
	if v == nil || *v == 0 || math.IsNaN(*v) {
		return 0, false
	}
	return *v, true
}

func nonZeroInt(v *int64) (int64, bool) {
	if v == nil || *v == 0 {
		return 0, false
	}
	return *v, true
}
