package usecase

import (
	"math"
	"time"

	"voltride-booking/internal/data/entity"
)

// taxRatePercent is the fixed VAT rate applied to the booking total.
const taxRatePercent = 21.0

// defaultDepositAmount applies when the catalog vehicle has no deposit
// configured.
const defaultDepositAmount = 500.0

// rentalDays counts calendar days between the booking bounds, rounding
// partial days up and flooring at one so same-day and inverted ranges still
// bill a full day.
func rentalDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// roundCents rounds to two decimals, half away from zero.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// commissionSpec carries the commission fields computed for partner and
// franchise agencies; all nil for direct-owned agencies.
type commissionSpec struct {
	Rate   *float64
	Amount *float64
	Type   *entity.CommissionType
	Status *entity.CommissionStatus
}

func commissionFor(agency *entity.Agency, totalPrice float64) commissionSpec {
	if !agency.AgencyType.EarnsCommission() {
		return commissionSpec{}
	}

	rate := 0.0
	if agency.CommissionRate != nil {
		rate = *agency.CommissionRate
	}
	amount := roundCents(totalPrice * rate)
	ctype := agency.AgencyType.CommissionType()
	status := entity.CommissionStatusPending

	return commissionSpec{
		Rate:   &rate,
		Amount: &amount,
		Type:   &ctype,
		Status: &status,
	}
}
