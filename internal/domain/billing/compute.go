package billing

import "time"

// amountTolerance is the absolute slack allowed between a client-claimed
// total and the server-computed one, covering float formatting drift.
const amountTolerance = 0.01

// DayCount returns the inclusive number of calendar days between from and
// to. A course starting and ending on the same day is one day.
func DayCount(from, to time.Time) int {
	from = from.Truncate(24 * time.Hour)
	to = to.Truncate(24 * time.Hour)
	return int(to.Sub(from).Hours()/24) + 1
}

// Total computes the bill amount: unit price times quantity per dose times
// doses per day times the inclusive day count.
func Total(unitPrice float64, quantity int, schedule Schedule, from, to time.Time) float64 {
	return unitPrice * float64(quantity) * float64(schedule.DosesPerDay()) * float64(DayCount(from, to))
}

func withinTolerance(claimed, computed float64) bool {
	diff := claimed - computed
	if diff < 0 {
		diff = -diff
	}
	return diff <= amountTolerance
}
