package services

import "daynight-map-service/internal/domain"

// ValidateCurve certifies structural and range sanity of a curve: it is
// true iff the curve is non-empty and every point lies within
// [-180, 180] longitude and [-90, 90] latitude. Pure; performs no
// correction. Callers decide whether to reject, retry with different
// parameters, or display a degraded curve.
func ValidateCurve(curve domain.TerminatorCurve) bool {
	if len(curve.Points) == 0 {
		return false
	}
	for _, p := range curve.Points {
		if !p.InRange() {
			return false
		}
	}
	return true
}
