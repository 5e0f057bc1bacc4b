package compr_flow

import "math"

// Gas carries the isentropic exponent (ratio of specific heats).
// The zero value is air. Gamma = 0 means unset, so an explicit 0 also
// evaluates as air rather than failing.
type Gas struct {
	Gamma float64
}

// gamma returns the isentropic exponent, falling back to air for the zero value.
func (g Gas) gamma() float64 {
	if g.Gamma == 0 {
		return DefaultGamma
	}
	return g.Gamma
}

/*
Derive gp1 = γ+1 and gm1 = γ-1 from the isentropic exponent.

    Args:
        op: name of the calling formula, used in the error

    Returns:
        (1) γ
        (2) γ+1
        (3) γ-1
        (4) domain error unless γ is finite and > 1
*/
func (g Gas) params(op string) (gamma, gp1, gm1 float64, err error) {
	gamma = g.gamma()
	if !isFinite(gamma) || gamma <= 1.0 {
		return 0, 0, 0, domainError(op, "gamma", gamma, "must be finite and > 1")
	}
	return gamma, gamma + 1.0, gamma - 1.0, nil
}

// LambdaMax returns sqrt((γ+1)/(γ-1)), the superficial velocity at which
// the static temperature reaches zero.
func (g Gas) LambdaMax() (float64, error) {
	_, gp1, gm1, err := g.params("LambdaMax")
	if err != nil {
		return 0, err
	}
	return math.Sqrt(gp1 / gm1), nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func checkFinite(op, param string, x float64) error {
	if !isFinite(x) {
		return domainError(op, param, x, "must be finite")
	}
	return nil
}
