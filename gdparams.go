package compr_flow

import "math"

/*
Returns gas dynamic function pi (static to stagnation pressure ratio).

    Args:
        lambda: superficial velocity of flow, -

    Returns:
        pi = (1 - (γ-1)/(γ+1)·λ²)^(γ/(γ-1)), -

    Notes:
        The base must be non-negative, i.e. λ² <= (γ+1)/(γ-1).
*/
func (g Gas) Pi(lambda float64) (float64, error) {
	gamma, gp1, gm1, err := g.params("Pi")
	if err != nil {
		return 0, err
	}
	base, err := isentropicBase("Pi", lambda, gp1, gm1)
	if err != nil {
		return 0, err
	}
	return math.Pow(base, gamma/gm1), nil
}

/*
Returns gas dynamic function tau (static to stagnation temperature ratio).

    Args:
        lambda: superficial velocity of flow, -

    Returns:
        tau = 1 - (γ-1)/(γ+1)·λ², -

    Notes:
        Any finite λ is accepted. For λ² > (γ+1)/(γ-1) the result is
        negative, which has no physical meaning but is returned as is.
*/
func (g Gas) Tau(lambda float64) (float64, error) {
	_, gp1, gm1, err := g.params("Tau")
	if err != nil {
		return 0, err
	}
	if err := checkFinite("Tau", "lambda", lambda); err != nil {
		return 0, err
	}
	return 1.0 - (gm1/gp1)*lambda*lambda, nil
}

/*
Returns gas dynamic function q (mass-flow-density ratio).

    Args:
        lambda: superficial velocity of flow, -

    Returns:
        q = ((γ+1)/2)^(1/(γ-1)) · (1 - (γ-1)/(γ+1)·λ²)^(1/(γ-1)) · λ, -

    Notes:
        Same base restriction as Pi. q(1) = 1 at the sonic point.
*/
func (g Gas) Q(lambda float64) (float64, error) {
	_, gp1, gm1, err := g.params("Q")
	if err != nil {
		return 0, err
	}
	base, err := isentropicBase("Q", lambda, gp1, gm1)
	if err != nil {
		return 0, err
	}
	power := 1.0 / gm1

	mult1 := math.Pow(gp1/2.0, power)
	mult2 := math.Pow(base, power)

	return mult1 * mult2 * lambda, nil
}

/*
Returns Mach number for a superficial velocity.

    Args:
        lambda: superficial velocity of flow, -, λ >= 0

    Returns:
        M = sqrt(2λ² / ((γ+1) - (γ-1)·λ²)), -

    Notes:
        At λ² = (γ+1)/(γ-1) the result is +Inf (the hypersonic limit).
        Beyond it the radicand is negative and a domain error is returned.
        Negative λ is rejected although Pi and Q accept it: the result is a
        magnitude and CalcLambda never returns a negative λ.
*/
func (g Gas) CalcMach(lambda float64) (float64, error) {
	_, gp1, gm1, err := g.params("CalcMach")
	if err != nil {
		return 0, err
	}
	if err := checkFinite("CalcMach", "lambda", lambda); err != nil {
		return 0, err
	}
	if lambda < 0 {
		return 0, domainError("CalcMach", "lambda", lambda, "must be >= 0")
	}

	mult1 := lambda * lambda * 2.0
	mult2 := gp1 - gm1*lambda*lambda

	switch {
	case mult2 < 0:
		return 0, domainError("CalcMach", "lambda", lambda, "lambda^2 exceeds (gamma+1)/(gamma-1)")
	case mult2 == 0:
		return math.Inf(1), nil
	}
	return math.Sqrt(mult1 / mult2), nil
}

/*
Returns superficial velocity for a Mach number.

    Args:
        mach: Mach number, -, M >= 0

    Returns:
        λ = sqrt((γ+1)·M² / (2 + (γ-1)·M²)), -

    Notes:
        This is the exact inverse of CalcMach. The Python routine this
        library replaces repeated the CalcMach expression and never read
        its Mach argument; that behavior is not kept.
        M = +Inf returns sqrt((γ+1)/(γ-1)).
*/
func (g Gas) CalcLambda(mach float64) (float64, error) {
	_, gp1, gm1, err := g.params("CalcLambda")
	if err != nil {
		return 0, err
	}
	if math.IsNaN(mach) || mach < 0 {
		return 0, domainError("CalcLambda", "mach", mach, "must be >= 0")
	}

	m2 := mach * mach
	if math.IsInf(m2, 1) {
		return math.Sqrt(gp1 / gm1), nil
	}

	return math.Sqrt(gp1 * m2 / (2.0 + gm1*m2)), nil
}

// isentropicBase returns 1 - (γ-1)/(γ+1)·λ², rejecting a negative base.
func isentropicBase(op string, lambda, gp1, gm1 float64) (float64, error) {
	if err := checkFinite(op, "lambda", lambda); err != nil {
		return 0, err
	}
	base := 1.0 - (gm1/gp1)*lambda*lambda
	if base < 0 {
		return 0, domainError(op, "lambda", lambda, "lambda^2 exceeds (gamma+1)/(gamma-1)")
	}
	return base, nil
}

// Pi evaluates Gas.Pi for air.
func Pi(lambda float64) (float64, error) { return Air.Pi(lambda) }

// Tau evaluates Gas.Tau for air.
func Tau(lambda float64) (float64, error) { return Air.Tau(lambda) }

// Q evaluates Gas.Q for air.
func Q(lambda float64) (float64, error) { return Air.Q(lambda) }

// CalcMach evaluates Gas.CalcMach for air.
func CalcMach(lambda float64) (float64, error) { return Air.CalcMach(lambda) }

// CalcLambda evaluates Gas.CalcLambda for air.
func CalcLambda(mach float64) (float64, error) { return Air.CalcLambda(mach) }
