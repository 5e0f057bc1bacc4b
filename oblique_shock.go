package compr_flow

import "math"

/*
Calculate theta-beta-mach equation.

    Args:
        mach: Mach number upstream of the shock, -
        beta: oblique shock angle, rad, 0 < β <= π/2

    Returns:
        tan(θ) = ((M²sin²β - 1) / (1 + ((γ+1)/2 - sin²β)·M²)) / tan(β), -

    Notes:
        M·sin(β) < 1 has no attached shock and returns an error wrapping
        ErrNoAttachedShock. M·sin(β) = 1 is the Mach wave, tan(θ) = 0.
        When M² overflows the M -> ∞ limit sin²β / ((γ+1)/2 - sin²β) / tan(β)
        is returned.
*/
func (g Gas) FunThetaBetaM(mach, beta float64) (float64, error) {
	_, gp1, _, err := g.params("FunThetaBetaM")
	if err != nil {
		return 0, err
	}
	if err := checkMach("FunThetaBetaM", mach); err != nil {
		return 0, err
	}
	if err := checkBeta("FunThetaBetaM", beta); err != nil {
		return 0, err
	}

	sinB := math.Sin(beta)
	if mach*sinB < 1.0 {
		return 0, noAttachedShock("FunThetaBetaM", mach*sinB)
	}

	m2 := mach * mach
	if math.IsInf(m2, 1) {
		return sinB * sinB / (gp1/2.0 - sinB*sinB) / math.Tan(beta), nil
	}

	mult1 := m2*sinB*sinB - 1.0
	mult2 := 1.0 + (gp1/2.0-sinB*sinB)*m2

	return mult1 / mult2 / math.Tan(beta), nil
}

/*
Calculate flow deflection angle of an attached oblique shock.

    Args:
        mach: Mach number upstream of the shock, -
        beta: oblique shock angle, rad

    Returns:
        θ = atan(FunThetaBetaM(M, β)), rad
*/
func (g Gas) Deflection(mach, beta float64) (float64, error) {
	tanTheta, err := g.FunThetaBetaM(mach, beta)
	if err != nil {
		return 0, err
	}
	return math.Atan(tanTheta), nil
}

/*
Calculate mach number after oblique shock.

    Args:
        mach: Mach number upstream of the shock, -
        beta: oblique shock angle, rad, 0 < β <= π/2
        theta: flow deflection angle, rad

    Returns:
        M2 = sqrt((1 + (γ-1)/2·M²sin²β) / (γ·M²sin²β - (γ-1)/2)) / sin(β - θ), -

    Notes:
        γ·M²sin²β - (γ-1)/2 <= 0 and sin(β - θ) <= 0 are domain errors.
        When M²sin²β overflows the M -> ∞ limit
        sqrt((γ-1)/(2γ)) / sin(β - θ) is returned.
*/
func (g Gas) CalcMachOS(mach, beta, theta float64) (float64, error) {
	gamma, _, gm1, err := g.params("CalcMachOS")
	if err != nil {
		return 0, err
	}
	if err := checkMach("CalcMachOS", mach); err != nil {
		return 0, err
	}
	if err := checkBeta("CalcMachOS", beta); err != nil {
		return 0, err
	}
	if err := checkFinite("CalcMachOS", "theta", theta); err != nil {
		return 0, err
	}

	gm1_2 := gm1 / 2.0
	m_sin := mach * math.Sin(beta)
	m_sin_2 := m_sin * m_sin

	sinBT := math.Sin(beta - theta)
	if sinBT <= 0 {
		return 0, domainError("CalcMachOS", "beta-theta", beta-theta, "sin(beta-theta) must be > 0")
	}
	if math.IsInf(m_sin_2, 1) {
		return math.Sqrt(gm1_2/gamma) / sinBT, nil
	}

	mult1 := 1.0 + gm1_2*m_sin_2
	mult2 := gamma*m_sin_2 - gm1_2
	if mult2 <= 0 {
		return 0, domainError("CalcMachOS", "mach*sin(beta)", m_sin, "gamma*M^2*sin^2(beta) must exceed (gamma-1)/2")
	}

	return math.Sqrt(mult1/mult2) / sinBT, nil
}

/*
Calculate rise in pressure after oblique shock.

    Args:
        mach: Mach number upstream of the shock, -
        beta: oblique shock angle, rad

    Returns:
        p2/p1 = 2γ/(γ+1)·M²sin²β - (γ-1)/(γ+1), -

    Notes:
        A ratio below 1 is an expansive, unphysical configuration. It is
        returned unchanged; see IsExpansive.
        When M²sin²β overflows the result is +Inf, the M -> ∞ limit.
*/
func (g Gas) RisePres(mach, beta float64) (float64, error) {
	gamma, gp1, gm1, err := g.params("RisePres")
	if err != nil {
		return 0, err
	}
	if err := checkFinite("RisePres", "mach", mach); err != nil {
		return 0, err
	}
	if err := checkFinite("RisePres", "beta", beta); err != nil {
		return 0, err
	}

	m_sin := mach * math.Sin(beta)
	m_sin_2 := m_sin * m_sin

	return (2.0*gamma/gp1)*m_sin_2 - gm1/gp1, nil
}

// IsExpansive reports whether a RisePres result is below 1.
func IsExpansive(pressureRatio float64) bool {
	return pressureRatio < 1.0
}

func checkMach(op string, mach float64) error {
	if err := checkFinite(op, "mach", mach); err != nil {
		return err
	}
	if mach < 0 {
		return domainError(op, "mach", mach, "must be >= 0")
	}
	return nil
}

func checkBeta(op string, beta float64) error {
	if math.IsNaN(beta) || beta <= 0 || beta > math.Pi/2 {
		return domainError(op, "beta", beta, "must be in (0, pi/2]")
	}
	return nil
}

// FunThetaBetaM evaluates Gas.FunThetaBetaM for air.
func FunThetaBetaM(mach, beta float64) (float64, error) { return Air.FunThetaBetaM(mach, beta) }

// Deflection evaluates Gas.Deflection for air.
func Deflection(mach, beta float64) (float64, error) { return Air.Deflection(mach, beta) }

// CalcMachOS evaluates Gas.CalcMachOS for air.
func CalcMachOS(mach, beta, theta float64) (float64, error) {
	return Air.CalcMachOS(mach, beta, theta)
}

// RisePres evaluates Gas.RisePres for air.
func RisePres(mach, beta float64) (float64, error) { return Air.RisePres(mach, beta) }
