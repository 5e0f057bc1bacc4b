/*
Package compr_flow provides closed-form compressible-flow formulas.

Isentropic gas-dynamic functions of the superficial velocity λ:

	Pi(λ)          pressure ratio p/p0
	Tau(λ)         temperature ratio T/T0
	Q(λ)           mass-flow-density ratio
	CalcMach(λ)    Mach number from λ
	CalcLambda(M)  λ from Mach number

Oblique shock relations:

	FunThetaBetaM(M, β)    tan(θ) from the θ-β-M relation
	Deflection(M, β)       θ, rad
	CalcMachOS(M, β, θ)    Mach number behind the shock
	RisePres(M, β)         static pressure ratio p2/p1

Package-level functions evaluate for air (γ = 1.4). To use another
isentropic exponent call the same method on a Gas value:

	p, err := compr_flow.Gas{Gamma: 1.3}.Pi(0.8)

Inputs outside the valid range of a formula are reported as an error
wrapping ErrDomain; no function returns NaN.
*/
package compr_flow
