package compr_flow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGasZeroValueIsAir(t *testing.T) {
	for _, lambda := range []float64{0, 0.3, 1.0, 1.7} {
		want, err := Air.Pi(lambda)
		require.NoError(t, err)
		got, err := Gas{}.Pi(lambda)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		// an explicit zero is indistinguishable from unset
		got, err = Gas{Gamma: 0}.Pi(lambda)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, DefaultGamma, Air.Gamma)
}

func TestGasInvalidGamma(t *testing.T) {
	for _, gamma := range []float64{1.0, 0.5, -1.4, math.NaN(), math.Inf(1)} {
		g := Gas{Gamma: gamma}

		_, err := g.Pi(0.5)
		requireDomainError(t, err, "Pi", "gamma")
		_, err = g.Tau(0.5)
		requireDomainError(t, err, "Tau", "gamma")
		_, err = g.Q(0.5)
		requireDomainError(t, err, "Q", "gamma")
		_, err = g.CalcMach(0.5)
		requireDomainError(t, err, "CalcMach", "gamma")
		_, err = g.CalcLambda(0.5)
		requireDomainError(t, err, "CalcLambda", "gamma")
		_, err = g.FunThetaBetaM(2, math.Pi/4)
		requireDomainError(t, err, "FunThetaBetaM", "gamma")
		_, err = g.CalcMachOS(2, math.Pi/4, 0.1)
		requireDomainError(t, err, "CalcMachOS", "gamma")
		_, err = g.RisePres(2, math.Pi/4)
		requireDomainError(t, err, "RisePres", "gamma")
		_, err = g.LambdaMax()
		requireDomainError(t, err, "LambdaMax", "gamma")
	}
}

func TestLambdaMax(t *testing.T) {
	lmax, err := Air.LambdaMax()
	require.NoError(t, err)
	assertClose(t, math.Sqrt(6), lmax, 1e-15)

	lmax, err = Gas{Gamma: 1.25}.LambdaMax()
	require.NoError(t, err)
	assert.Equal(t, 3.0, lmax)
}

func TestDomainErrorMessage(t *testing.T) {
	_, err := CalcMach(2.5)
	require.Error(t, err)
	assert.Equal(t, "compr_flow.CalcMach: lambda = 2.5: lambda^2 exceeds (gamma+1)/(gamma-1)", err.Error())
}
