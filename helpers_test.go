package compr_flow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// published tables are given to six decimals
const tableTol = 1e-6

type isentropicRow struct {
	Mach   float64 `csv:"mach"`
	Lambda float64 `csv:"lambda"`
	Tau    float64 `csv:"tau"`
	Pi     float64 `csv:"pi"`
	Q      float64 `csv:"q"`
}

type normalShockRow struct {
	Mach1         float64 `csv:"mach1"`
	PressureRatio float64 `csv:"pressure_ratio"`
	Mach2         float64 `csv:"mach2"`
}

// testGammas covers monatomic to heavy polyatomic gases.
var testGammas = []float64{1.1, 1.2, 1.3, 1.4, 5.0 / 3.0}

func loadTable[T any](t *testing.T, name string) []*T {
	t.Helper()

	file, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer file.Close()

	var rows []*T
	require.NoError(t, gocsv.UnmarshalFile(file, &rows))
	require.NotEmpty(t, rows)
	return rows
}

func assertClose(t *testing.T, want, got, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, scalar.EqualWithinAbsOrRel(want, got, tol, tol),
		"want %.12g, got %.12g (tol %g) %v", want, got, tol, msgAndArgs)
}

func requireDomainError(t *testing.T, err error, op, param string) *DomainError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrDomain)

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, op, de.Op)
	assert.Equal(t, param, de.Param)
	return de
}
