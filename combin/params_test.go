package combin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp301415/modcomb/combin"
)

func TestParameters(t *testing.T) {
	t.Run("Presets", func(t *testing.T) {
		assert.NotPanics(t, func() { combin.ParamsN100000P1000000007.Compile() })
		assert.NotPanics(t, func() { combin.ParamsN100000P998244353.Compile() })
		assert.NotPanics(t, func() { combin.ParamsN100000Goldilocks.Compile() })
	})

	t.Run("Getters", func(t *testing.T) {
		params := combin.ParamsN100000P1000000007.Compile()
		assert.Equal(t, uint64(1_000_000_007), params.Modulus())
		assert.Equal(t, 100_000, params.MaxN())
	})

	t.Run("InvalidLiteral", func(t *testing.T) {
		assert.Panics(t, func() { combin.ParametersLiteral{Modulus: 97, MaxN: 0}.Compile() })
		assert.Panics(t, func() { combin.ParametersLiteral{Modulus: 1_000_000_000, MaxN: 10}.Compile() })
		assert.Panics(t, func() { combin.ParametersLiteral{Modulus: 97, MaxN: 97}.Compile() })
		assert.NotPanics(t, func() { combin.ParametersLiteral{Modulus: 97, MaxN: 96}.Compile() })
	})
}
