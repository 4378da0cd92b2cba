package promo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reskin-calc/internal/catalog"
)

func TestValidateNormalizesInput(t *testing.T) {
	t.Parallel()

	cat := catalog.Defaults()
	res := Validate("  pr20 ", cat)

	require.True(t, res.Valid)
	require.Equal(t, "PR20", res.Code)
	require.InDelta(t, 0.20, res.Discount, 1e-9)
	require.NotNil(t, res.Promo)
	require.Equal(t, catalog.PromoPercentage, res.Promo.Kind)
}

func TestValidateUnknownCode(t *testing.T) {
	t.Parallel()

	res := Validate(" nocode42\t", catalog.Defaults())

	require.False(t, res.Valid)
	require.Zero(t, res.Discount)
	require.Nil(t, res.Promo)
	require.NotEmpty(t, res.Code, "normalized code is echoed for the error message")
}

func TestValidateFixedCode(t *testing.T) {
	t.Parallel()

	res := Validate("artdrop", catalog.Defaults())

	require.True(t, res.Valid)
	require.Equal(t, catalog.PromoFixed, res.Promo.Kind)
	require.InDelta(t, 150.0, res.Discount, 1e-9)
}

func TestValidateEmptyInput(t *testing.T) {
	t.Parallel()

	res := Validate("   ", catalog.Defaults())

	require.False(t, res.Valid)
	require.Empty(t, res.Code)
}
