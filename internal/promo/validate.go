// Package promo validates user-entered promo codes against the catalog's
// promo table.
package promo

import (
	"strings"

	"reskin-calc/internal/catalog"
)

// Result is what the UI shows: the normalized code comes back even for
// unknown codes so the error message can echo it.
type Result struct {
	Valid    bool
	Code     string
	Discount float64
	Promo    *catalog.PromoCode
}

// Normalize trims whitespace and upper-cases a raw code.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Validate looks a raw code up in the catalog's promo table. Never errors:
// an unknown code is a Result with Valid false and zero discount.
func Validate(raw string, cat *catalog.Catalog) Result {
	code := Normalize(raw)
	p, ok := cat.PromoByCode(code)
	if !ok {
		return Result{Code: code}
	}
	return Result{
		Valid:    true,
		Code:     p.Code,
		Discount: p.Discount,
		Promo:    &p,
	}
}
