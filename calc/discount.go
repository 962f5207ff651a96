package calc

// ApplyDiscount applies a discount percentage to a price.
//
// The result is price * (1 - discountPercent/100). Inputs are not validated:
// a negative price, a negative percentage, or a percentage above 100 all flow
// through the formula unchanged. Callers are responsible for input sanity.
func ApplyDiscount(price float64, discountPercent float64) float64 {
	return price * (1 - discountPercent/100)
}
