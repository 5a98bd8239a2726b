package encoder

// Weight returns the blend weight n/(n+param) given to a category observed n
// times. It is 0 for n == 0 and approaches 1 as n grows; a larger param keeps
// rare categories close to the prior for longer.
func Weight(n int64, param float64) float64 {
	return float64(n) / (float64(n) + param)
}

// ListWeight is the list-feature variant of Weight. The denominator is based
// on total, the number of observations behind the whole list, instead of the
// entry's own count.
func ListWeight(n, total int64, param float64) float64 {
	return float64(n) / (float64(total) + param)
}
