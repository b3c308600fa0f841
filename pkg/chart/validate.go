package chart

// Validate checks a request for structural correctness before any
// geometry is computed. Validation is all-or-nothing: it returns nil or
// exactly one of the typed validation errors, and an invalid request
// produces no layout and no output.
func Validate(req Request) error {
	if len(req.Labels) != len(req.Values) {
		return &MismatchedLengthsError{Labels: len(req.Labels), Values: len(req.Values)}
	}
	if len(req.Values) == 0 {
		return &EmptySeriesError{}
	}
	if req.Width <= 0 {
		return &NonPositiveDimensionError{Dimension: "width", Value: req.Width}
	}
	if req.Height <= 0 {
		return &NonPositiveDimensionError{Dimension: "height", Value: req.Height}
	}
	if req.Kind == KindPie {
		var sum float64
		for _, v := range req.Values {
			sum += v
		}
		if sum == 0 {
			return &ZeroTotalError{Values: req.Values}
		}
	}
	return nil
}
