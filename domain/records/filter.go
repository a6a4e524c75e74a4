package records

// Filters are pure: they never mutate their input, and an unset selection
// ("" for enum filters) is the identity filter, not match-nothing.

// FilterGender keeps rows whose Gender equals the selection. Unset returns
// the input slice unchanged.
func FilterGender(rows []Record, gender string) []Record {
	if gender == "" {
		return rows
	}
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		if r.Gender == gender {
			out = append(out, r)
		}
	}
	return out
}

// FilterCondition keeps rows whose Condition equals the selection. Unset
// returns the input slice unchanged.
func FilterCondition(rows []Record, condition string) []Record {
	if condition == "" {
		return rows
	}
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		if r.Condition == condition {
			out = append(out, r)
		}
	}
	return out
}

// FilterBillingMax keeps rows whose billing amount is present and at most
// ceiling. Rows with missing billing never satisfy the comparison.
func FilterBillingMax(rows []Record, ceiling float64) []Record {
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		if r.Billing.Valid && r.Billing.Value <= ceiling {
			out = append(out, r)
		}
	}
	return out
}
