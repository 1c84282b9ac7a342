package fuzzyac

// similarity computes the normalized score for a candidate alignment: the
// weighted edit cost divided by the pattern's token length, inverted to a
// [0,1] similarity and scaled by the pattern's weight. Clamping at both
// ends keeps the result well-defined even when weight > 1 pushes the raw
// score above 1, or floating point drift would otherwise push it below 0.
func similarity(counts EditCounts, penalties FuzzyPenalties, patternLen int, weight float64) float64 {
	cost := penalties.cost(counts)
	maxCost := float64(patternLen)

	rawSim := 1 - cost/maxCost
	if rawSim < 0 {
		rawSim = 0
	}

	sim := rawSim * weight
	if sim < 0 {
		sim = 0
	}
	if sim > 1 {
		sim = 1
	}
	return sim
}
