package usecases

// ConfidenceFromSimilarity maps a cosine similarity to a suggestion
// confidence. The boost rewards strong matches; the result is always clamped
// to [0, 1].
func ConfidenceFromSimilarity(similarity float64) float64 {
	confidence := similarity * 1.2
	if confidence > 1 {
		return 1
	}
	if confidence < 0 {
		return 0
	}
	return confidence
}
