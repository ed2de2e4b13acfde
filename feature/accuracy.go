package feature

import "fmt"

// Accuracy returns the percentage of positions where predictions and
// answers agree: 100 × matches / len(answers).
//
// Values agree under the same loose typing as the rest of the library, so
// int64(1) matches float64(1). Empty or length-mismatched sequences are
// an error.
func Accuracy(predictions, answers []interface{}) (float64, error) {
	if len(answers) == 0 {
		return 0, fmt.Errorf("accuracy: empty answer sequence")
	}
	if len(predictions) != len(answers) {
		return 0, fmt.Errorf("accuracy: got %d predictions for %d answers", len(predictions), len(answers))
	}

	matches := 0
	for i := range answers {
		if valuesEqual(predictions[i], answers[i]) {
			matches++
		}
	}

	return float64(matches) * 100 / float64(len(answers)), nil
}
