package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RoundConfidence rounds to two decimals, ties to even. Rounding works on the
// shortest decimal form of the float32, which is the value the service sent,
// so 70.015 is a tie and becomes 70.02.
func RoundConfidence(confidence float32) float64 {
	s := strconv.FormatFloat(float64(confidence), 'f', -1, 32)
	negative := strings.HasPrefix(s, "-")
	whole, frac, _ := strings.Cut(strings.TrimPrefix(s, "-"), ".")
	if len(frac) < 2 {
		frac += strings.Repeat("0", 2-len(frac))
	}

	hundredths, err := strconv.ParseInt(whole+frac[:2], 10, 64)
	if err != nil {
		return math.RoundToEven(float64(confidence)*100) / 100
	}
	if roundsUp(frac[2:], hundredths) {
		hundredths++
	}

	rounded := float64(hundredths) / 100
	if negative {
		return -rounded
	}
	return rounded
}

// roundsUp decides half-to-even on the dropped digits.
func roundsUp(dropped string, kept int64) bool {
	if dropped == "" {
		return false
	}
	switch {
	case dropped[0] > '5':
		return true
	case dropped[0] < '5':
		return false
	case strings.TrimRight(dropped[1:], "0") != "":
		return true
	default:
		return kept%2 == 1
	}
}

// NormalizeLabels keeps the service order. The result is never nil.
func NormalizeLabels(detected []types.Label) []DetectedLabel {
	labels := make([]DetectedLabel, 0, len(detected))
	for _, label := range detected {
		labels = append(labels, DetectedLabel{
			Name:       aws.ToString(label.Name),
			Confidence: RoundConfidence(aws.ToFloat32(label.Confidence)),
			Instances:  len(label.Instances),
		})
	}
	return labels
}
