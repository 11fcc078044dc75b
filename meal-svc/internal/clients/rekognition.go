package clients

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"nutrilens/meal-svc/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type LabelDetector interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

// Labels that describe the photo rather than the food on it.
var genericLabels = map[string]bool{
	"food": true, "meal": true, "dish": true, "lunch": true, "dinner": true,
	"breakfast": true, "plate": true, "bowl": true, "cutlery": true,
	"produce": true, "plant": true, "platter": true, "table": true,
	"dining table": true, "furniture": true, "supper": true,
}

const maxAlternatives = 2

type RekognitionDetector struct {
	client LabelDetector
}

func NewRekognitionDetector(client LabelDetector) *RekognitionDetector {
	return &RekognitionDetector{client: client}
}

func (d *RekognitionDetector) Detect(ctx context.Context, image []byte) (*domain.Detection, error) {
	out, err := d.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(15),
		MinConfidence: aws.Float32(60),
	})
	if err != nil {
		return nil, fmt.Errorf("rekognition detect labels: %w", err)
	}

	var foods []domain.DetectedFood
	for _, label := range out.Labels {
		if label.Name == nil || genericLabels[strings.ToLower(*label.Name)] {
			continue
		}
		confidence := 0.0
		if label.Confidence != nil {
			confidence = float64(*label.Confidence) / 100
		}
		foods = append(foods, domain.DetectedFood{Name: titleCase(*label.Name), Confidence: confidence})
	}
	if len(foods) == 0 {
		return nil, domain.ErrNoFoodDetected
	}

	detection := &domain.Detection{
		FoodName:     foods[0].Name,
		Confidence:   foods[0].Confidence,
		Alternatives: []domain.DetectedFood{},
	}
	for _, alt := range foods[1:] {
		if len(detection.Alternatives) == maxAlternatives {
			break
		}
		detection.Alternatives = append(detection.Alternatives, alt)
	}
	return detection, nil
}

func titleCase(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
