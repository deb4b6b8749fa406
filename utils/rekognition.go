package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RekognitionModerator flags uploaded images with unsafe content.
type RekognitionModerator struct {
	client        *rekognition.Client
	minConfidence float32
}

func NewRekognitionModerator(ctx context.Context) (*RekognitionModerator, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}
	return &RekognitionModerator{client: rekognition.NewFromConfig(cfg), minConfidence: 75}, nil
}

// ModerationLabels returns the names of moderation labels found in img.
func (m *RekognitionModerator) ModerationLabels(ctx context.Context, img []byte) ([]string, error) {
	out, err := m.client.DetectModerationLabels(ctx, &rekognition.DetectModerationLabelsInput{
		Image:         &types.Image{Bytes: img},
		MinConfidence: aws.Float32(m.minConfidence),
	})
	if err != nil {
		return nil, fmt.Errorf("moderation check failed: %w", err)
	}
	var labels []string
	for _, l := range out.ModerationLabels {
		labels = append(labels, aws.ToString(l.Name))
	}
	return labels, nil
}
