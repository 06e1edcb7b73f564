package main

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
)

type RekognitionClient interface {
	DetectLabels(ctx context.Context, input *rekognition.DetectLabelsInput) (*rekognition.DetectLabelsOutput, error)
}

type rekognitionClient struct {
	client *rekognition.Client
}

func NewRekognitionClient(cfg aws.Config) RekognitionClient {
	return &rekognitionClient{
		client: rekognition.NewFromConfig(cfg),
	}
}

func (rc *rekognitionClient) DetectLabels(ctx context.Context, input *rekognition.DetectLabelsInput) (*rekognition.DetectLabelsOutput, error) {
	return rc.client.DetectLabels(ctx, input)
}
