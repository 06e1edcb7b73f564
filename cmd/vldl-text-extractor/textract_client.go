package main

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
)

type TextractClient interface {
	DetectDocumentText(ctx context.Context, input *textract.DetectDocumentTextInput) (*textract.DetectDocumentTextOutput, error)
}

type textractClient struct {
	client *textract.Client
}

func NewTextractClient(cfg aws.Config) TextractClient {
	return &textractClient{
		client: textract.NewFromConfig(cfg),
	}
}

func (tc *textractClient) DetectDocumentText(ctx context.Context, input *textract.DetectDocumentTextInput) (*textract.DetectDocumentTextOutput, error) {
	return tc.client.DetectDocumentText(ctx, input)
}
