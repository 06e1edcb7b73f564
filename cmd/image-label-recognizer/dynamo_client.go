package main

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoClient is the record store. Only unconditional writes are needed.
type DynamoClient interface {
	PutItem(ctx context.Context, input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
}

type dynamoClient struct {
	client *dynamodb.Client
}

func NewDynamoClient(cfg aws.Config) DynamoClient {
	return &dynamoClient{
		client: dynamodb.NewFromConfig(cfg),
	}
}

func (dc *dynamoClient) PutItem(ctx context.Context, input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
	return dc.client.PutItem(ctx, input)
}
