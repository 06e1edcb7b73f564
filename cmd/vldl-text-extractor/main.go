package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/zerobugdebug/aws-recognition-lambdas/pkg/logger"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		panic(fmt.Sprintf("Failed to load AWS config: %v", err))
	}

	handler := NewHandler(NewTextractClient(awsCfg), logger.New(cfg.LogLevel))
	lambda.Start(handler.HandleRequest)
}
