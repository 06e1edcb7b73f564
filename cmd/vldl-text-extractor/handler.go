package main

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/sirupsen/logrus"

	"github.com/zerobugdebug/aws-recognition-lambdas/pkg/logger"
	"github.com/zerobugdebug/aws-recognition-lambdas/pkg/response"
	"github.com/zerobugdebug/aws-recognition-lambdas/pkg/s3event"
)

const functionName = "vldl-text-extractor"

type ExtractionResult struct {
	FileKey       string   `json:"file_key"`
	ExtractedText []string `json:"extracted_text"`
}

type Handler struct {
	textractClient TextractClient
	log            *logrus.Logger
}

func NewHandler(textractClient TextractClient, log *logrus.Logger) *Handler {
	return &Handler{
		textractClient: textractClient,
		log:            log,
	}
}

// HandleRequest returns the LINE texts of the uploaded document. Errors are
// not turned into a response: they go back to the Lambda runtime as is.
func (h *Handler) HandleRequest(ctx context.Context, s3Event events.S3Event) (events.APIGatewayProxyResponse, error) {
	log := logger.ForInvocation(ctx, h.log, functionName)

	notification, err := s3event.FirstNotification(s3Event)
	if err != nil {
		log.WithError(err).Error("Failed to read S3 event")
		return events.APIGatewayProxyResponse{}, err
	}
	if notification.Ignored > 0 {
		log.WithField("ignored_records", notification.Ignored).Warn("Only the first S3 record is processed")
	}

	log = log.WithFields(logrus.Fields{
		"bucket": notification.BucketName,
		"key":    notification.ObjectKey,
	})

	output, err := h.textractClient.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{
			S3Object: &types.S3Object{
				Bucket: aws.String(notification.BucketName),
				Name:   aws.String(notification.ObjectKey),
			},
		},
	})
	if err != nil {
		err = fmt.Errorf("failed to detect document text: %w", err)
		log.WithError(err).Error("Textract call failed")
		return events.APIGatewayProxyResponse{}, err
	}

	lines := slices.Collect(Lines(output.Blocks))
	if lines == nil {
		lines = []string{}
	}

	log.WithFields(logrus.Fields{
		"blocks": len(output.Blocks),
		"lines":  len(lines),
	}).Info("Text extracted")

	return response.JSON(http.StatusOK, ExtractionResult{
		FileKey:       notification.ObjectKey,
		ExtractedText: lines,
	}, nil)
}
