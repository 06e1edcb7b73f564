package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/sirupsen/logrus"

	"github.com/zerobugdebug/aws-recognition-lambdas/pkg/logger"
	"github.com/zerobugdebug/aws-recognition-lambdas/pkg/response"
	"github.com/zerobugdebug/aws-recognition-lambdas/pkg/s3event"
)

const functionName = "image-label-recognizer"

type Handler struct {
	rekognitionClient RekognitionClient
	dynamoClient      DynamoClient
	config            Config
	log               *logrus.Logger
	now               func() time.Time
}

func NewHandler(cfg Config, rekognitionClient RekognitionClient, dynamoClient DynamoClient, log *logrus.Logger, now func() time.Time) *Handler {
	return &Handler{
		rekognitionClient: rekognitionClient,
		dynamoClient:      dynamoClient,
		config:            cfg,
		log:               log,
		now:               now,
	}
}

// HandleRequest never returns an error. Every failure becomes a 500 response
// carrying the error text.
func (h *Handler) HandleRequest(ctx context.Context, s3Event events.S3Event) (events.APIGatewayProxyResponse, error) {
	log := logger.ForInvocation(ctx, h.log, functionName)

	record, err := h.recognize(ctx, log, s3Event)
	if err != nil {
		return h.failure(log, err), nil
	}

	resp, err := response.JSON(http.StatusOK, RecognitionSummary{
		Message: successMessage,
		ImageInfo: ImageInfo{
			Bucket:  record.BucketName,
			FileKey: record.FileKey,
		},
		LabelCount: record.LabelCount,
		Labels:     record.Labels,
	}, response.ContentTypeJSON())
	if err != nil {
		return h.failure(log, err), nil
	}

	return resp, nil
}

func (h *Handler) recognize(ctx context.Context, log *logrus.Entry, s3Event events.S3Event) (RecognitionRecord, error) {
	notification, err := s3event.FirstNotification(s3Event)
	if err != nil {
		return RecognitionRecord{}, err
	}
	if notification.Ignored > 0 {
		log.WithField("ignored_records", notification.Ignored).Warn("Only the first S3 record is processed")
	}

	labels, err := h.detectLabels(ctx, notification)
	if err != nil {
		return RecognitionRecord{}, err
	}

	record := RecognitionRecord{
		ImageID:    notification.ImageID(),
		BucketName: notification.BucketName,
		FileKey:    notification.ObjectKey,
		FileSize:   notification.ObjectSizeBytes,
		UploadTime: h.now().UTC().Format(time.RFC3339Nano),
		Labels:     labels,
		LabelCount: len(labels),
	}

	if err := h.storeRecord(ctx, record); err != nil {
		return RecognitionRecord{}, err
	}

	log.WithFields(logrus.Fields{
		"image_id":    record.ImageID,
		"label_count": record.LabelCount,
	}).Info("Labels stored")

	return record, nil
}

func (h *Handler) detectLabels(ctx context.Context, notification s3event.Notification) ([]DetectedLabel, error) {
	output, err := h.rekognitionClient.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image: &types.Image{
			S3Object: &types.S3Object{
				Bucket: aws.String(notification.BucketName),
				Name:   aws.String(notification.ObjectKey),
			},
		},
		MaxLabels:     aws.Int32(maxLabels),
		MinConfidence: aws.Float32(minConfidence),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to detect labels: %w", err)
	}

	return NormalizeLabels(output.Labels), nil
}

// storeRecord overwrites any item with the same ImageId.
func (h *Handler) storeRecord(ctx context.Context, record RecognitionRecord) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal recognition record: %w", err)
	}

	_, err = h.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(h.config.TableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in DynamoDB: %w", err)
	}

	return nil
}

func (h *Handler) failure(log *logrus.Entry, err error) events.APIGatewayProxyResponse {
	log.WithError(err).Error("Processing failed")

	// FailureBody holds only strings, so encoding it cannot fail.
	resp, _ := response.JSON(http.StatusInternalServerError, FailureBody{
		Message: failureMessage,
		Error:   err.Error(),
	}, response.ContentTypeJSON())

	return resp
}
