package s3event

import (
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"
)

// ErrNoRecords is returned when the event carries no S3 records at all.
var ErrNoRecords = errors.New("s3 event contains no records")

var validate = validator.New()

// Notification is the part of an S3 object-created record the lambdas consume.
type Notification struct {
	BucketName      string `validate:"required"`
	ObjectKey       string `validate:"required"`
	ObjectSizeBytes int64  `validate:"gte=0"`
	// Ignored is the number of batched records after the first one.
	Ignored int
}

// FirstNotification reads Records[0] of the event. Any further records are
// not processed; their count is reported in Notification.Ignored.
func FirstNotification(event events.S3Event) (Notification, error) {
	if len(event.Records) == 0 {
		return Notification{}, ErrNoRecords
	}

	record := event.Records[0]
	n := Notification{
		BucketName:      record.S3.Bucket.Name,
		ObjectKey:       record.S3.Object.Key,
		ObjectSizeBytes: record.S3.Object.Size,
		Ignored:         len(event.Records) - 1,
	}

	if err := validate.Struct(n); err != nil {
		return Notification{}, fmt.Errorf("invalid s3 event record: %w", err)
	}

	return n, nil
}

// ImageID is the record store key for the object: "<bucket>_<key>".
func (n Notification) ImageID() string {
	return n.BucketName + "_" + n.ObjectKey
}
