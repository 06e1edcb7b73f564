package logger

import (
	"context"
	"io"
	"os"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// New returns a JSON logger writing to stdout, which Lambda forwards to CloudWatch.
func New(level string) *logrus.Logger {
	return newWithOutput(level, os.Stdout)
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	return newWithOutput("error", io.Discard)
}

func newWithOutput(level string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	switch level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	return log
}

// ForInvocation tags every line of one invocation with the function name and
// the Lambda request id. Outside Lambda a random id is used instead.
func ForInvocation(ctx context.Context, log *logrus.Logger, function string) *logrus.Entry {
	requestID := ""
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	return log.WithFields(logrus.Fields{
		"function":   function,
		"request_id": requestID,
	})
}
