package main

// DetectedLabel is one detected label as stored and returned.
type DetectedLabel struct {
	Name       string  `json:"Name" dynamodbav:"Name"`
	Confidence float64 `json:"Confidence" dynamodbav:"Confidence"`
	Instances  int     `json:"Instances" dynamodbav:"Instances"`
}

// RecognitionRecord is the DynamoDB item, keyed by ImageId.
type RecognitionRecord struct {
	ImageID    string          `dynamodbav:"ImageId"`
	BucketName string          `dynamodbav:"BucketName"`
	FileKey    string          `dynamodbav:"FileKey"`
	FileSize   int64           `dynamodbav:"FileSize"`
	UploadTime string          `dynamodbav:"UploadTime"`
	Labels     []DetectedLabel `dynamodbav:"Labels"`
	LabelCount int             `dynamodbav:"LabelCount"`
}

type ImageInfo struct {
	Bucket  string `json:"bucket"`
	FileKey string `json:"file_key"`
}

type RecognitionSummary struct {
	Message    string          `json:"message"`
	ImageInfo  ImageInfo       `json:"image_info"`
	LabelCount int             `json:"label_count"`
	Labels     []DetectedLabel `json:"labels"`
}

type FailureBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

const (
	maxLabels     = 10
	minConfidence = 70

	successMessage = "image labels detected and stored in DynamoDB"
	failureMessage = "processing failed"
)
