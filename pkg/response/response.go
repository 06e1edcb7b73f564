package response

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// ContentTypeJSON returns a new header map on every call so callers may add to it.
func ContentTypeJSON() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

// JSON encodes body into the Body string of a proxy response. Headers are left
// nil when none are given.
func JSON(statusCode int, body interface{}, headers map[string]string) (events.APIGatewayProxyResponse, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("failed to marshal response body: %w", err)
	}

	response := events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       string(jsonBody),
	}
	if len(headers) > 0 {
		response.Headers = headers
	}

	return response, nil
}
