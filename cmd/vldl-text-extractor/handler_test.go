package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zerobugdebug/aws-recognition-lambdas/pkg/logger"
	"github.com/zerobugdebug/aws-recognition-lambdas/pkg/s3event"
)

// mockTextract records the inputs it receives and returns a canned output.
type mockTextract struct {
	inputs []*textract.DetectDocumentTextInput
	output *textract.DetectDocumentTextOutput
	err    error
}

func (m *mockTextract) DetectDocumentText(ctx context.Context, input *textract.DetectDocumentTextInput) (*textract.DetectDocumentTextOutput, error) {
	m.inputs = append(m.inputs, input)
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

func block(blockType types.BlockType, text string) types.Block {
	return types.Block{BlockType: blockType, Text: aws.String(text)}
}

func s3Event(bucket, key string) events.S3Event {
	return events.S3Event{Records: []events.S3EventRecord{{
		S3: events.S3Entity{
			Bucket: events.S3Bucket{Name: bucket},
			Object: events.S3Object{Key: key},
		},
	}}}
}

var _ = Describe("Lines", func() {
	It("should keep only LINE blocks in response order", func() {
		blocks := []types.Block{
			block(types.BlockTypePage, ""),
			block(types.BlockTypeLine, "first line"),
			block(types.BlockTypeWord, "first"),
			block(types.BlockTypeWord, "line"),
			block(types.BlockTypeLine, "second line"),
			block(types.BlockType("line"), "lowercase tag"),
			block(types.BlockTypeLine, "third line"),
		}

		var lines []string
		for line := range Lines(blocks) {
			lines = append(lines, line)
		}
		Expect(lines).To(Equal([]string{"first line", "second line", "third line"}))
	})

	It("should stop when the consumer stops", func() {
		blocks := []types.Block{
			block(types.BlockTypeLine, "a"),
			block(types.BlockTypeLine, "b"),
			block(types.BlockTypeLine, "c"),
		}

		var lines []string
		for line := range Lines(blocks) {
			lines = append(lines, line)
			if len(lines) == 2 {
				break
			}
		}
		Expect(lines).To(Equal([]string{"a", "b"}))
	})

	It("should yield an empty string for a LINE block without text", func() {
		blocks := []types.Block{{BlockType: types.BlockTypeLine}}

		var lines []string
		for line := range Lines(blocks) {
			lines = append(lines, line)
		}
		Expect(lines).To(Equal([]string{""}))
	})
})

var _ = Describe("Handler", func() {
	var (
		client  *mockTextract
		handler *Handler
	)

	BeforeEach(func() {
		client = &mockTextract{output: &textract.DetectDocumentTextOutput{}}
		handler = NewHandler(client, logger.Discard())
	})

	decodeBody := func(resp events.APIGatewayProxyResponse) ExtractionResult {
		var result ExtractionResult
		Expect(json.Unmarshal([]byte(resp.Body), &result)).To(Succeed())
		return result
	}

	It("should call Textract with the object from the event", func() {
		_, err := handler.HandleRequest(context.Background(), s3Event("docs", "invoice.png"))
		Expect(err).NotTo(HaveOccurred())

		Expect(client.inputs).To(HaveLen(1))
		object := client.inputs[0].Document.S3Object
		Expect(aws.ToString(object.Bucket)).To(Equal("docs"))
		Expect(aws.ToString(object.Name)).To(Equal("invoice.png"))
	})

	It("should return the LINE texts with the file key", func() {
		client.output.Blocks = []types.Block{
			block(types.BlockTypePage, ""),
			block(types.BlockTypeLine, "INVOICE #42"),
			block(types.BlockTypeWord, "INVOICE"),
			block(types.BlockTypeWord, "#42"),
			block(types.BlockTypeLine, "Total: 10.00"),
		}

		resp, err := handler.HandleRequest(context.Background(), s3Event("docs", "invoice.png"))
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(resp.Body).To(MatchJSON(`{"file_key":"invoice.png","extracted_text":["INVOICE #42","Total: 10.00"]}`))
	})

	It("should return as many lines as there are LINE blocks", func() {
		for i := 0; i < 25; i++ {
			client.output.Blocks = append(client.output.Blocks,
				block(types.BlockTypeWord, "w"),
				block(types.BlockTypeLine, string(rune('a'+i))),
			)
		}

		resp, err := handler.HandleRequest(context.Background(), s3Event("docs", "long.pdf"))
		Expect(err).NotTo(HaveOccurred())
		result := decodeBody(resp)
		Expect(result.ExtractedText).To(HaveLen(25))
		Expect(result.ExtractedText[0]).To(Equal("a"))
		Expect(result.ExtractedText[24]).To(Equal("y"))
	})

	It("should encode an empty list when nothing was detected", func() {
		resp, err := handler.HandleRequest(context.Background(), s3Event("docs", "blank.png"))
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Body).To(MatchJSON(`{"file_key":"blank.png","extracted_text":[]}`))
	})

	It("should only process the first record", func() {
		event := s3Event("docs", "first.png")
		event.Records = append(event.Records, s3Event("docs", "second.png").Records...)

		resp, err := handler.HandleRequest(context.Background(), event)
		Expect(err).NotTo(HaveOccurred())
		Expect(client.inputs).To(HaveLen(1))
		Expect(decodeBody(resp).FileKey).To(Equal("first.png"))
	})

	When("the event has no records", func() {
		It("should return the error without calling Textract", func() {
			_, err := handler.HandleRequest(context.Background(), events.S3Event{})
			Expect(errors.Is(err, s3event.ErrNoRecords)).To(BeTrue())
			Expect(client.inputs).To(BeEmpty())
		})
	})

	When("Textract fails", func() {
		It("should propagate the error", func() {
			client.err = errors.New("throttled")

			resp, err := handler.HandleRequest(context.Background(), s3Event("docs", "invoice.png"))
			Expect(err).To(MatchError(ContainSubstring("throttled")))
			Expect(errors.Is(err, client.err)).To(BeTrue())
			Expect(resp.Body).To(BeEmpty())
		})
	})
})

var _ = Describe("LoadConfig", func() {
	It("should default the log level", func() {
		os.Unsetenv("LOG_LEVEL")
		cfg, err := LoadConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.LogLevel).To(Equal("info"))
	})

	It("should read LOG_LEVEL from the environment", func() {
		os.Setenv("LOG_LEVEL", "debug")
		DeferCleanup(os.Unsetenv, "LOG_LEVEL")

		cfg, err := LoadConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.LogLevel).To(Equal("debug"))
	})
})
