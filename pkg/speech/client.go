package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	speechv1 "google.golang.org/api/speech/v1"
)

const defaultLanguageCode = "en-US"

// Transcriber converts raw audio bytes into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, languageHint string) (string, error)
}

// Client wraps the Google Cloud Speech-to-Text API service.
type Client struct {
	service *speechv1.Service
}

var _ Transcriber = (*Client)(nil)

// NewClientFromCredentialsFile creates a Speech client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Speech client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, speechv1.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := speechv1.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}
	return &Client{service: svc}, nil
}

// Transcribe sends the audio to the Speech-to-Text API and returns the
// concatenated transcript. The encoding is left unspecified so the
// service infers it from the container header.
func (c *Client) Transcribe(ctx context.Context, audio []byte, languageHint string) (string, error) {
	lang := languageHint
	if lang == "" {
		lang = defaultLanguageCode
	}

	req := &speechv1.RecognizeRequest{
		Config: &speechv1.RecognitionConfig{
			LanguageCode: lang,
		},
		Audio: &speechv1.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}

	resp, err := c.service.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("speech: recognize failed: %w", err)
	}

	transcript := ""
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			transcript += result.Alternatives[0].Transcript
		}
	}
	return transcript, nil
}
