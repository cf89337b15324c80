package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"google.golang.org/api/option"
	speech "google.golang.org/api/speech/v1"
)

const (
	defaultSampleRate    = 16000
	defaultLanguageCode  = "en-US"
	defaultListenSeconds = 5
	defaultRecordCommand = "arecord"
)

// GoogleRecognizer captures audio with an external recorder and transcribes
// it through the Google Cloud Speech-to-Text API.
type GoogleRecognizer struct {
	service       *speech.Service
	recordCommand string
	languageCode  string
	listenSeconds int
}

// GoogleOption customizes a GoogleRecognizer.
type GoogleOption func(*GoogleRecognizer)

// WithRecordCommand overrides the audio capture binary (default arecord).
func WithRecordCommand(cmd string) GoogleOption {
	return func(g *GoogleRecognizer) { g.recordCommand = cmd }
}

// WithLanguageCode sets the transcription language (default en-US).
func WithLanguageCode(code string) GoogleOption {
	return func(g *GoogleRecognizer) { g.languageCode = code }
}

// WithListenSeconds sets how long each capture runs (default 5s).
func WithListenSeconds(seconds int) GoogleOption {
	return func(g *GoogleRecognizer) {
		if seconds > 0 {
			g.listenSeconds = seconds
		}
	}
}

// NewGoogleRecognizer builds a recognizer backed by the Speech-to-Text API.
// Authentication follows the usual Google API conventions: an explicit API
// key if given, otherwise application default credentials.
func NewGoogleRecognizer(ctx context.Context, apiKey string, opts ...GoogleOption) (*GoogleRecognizer, error) {
	var clientOpts []option.ClientOption
	if apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(apiKey))
	}

	service, err := speech.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create speech service: %w", err)
	}

	g := &GoogleRecognizer{
		service:       service,
		recordCommand: defaultRecordCommand,
		languageCode:  defaultLanguageCode,
		listenSeconds: defaultListenSeconds,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Listen records one utterance from the microphone and returns its
// transcript. An empty transcription result maps to ErrNotUnderstood.
func (g *GoogleRecognizer) Listen(ctx context.Context) (string, error) {
	audioPath := filepath.Join(os.TempDir(), "voiceplan-"+uuid.New().String()+".wav")
	defer func() { _ = os.Remove(audioPath) }()

	if err := g.capture(ctx, audioPath); err != nil {
		return "", fmt.Errorf("capture audio: %w", err)
	}

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read capture: %w", err)
	}

	resp, err := g.service.Speech.Recognize(&speech.RecognizeRequest{
		Config: &speech.RecognitionConfig{
			Encoding:        "LINEAR16",
			SampleRateHertz: defaultSampleRate,
			LanguageCode:    g.languageCode,
		},
		Audio: &speech.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}

	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			if alt.Transcript != "" {
				return alt.Transcript, nil
			}
		}
	}
	return "", ErrNotUnderstood
}

// capture shells out to the configured recorder. arecord flags produce the
// 16kHz mono PCM the RecognitionConfig above declares.
func (g *GoogleRecognizer) capture(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, g.recordCommand,
		"-f", "S16_LE",
		"-r", strconv.Itoa(defaultSampleRate),
		"-c", "1",
		"-d", strconv.Itoa(g.listenSeconds),
		path,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w (%s)", g.recordCommand, err, string(out))
	}
	return nil
}
