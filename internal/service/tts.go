package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"learntendo/internal/domain"
	"learntendo/internal/util"

	"go.uber.org/zap"
)

// nonSpeechRE drops symbols the speech backend chokes on, keeping word
// characters, whitespace, basic punctuation and the Arabic letter range.
var nonSpeechRE = regexp.MustCompile(`[^\w\s.,!?ء-ي]+`)

// SpeechClip is one synthesized utterance.
type SpeechClip struct {
	Filename string
	MIMEType string
	Language string
	Audio    []byte
}

// TTSService converts text to speech. Language is detected, not
// declared: any Arabic-block rune switches the voice to Arabic,
// otherwise English is used.
type TTSService interface {
	Synthesize(ctx context.Context, text string) (*SpeechClip, error)
}

type ttsService struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

func NewTTSService(endpoint string, client *http.Client, logger *zap.Logger) TTSService {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &ttsService{endpoint: endpoint, client: client, logger: logger}
}

func (s *ttsService) Synthesize(ctx context.Context, text string) (*SpeechClip, error) {
	clean := strings.TrimSpace(nonSpeechRE.ReplaceAllString(text, ""))
	if clean == "" {
		return nil, domain.NewInvalidInputError("Input cannot be empty")
	}
	lang := detectLanguage(clean)

	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("tl", lang)
	query.Set("q", clean)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, domain.NewInternalError("failed to build speech request", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("speech synthesis request failed", zap.Error(err))
		return nil, domain.NewError(domain.CodeLLMServiceError, "The speech service failed to synthesize audio", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("speech synthesis rejected", zap.Int("status", resp.StatusCode))
		return nil, domain.NewError(domain.CodeLLMServiceError, "The speech service failed to synthesize audio",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewError(domain.CodeLLMServiceError, "The speech service failed to synthesize audio", err)
	}

	return &SpeechClip{
		Filename: "audio_" + util.NewULID() + ".mp3",
		MIMEType: "audio/mpeg",
		Language: lang,
		Audio:    audio,
	}, nil
}

// detectLanguage returns "ar" if any rune falls in the Arabic Unicode
// block, "en" otherwise.
func detectLanguage(text string) string {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return "ar"
		}
	}
	return "en"
}
