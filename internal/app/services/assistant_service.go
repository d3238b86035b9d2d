package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/logger"
)

// maxAnswerBytes caps how much of the webhook response body is read.
const maxAnswerBytes = 1 << 20

// AssistantService forwards free-text questions to the campus assistant
// webhook and returns its answer.
type AssistantService interface {
	Ask(ctx context.Context, question string) (dto.AskResponse, error)
}

type assistantServiceImpl struct {
	client     *http.Client
	webhookURL string
}

// NewAssistantService creates a new assistant service instance. The
// timeout bounds the whole webhook round trip.
func NewAssistantService(webhookURL string, timeout time.Duration) AssistantService {
	return &assistantServiceImpl{
		client:     &http.Client{Timeout: timeout},
		webhookURL: webhookURL,
	}
}

// webhookPayload is the wire shape sent to the assistant webhook.
type webhookPayload struct {
	Question string `json:"question"`
}

// webhookAnswer matches the shapes the webhook is known to respond with:
// a plain {"answer": ...} object or an n8n-style {"output": ...} object.
type webhookAnswer struct {
	Answer string `json:"answer"`
	Output string `json:"output"`
}

func (s *assistantServiceImpl) Ask(ctx context.Context, question string) (dto.AskResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return dto.AskResponse{}, apperrors.NewValidationError("the question is required")
	}
	if s.webhookURL == "" {
		return dto.AskResponse{}, apperrors.NewCustomError(apperrors.ErrExternalService, "the assistant is not configured")
	}

	body, err := json.Marshal(webhookPayload{Question: question})
	if err != nil {
		return dto.AskResponse{}, fmt.Errorf("error encoding webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return dto.AskResponse{}, fmt.Errorf("error building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("Assistant webhook request failed")
		return dto.AskResponse{}, apperrors.NewCustomError(apperrors.ErrExternalService, "the assistant did not respond")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxAnswerBytes))
	if err != nil {
		logger.Error().Err(err).Msg("Error reading assistant webhook response")
		return dto.AskResponse{}, apperrors.NewCustomError(apperrors.ErrExternalService, "the assistant response could not be read")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error().Int("status", resp.StatusCode).Msg("Assistant webhook returned an error status")
		return dto.AskResponse{}, apperrors.NewCustomError(apperrors.ErrExternalService,
			fmt.Sprintf("the assistant returned status %d", resp.StatusCode))
	}

	return dto.AskResponse{Answer: extractAnswer(raw)}, nil
}

// extractAnswer pulls the answer text out of the webhook body. JSON bodies
// are inspected for the known answer fields; anything else is returned as
// plain text.
func extractAnswer(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))

	var parsed webhookAnswer
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Answer != "" {
			return parsed.Answer
		}
		if parsed.Output != "" {
			return parsed.Output
		}
	}

	// A bare JSON string decodes to its content.
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	return trimmed
}
