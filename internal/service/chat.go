package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"learntendo/internal/cache"
	"learntendo/internal/domain"
	"learntendo/internal/util"

	"go.uber.org/zap"
)

// tutorSystemInstruction sets the persona for every chat turn.
const tutorSystemInstruction = `You are Learntendo AI Tutor, an educational assistant who teaches topics clearly and engagingly.

Always:
- Use structured formatting (headings, bullet points) to make answers easy to follow.
- Explain with simple, friendly language and give relevant examples.
- Build on the earlier messages of the conversation.

Goal: make the user feel like they are learning with a smart, supportive tutor.`

// ChatService holds a tutoring conversation. Each session is keyed by
// its own identifier and keeps a bounded message history with a TTL;
// there is no process-wide shared history.
type ChatService interface {
	Chat(ctx context.Context, sessionID, userInput string) (reply, sid string, err error)
}

type chatService struct {
	model        domain.ChatModel
	cache        domain.Cache
	historyLimit int
	sessionTTL   time.Duration
	timeout      time.Duration
	logger       *zap.Logger
}

func NewChatService(
	model domain.ChatModel,
	c domain.Cache,
	historyLimit int,
	sessionTTL time.Duration,
	timeout time.Duration,
	logger *zap.Logger,
) ChatService {
	return &chatService{
		model:        model,
		cache:        c,
		historyLimit: historyLimit,
		sessionTTL:   sessionTTL,
		timeout:      timeout,
		logger:       logger,
	}
}

// Chat answers one user turn. An empty sessionID starts a new session;
// the (possibly fresh) identifier is returned so the caller can keep
// the conversation going.
func (s *chatService) Chat(ctx context.Context, sessionID, userInput string) (string, string, error) {
	input := strings.TrimSpace(userInput)
	if input == "" {
		return "", "", domain.NewInvalidInputError("Input cannot be empty")
	}

	sid := sessionID
	if sid == "" {
		sid = util.NewULID()
	}
	key := cache.GenerateCacheKey("chat", "session", sid)

	history, err := s.loadHistory(ctx, key)
	if err != nil {
		return "", "", domain.NewInternalError("failed to load chat history", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.model.Converse(callCtx, tutorSystemInstruction, history, input)
	if err != nil {
		return "", "", domain.NewLLMServiceError(err)
	}

	s.persistTurn(ctx, key, input, reply)
	return reply, sid, nil
}

func (s *chatService) loadHistory(ctx context.Context, key string) ([]domain.ChatMessage, error) {
	entries, err := s.cache.LRange(ctx, key, 0, -1)
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, nil
		}
		return nil, err
	}

	history := make([]domain.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		var msg domain.ChatMessage
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			s.logger.Warn("dropping malformed chat history entry", zap.String("key", key), zap.Error(err))
			continue
		}
		history = append(history, msg)
	}
	return history, nil
}

// persistTurn appends the exchange, trims the list to the configured
// bound and refreshes the session TTL. The reply is already in the
// caller's hands, so persistence problems are logged, not surfaced.
func (s *chatService) persistTurn(ctx context.Context, key, input, reply string) {
	userMsg, _ := json.Marshal(domain.ChatMessage{Role: domain.ChatRoleUser, Content: input})
	modelMsg, _ := json.Marshal(domain.ChatMessage{Role: domain.ChatRoleModel, Content: reply})

	if err := s.cache.RPush(ctx, key, string(userMsg), string(modelMsg)); err != nil {
		s.logger.Warn("failed to append chat history", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.LTrim(ctx, key, int64(-2*s.historyLimit), -1); err != nil {
		s.logger.Warn("failed to trim chat history", zap.String("key", key), zap.Error(err))
	}
	if err := s.cache.Expire(ctx, key, s.sessionTTL); err != nil {
		s.logger.Warn("failed to refresh chat session TTL", zap.String("key", key), zap.Error(err))
	}
}
