package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/zhouzirui/museum-guide/backend/internal/logger"
	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/service/dialogue"
	"github.com/zhouzirui/museum-guide/backend/internal/store"
	"github.com/zhouzirui/museum-guide/backend/internal/telemetry"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidLanguage = errors.New("language must be ko or en")
)

// Outcome 是一次操作后的完整会话与本次新增的消息。
type Outcome struct {
	Session chat.Session
	dialogue.Result
}

// Service 负责会话的创建、加载与保存；同一会话的操作串行执行。
type Service struct {
	store      store.Store
	controller *dialogue.Controller
	language   string
	now        func() time.Time
	log        *zap.SugaredLogger

	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// Option customises the service.
type Option func(*Service)

// WithDefaultLanguage sets the language used when CreateSession gets "".
func WithDefaultLanguage(language string) Option {
	return func(s *Service) {
		if language != "" {
			s.language = language
		}
	}
}

// WithClock overrides time.Now for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the dialogue controller to a session store.
func NewService(st store.Store, controller *dialogue.Controller, opts ...Option) *Service {
	s := &Service{
		store:      st,
		controller: controller,
		language:   "ko",
		now:        func() time.Time { return time.Now().UTC() },
		log:        logger.Named("session"),
		locks:      make(map[string]*sessionLock),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSession provisions a session, emits the greeting and persists it.
func (s *Service) CreateSession(ctx context.Context, language string) (Outcome, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		language = s.language
	}
	if language != "ko" && language != "en" {
		return Outcome{}, ErrInvalidLanguage
	}

	session := chat.NewSession(uuid.NewString(), language, s.now())
	res, err := s.controller.Start(ctx, &session)
	if err != nil {
		return Outcome{}, err
	}
	if err := s.store.SaveSession(ctx, session); err != nil {
		return Outcome{}, fmt.Errorf("save session: %w", err)
	}
	s.log.Infow("session created", "session_id", session.ID, "language", language)
	return Outcome{Session: session, Result: res}, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(ctx context.Context, sessionID string) (chat.Session, error) {
	session, found, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return chat.Session{}, err
	}
	if !found {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// Allowed 返回会话当前阶段可用的操作。
func (s *Service) Allowed(session chat.Session) []dialogue.ActionKind {
	return dialogue.Allowed(session.Stage)
}

// DeleteSession removes a session. Missing ids report ErrSessionNotFound.
func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	unlock := s.lock(sessionID)
	defer unlock()

	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return err
	}
	if err := s.store.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.log.Infow("session deleted", "session_id", sessionID)
	return nil
}

// Apply loads the session, runs the action through the controller and saves
// the result. The per-session lock is held for the whole sequence.
//
// A rejected action still returns the Outcome (with its guidance turn) next
// to the controller error; the session is saved in both cases.
func (s *Service) Apply(ctx context.Context, sessionID string, action dialogue.Action, opts ...dialogue.CallOption) (Outcome, error) {
	ctx, span := telemetry.Tracer.Start(ctx, "session.apply")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("action.kind", string(action.Kind)),
	)

	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return Outcome{}, err
	}

	res, applyErr := s.controller.Apply(ctx, &session, action, opts...)
	if len(res.Turns) > 0 || applyErr == nil {
		if err := s.store.SaveSession(ctx, session); err != nil {
			return Outcome{}, fmt.Errorf("save session: %w", err)
		}
	}

	span.SetAttributes(attribute.String("session.stage", string(session.Stage)))
	if applyErr != nil {
		span.SetStatus(codes.Error, applyErr.Error())
		s.log.Debugw("action rejected",
			"session_id", sessionID,
			"action", action.Kind,
			"stage", session.Stage,
			"error", applyErr,
		)
	} else {
		s.log.Debugw("action applied",
			"session_id", sessionID,
			"action", action.Kind,
			"stage", session.Stage,
		)
	}
	return Outcome{Session: session, Result: res}, applyErr
}

func (s *Service) lock(sessionID string) func() {
	s.mu.Lock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		s.locks[sessionID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, sessionID)
		}
		s.mu.Unlock()
	}
}
