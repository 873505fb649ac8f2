package repository

import (
	"context"
	"sync"
	"time"
	"zonecast/infras/otel"
	"zonecast/internal/domains/session/model"
	"zonecast/shared/constant"
	"zonecast/shared/failure"
)

// Session stores live sessions in process memory. Nothing is persisted.
type Session interface {
	Insert(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	Sweep(ctx context.Context, now time.Time, idle time.Duration) int
	Count(ctx context.Context) int
}

type repositoryImpl struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
	otel     otel.Otel
}

func New(otel otel.Otel) Session {
	return &repositoryImpl{
		sessions: make(map[string]*model.Session),
		otel:     otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, session *model.Session) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return failure.Conflict("session already exists") //nolint:wrapcheck
	}

	r.sessions[session.ID] = session

	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (*model.Session, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, failure.SessionNotFound
	}

	return session, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return failure.SessionNotFound
	}

	delete(r.sessions, id)

	return nil
}

// Sweep drops every session idle for longer than idle and returns how many went.
func (r *repositoryImpl) Sweep(ctx context.Context, now time.Time, idle time.Duration) int {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Sweep")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	swept := 0

	for id, session := range r.sessions {
		session.Lock()
		expired := session.Expired(now, idle)
		session.Unlock()

		if expired {
			delete(r.sessions, id)

			swept++
		}
	}

	return swept
}

func (r *repositoryImpl) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
