package run

import (
	"context"
	"log"
	"sync"
	"time"
)

// Applier folds a completed run's distance into the owner's progression.
type Applier interface {
	Apply(ctx context.Context, userID string, distanceM float64) error
}

// Manager orchestrates the session lifecycle against the run store. All
// mutations of one run id are serialized through a per-id mutex so that
// concurrent location updates cannot read the same last point and corrupt
// the cumulative distance. Distinct run ids never contend.
type Manager struct {
	store       Store
	progression Applier

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewManager(store Store, progression Applier) *Manager {
	return &Manager{
		store:       store,
		progression: progression,
		locks:       map[string]*sync.Mutex{},
	}
}

func (m *Manager) lockRun(id string) *sync.Mutex {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	m.mu.Unlock()
	l.Lock()
	return l
}

func (m *Manager) releaseRun(id string) {
	m.mu.Lock()
	delete(m.locks, id)
	m.mu.Unlock()
}

func (m *Manager) StartRun(ctx context.Context, userID string) (StartResult, error) {
	s := NewSession(userID)
	if err := m.store.Create(ctx, s); err != nil {
		return StartResult{}, err
	}
	log.Printf("[run] user %s started run %s", userID, s.ID)
	return StartResult{RunID: s.ID, Status: "STARTED"}, nil
}

func (m *Manager) IngestLocation(ctx context.Context, runID string, lat, lng float64) (UpdateResult, error) {
	l := m.lockRun(runID)
	defer l.Unlock()

	s, err := m.store.Get(ctx, runID)
	if err != nil {
		return UpdateResult{}, err
	}
	if err := s.AppendPoint(GeoPoint{Latitude: lat, Longitude: lng, Timestamp: time.Now()}); err != nil {
		return UpdateResult{}, err
	}
	if err := m.store.Save(ctx, s); err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Status: "UPDATED", TotalDistance: s.DistanceM}, nil
}

// StopRun completes the session and then applies progression. A failed
// progression update is logged but never rolls back the completed run; a
// retried stop finds the session already COMPLETED and gets
// ErrInvalidTransition, which also prevents awarding the XP twice.
func (m *Manager) StopRun(ctx context.Context, runID string) (StopResult, error) {
	l := m.lockRun(runID)
	defer l.Unlock()

	s, err := m.store.Get(ctx, runID)
	if err != nil {
		return StopResult{}, err
	}
	if err := s.Complete(); err != nil {
		return StopResult{}, err
	}
	if err := m.store.Save(ctx, s); err != nil {
		return StopResult{}, err
	}
	m.releaseRun(runID)

	if m.progression != nil {
		if err := m.progression.Apply(ctx, s.UserID, s.DistanceM); err != nil {
			log.Printf("[run] progression update failed for user %s run %s: %v", s.UserID, runID, err)
		}
	}

	return StopResult{Status: "ENDED", FinalDistance: s.DistanceM, Summary: "Great job!"}, nil
}

// CancelRun ends the session without awarding progression.
func (m *Manager) CancelRun(ctx context.Context, runID string) (StopResult, error) {
	l := m.lockRun(runID)
	defer l.Unlock()

	s, err := m.store.Get(ctx, runID)
	if err != nil {
		return StopResult{}, err
	}
	if err := s.Cancel(); err != nil {
		return StopResult{}, err
	}
	if err := m.store.Save(ctx, s); err != nil {
		return StopResult{}, err
	}
	m.releaseRun(runID)

	return StopResult{Status: "CANCELLED", FinalDistance: s.DistanceM, Summary: "Maybe next time!"}, nil
}

func (m *Manager) GetRun(ctx context.Context, runID string) (*Session, error) {
	return m.store.Get(ctx, runID)
}
