package run

import (
	"time"

	"github.com/geosohn7/FunRun/internal/shared/geo"

	"github.com/google/uuid"
)

// NewSession allocates an ACTIVE session with an empty path.
func NewSession(userID string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    StatusActive,
		DistanceM: 0,
		CreatedAt: time.Now(),
	}
}

// AppendPoint records a GPS fix. While the path is non-empty the segment
// from the previous fix is added to the cumulative distance first. Points
// are kept in arrival order, regardless of their timestamps.
func (s *Session) AppendPoint(p GeoPoint) error {
	if s.Status != StatusActive {
		return ErrInvalidTransition
	}
	if len(s.Path) > 0 {
		last := s.Path[len(s.Path)-1]
		s.DistanceM += geo.DistanceM(last.Latitude, last.Longitude, p.Latitude, p.Longitude)
	}
	s.Path = append(s.Path, p)
	return nil
}

// Complete transitions ACTIVE -> COMPLETED.
func (s *Session) Complete() error {
	return s.end(StatusCompleted)
}

// Cancel transitions ACTIVE -> CANCELLED. No progression is awarded for
// cancelled sessions.
func (s *Session) Cancel() error {
	return s.end(StatusCancelled)
}

func (s *Session) end(status string) error {
	if s.Status != StatusActive {
		return ErrInvalidTransition
	}
	now := time.Now()
	s.Status = status
	s.EndedAt = &now
	return nil
}
