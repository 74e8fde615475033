// Package gpsdata holds the client-side working set of GPS sessions and
// location tracks, kept consistent with the last known server state.
package gpsdata

import (
	"context"
	"sync"

	"github.com/anrokk/SportMap-Client/internal/api"
	"github.com/anrokk/SportMap-Client/internal/shared/geo"
)

// SessionAPI is the slice of the authenticated adapter the store uses.
type SessionAPI interface {
	GpsSessions(ctx context.Context) ([]api.GpsSessionView, error)
	GpsSession(ctx context.Context, id string) (api.GpsSession, error)
	CreateGpsSession(ctx context.Context, in api.GpsSessionCreate) (api.GpsSession, error)
	UpdateGpsSession(ctx context.Context, id string, in api.GpsSessionUpdate) (api.GpsSession, error)
	DeleteGpsSession(ctx context.Context, id string) error
	LocationsForSession(ctx context.Context, sessionID string) ([]api.GpsLocation, error)
	GpsSessionTypes(ctx context.Context) ([]api.GpsSessionType, error)
	GpsLocationTypes(ctx context.Context) ([]api.GpsLocationType, error)
}

// Store state is replaced wholesale from server responses: fetch failures
// empty the affected collection rather than keeping stale data. Reads record
// failures in the shared error slot; mutations additionally return the error
// so callers get a synchronous failure signal.
type Store struct {
	api SessionAPI

	mu                       sync.Mutex
	sessions                 []api.GpsSessionView
	selectedSession          *api.GpsSession
	selectedSessionLocations []api.GpsLocation
	sessionTypes             []api.GpsSessionType
	locationTypes            []api.GpsLocationType
	isLoadingSessions        bool
	isLoadingLocations       bool
	lastError                string
}

func NewStore(sessionAPI SessionAPI) *Store {
	return &Store{api: sessionAPI}
}

func (s *Store) Sessions() []api.GpsSessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.GpsSessionView, len(s.sessions))
	copy(out, s.sessions)
	return out
}

func (s *Store) SelectedSession() *api.GpsSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedSession == nil {
		return nil
	}
	session := *s.selectedSession
	return &session
}

func (s *Store) SelectedSessionLocations() []api.GpsLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.GpsLocation, len(s.selectedSessionLocations))
	copy(out, s.selectedSessionLocations)
	return out
}

func (s *Store) SessionTypes() []api.GpsSessionType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.GpsSessionType, len(s.sessionTypes))
	copy(out, s.sessionTypes)
	return out
}

func (s *Store) LocationTypes() []api.GpsLocationType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.GpsLocationType, len(s.locationTypes))
	copy(out, s.locationTypes)
	return out
}

func (s *Store) IsLoadingSessions() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoadingSessions
}

func (s *Store) IsLoadingLocations() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoadingLocations
}

// LastError is the single shared error slot; each new operation overwrites
// it.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// TrackCoordinates derives the (latitude, longitude) track of the selected
// session, dropping locations missing either coordinate and preserving the
// server's order.
func (s *Store) TrackCoordinates() [][2]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	track := make([][2]float64, 0, len(s.selectedSessionLocations))
	for _, loc := range s.selectedSessionLocations {
		if loc.Latitude == nil || loc.Longitude == nil {
			continue
		}
		track = append(track, [2]float64{*loc.Latitude, *loc.Longitude})
	}
	return track
}

// TrackDistanceKm sums the haversine distance along the derived track, for
// display next to the map. The server-computed session distance stays
// authoritative; this only covers the currently drawn track.
func (s *Store) TrackDistanceKm() float64 {
	track := s.TrackCoordinates()
	var total float64
	for i := 1; i < len(track); i++ {
		total += geo.HaversineKm(track[i-1][0], track[i-1][1], track[i][0], track[i][1])
	}
	return total
}

// FetchSessions replaces the session listing wholesale in the server's
// order. On failure the listing is emptied; stale data is never retained.
func (s *Store) FetchSessions(ctx context.Context) {
	s.beginSessions()
	defer s.endSessions()

	sessions, err := s.api.GpsSessions(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastError = err.Error()
		s.sessions = nil
		return
	}
	s.sessions = sessions
}

func (s *Store) FetchSessionDetails(ctx context.Context, id string) {
	s.beginSessions()
	defer s.endSessions()

	session, err := s.api.GpsSession(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastError = err.Error()
		s.selectedSession = nil
		return
	}
	s.selectedSession = &session
}

func (s *Store) FetchLocations(ctx context.Context, sessionID string) {
	s.mu.Lock()
	s.isLoadingLocations = true
	s.lastError = ""
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.isLoadingLocations = false
		s.mu.Unlock()
	}()

	locations, err := s.api.LocationsForSession(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastError = err.Error()
		s.selectedSessionLocations = nil
		return
	}
	s.selectedSessionLocations = locations
}

func (s *Store) FetchSessionTypes(ctx context.Context) {
	s.beginSessions()
	defer s.endSessions()

	types, err := s.api.GpsSessionTypes(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastError = err.Error()
		s.sessionTypes = nil
		return
	}
	s.sessionTypes = types
}

func (s *Store) FetchLocationTypes(ctx context.Context) {
	s.beginSessions()
	defer s.endSessions()

	types, err := s.api.GpsLocationTypes(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastError = err.Error()
		s.locationTypes = nil
		return
	}
	s.locationTypes = types
}

// CreateSession creates on the server and re-fetches the full listing, so
// denormalized listing fields stay authoritative. No optimistic insert.
func (s *Store) CreateSession(ctx context.Context, in api.GpsSessionCreate) (api.GpsSession, error) {
	s.beginSessions()
	defer s.endSessions()

	created, err := s.api.CreateGpsSession(ctx, in)
	if err != nil {
		s.recordError(err)
		return api.GpsSession{}, err
	}

	s.FetchSessions(ctx)
	return created, nil
}

// UpdateSession re-fetches the listing and, when the updated session is the
// selected one, its detail too, so the detail view cannot silently diverge.
func (s *Store) UpdateSession(ctx context.Context, id string, in api.GpsSessionUpdate) (api.GpsSession, error) {
	s.beginSessions()
	defer s.endSessions()

	updated, err := s.api.UpdateGpsSession(ctx, id, in)
	if err != nil {
		s.recordError(err)
		return api.GpsSession{}, err
	}

	s.FetchSessions(ctx)

	s.mu.Lock()
	selected := s.selectedSession != nil && s.selectedSession.ID == id
	s.mu.Unlock()
	if selected {
		s.FetchSessionDetails(ctx, id)
	}
	return updated, nil
}

// DeleteSession removes the entry locally by id instead of re-fetching. A
// deleted session that was selected takes its locations with it in the same
// update.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	s.beginSessions()
	defer s.endSessions()

	if err := s.api.DeleteGpsSession(ctx, id); err != nil {
		s.recordError(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.sessions[:0]
	for _, session := range s.sessions {
		if session.ID != id {
			kept = append(kept, session)
		}
	}
	s.sessions = kept
	if s.selectedSession != nil && s.selectedSession.ID == id {
		s.selectedSession = nil
		s.selectedSessionLocations = nil
	}
	return nil
}

// ClearSelection resets the selected session and its locations together,
// for navigation away from a detail view.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedSession = nil
	s.selectedSessionLocations = nil
}

func (s *Store) beginSessions() {
	s.mu.Lock()
	s.isLoadingSessions = true
	s.lastError = ""
	s.mu.Unlock()
}

func (s *Store) endSessions() {
	s.mu.Lock()
	s.isLoadingSessions = false
	s.mu.Unlock()
}

func (s *Store) recordError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
}
