package sync

import "time"

// ServerClock estimates game-epoch server time locally between polls
// (spec.md §4.7: "serverSyncGameS + (realNow − clientSyncRealS) ·
// timeScale").
type ServerClock struct {
	serverSyncGameS float64
	clientSyncReal  time.Time
	timeScale       float64

	now func() time.Time
}

// NewServerClock returns a clock using time.Now for the real-time axis.
func NewServerClock() *ServerClock {
	return &ServerClock{now: time.Now}
}

// Sync records a fresh (server_time, time_scale) pair observed at the
// current real time, per the 1-second state poll.
func (s *ServerClock) Sync(serverGameS, timeScale float64) {
	s.serverSyncGameS = serverGameS
	s.clientSyncReal = s.now()
	s.timeScale = timeScale
}

// Estimate returns the current estimated game-epoch second.
func (s *ServerClock) Estimate() float64 {
	if s.clientSyncReal.IsZero() {
		return s.serverSyncGameS
	}
	elapsed := s.now().Sub(s.clientSyncReal).Seconds()
	return s.serverSyncGameS + elapsed*s.timeScale
}
