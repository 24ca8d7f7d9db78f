package service

import (
	"strings"
	"sync"
	"time"

	"go-bank-console/client"
	"go-bank-console/logger"

	"github.com/sirupsen/logrus"
)

type session struct {
	dashboard *Dashboard
	search    *AccountSearch
	detail    *AccountDetail
	lastSeen  time.Time
}

func (s *session) close() {
	s.dashboard.Close()
	s.search.Close()
	if s.detail != nil {
		s.detail.Close()
	}
}

// Pages keeps the open pages of every console session. A session has one
// dashboard, one search box and at most one account detail page: opening
// another IBAN closes the previous detail page.
type Pages struct {
	client client.IAccountClient
	opts   PageOptions
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func NewPages(c client.IAccountClient, opts PageOptions) *Pages {
	return &Pages{
		client:   c,
		opts:     opts,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// sessionLocked returns the session with the given ID, creating it on first
// use. The caller holds p.mu.
func (p *Pages) sessionLocked(id string) *session {
	s, ok := p.sessions[id]
	if !ok {
		s = &session{
			dashboard: NewDashboard(p.client, p.opts),
			search:    NewAccountSearch(p.opts),
		}
		p.sessions[id] = s
		logger.Log.WithField("session", id).Debug("Console session opened")
	}
	s.lastSeen = p.now()
	return s
}

func (p *Pages) Dashboard(sessionID string) *Dashboard {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sessionLocked(sessionID).dashboard
}

func (p *Pages) Search(sessionID string) *AccountSearch {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sessionLocked(sessionID).search
}

// OpenAccountDetail returns the detail page for iban. The page is reused when
// it is already open; otherwise the previous one is closed and a new,
// not yet loaded page is returned.
func (p *Pages) OpenAccountDetail(sessionID, iban string) (page *AccountDetail, created bool) {
	iban = strings.TrimSpace(iban)

	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.sessionLocked(sessionID)
	if s.detail != nil && !s.detail.Closed() && s.detail.IBAN() == iban {
		return s.detail, false
	}
	if s.detail != nil {
		s.detail.Close()
	}
	s.detail = NewAccountDetail(p.client, iban, p.opts)
	return s.detail, true
}

// CurrentAccountDetail returns the open detail page of a session, if any.
func (p *Pages) CurrentAccountDetail(sessionID string) *AccountDetail {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.sessions[sessionID]
	if !ok || s.detail == nil || s.detail.Closed() {
		return nil
	}
	s.lastSeen = p.now()
	return s.detail
}

// CloseSession closes every page of a session. Requests still in flight for
// those pages complete without effect.
func (p *Pages) CloseSession(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s, ok := p.sessions[sessionID]; ok {
		s.close()
		delete(p.sessions, sessionID)
		logger.Log.WithField("session", sessionID).Info("Console session closed")
	}
}

func (p *Pages) CloseAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, s := range p.sessions {
		s.close()
		delete(p.sessions, id)
	}
}

// Sweep closes sessions idle for longer than maxIdle and returns how many
// were removed.
func (p *Pages) Sweep(maxIdle time.Duration) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	cutoff := p.now().Add(-maxIdle)
	removed := 0
	for id, s := range p.sessions {
		if s.lastSeen.Before(cutoff) {
			s.close()
			delete(p.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		logger.Log.WithFields(logrus.Fields{
			"removed": removed,
			"active":  len(p.sessions),
		}).Info("Swept idle console sessions")
	}
	return removed
}

func (p *Pages) Sessions() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sessions)
}
