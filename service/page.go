// file: service/page.go

package service

import (
	"sync"
	"time"

	"go-bank-console/client"
	"go-bank-console/logger"
	"go-bank-console/metrics"
	"go-bank-console/model"

	"github.com/sirupsen/logrus"
)

// DefaultMessageTTL is how long a status message stays on a page.
const DefaultMessageTTL = 5 * time.Second

// Phase is the step of the page state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseErrored:
		return "errored"
	}
	return "unknown"
}

type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageWarning MessageKind = "warning"
	MessageDanger  MessageKind = "danger"
)

// Message is the transient banner shown on a page.
type Message struct {
	Kind MessageKind `json:"type"`
	Text string      `json:"text"`
}

// State is a snapshot of a page. Accounts held in it are never modified in
// place, only replaced.
type State struct {
	Phase   Phase
	Account *model.Account
	Error   string
	Message *Message
}

// Loading reports whether an operation is in flight.
func (s State) Loading() bool {
	return s.Phase == PhaseLoading
}

// PageOptions are shared by every page controller.
type PageOptions struct {
	MessageTTL time.Duration
	Metrics    *metrics.Collector
}

// Page owns the state of one page: the current account, the phase and the
// status message. All transitions go through its methods.
type Page struct {
	name    string
	ttl     time.Duration
	metrics *metrics.Collector

	mu         sync.Mutex
	state      State
	opSeq      uint64
	messageSeq uint64
	timer      *time.Timer
	closed     bool
}

func newPage(name string, opts PageOptions) *Page {
	ttl := opts.MessageTTL
	if ttl <= 0 {
		ttl = DefaultMessageTTL
	}
	return &Page{name: name, ttl: ttl, metrics: opts.Metrics}
}

// Snapshot returns a copy of the current state.
func (p *Page) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.state
	if s.Message != nil {
		msg := *s.Message
		s.Message = &msg
	}
	return s
}

// Account returns the currently loaded account, or nil.
func (p *Page) Account() *model.Account {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Account
}

// ClearMessage dismisses the status message before it expires.
func (p *Page) ClearMessage() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clearMessageLocked()
}

// Close deactivates the page. Results of operations still in flight are
// dropped when they arrive.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Page) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// begin moves the page to Loading and returns the token of the operation.
// A page that is already loading rejects the submission.
func (p *Page) begin(op string) (uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return 0, ErrPageClosed
	}
	if p.state.Phase == PhaseLoading {
		p.metrics.RecordPageOperation(p.name, op, "rejected")
		return 0, ErrOperationInFlight
	}

	p.opSeq++
	p.state.Phase = PhaseLoading
	p.state.Error = ""
	return p.opSeq, nil
}

// stale reports whether the result of operation token must be discarded.
// The caller holds p.mu.
func (p *Page) stale(token uint64, op string) bool {
	if p.closed || token != p.opSeq {
		logger.Log.WithFields(logrus.Fields{
			"page":      p.name,
			"operation": op,
		}).Debug("Discarding result for an inactive page")
		return true
	}
	return false
}

// succeed ends operation token by replacing the account with acc. A nil acc
// leaves the page without account.
func (p *Page) succeed(token uint64, op string, acc *model.Account, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stale(token, op) {
		return
	}
	p.state.Account = acc
	p.settleLocked()
	p.setMessageLocked(MessageSuccess, text)
	p.metrics.RecordPageOperation(p.name, op, "success")
}

// succeedKeep ends operation token without touching the account.
func (p *Page) succeedKeep(token uint64, op string, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stale(token, op) {
		return
	}
	p.settleLocked()
	p.setMessageLocked(MessageSuccess, text)
	p.metrics.RecordPageOperation(p.name, op, "success")
}

// fail ends operation token with an error. The account is left unchanged.
func (p *Page) fail(token uint64, op, action string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stale(token, op) {
		return
	}

	text := action + " failed: " + client.Message(err)
	logger.Log.WithFields(logrus.Fields{
		"page":      p.name,
		"operation": op,
	}).WithError(err).Warn("Page operation failed")

	p.state.Phase = PhaseErrored
	p.state.Error = text
	p.setMessageLocked(MessageDanger, text)
	p.metrics.RecordPageOperation(p.name, op, "error")
}

// reject reports a validation failure. No request was sent, so the phase is
// left as it is.
func (p *Page) reject(op string, err error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPageClosed
	}
	p.setMessageLocked(MessageWarning, capitalize(err.Error()))
	p.metrics.RecordPageOperation(p.name, op, "rejected")
	return err
}

func (p *Page) settleLocked() {
	p.state.Error = ""
	if p.state.Account != nil {
		p.state.Phase = PhaseLoaded
	} else {
		p.state.Phase = PhaseIdle
	}
}

// setMessageLocked shows a message and schedules its removal. Each message
// is shown for the full TTL; a newer message restarts the countdown.
func (p *Page) setMessageLocked(kind MessageKind, text string) {
	if p.timer != nil {
		p.timer.Stop()
	}
	p.messageSeq++
	seq := p.messageSeq
	p.state.Message = &Message{Kind: kind, Text: text}
	p.timer = time.AfterFunc(p.ttl, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if seq == p.messageSeq {
			p.clearMessageLocked()
		}
	})
}

func (p *Page) clearMessageLocked() {
	p.state.Message = nil
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	if p.state.Phase == PhaseErrored {
		p.settleLocked()
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
