package ui

import (
	"time"
)

// statusTTL is how long transient confirmations stay on screen
const statusTTL = 3 * time.Second

// reloadingStatus is shown while a page refetches after an error
const reloadingStatus = "Reloading..."

// StatusKind selects how a page status line is styled
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusWarning
)

// PageState is embedded by every page model: current layout plus one status line.
type PageState struct {
	Layout       Layout
	StatusMsg    string
	StatusKind   StatusKind
	StatusExpiry time.Time
}

// NewPageState creates a PageState for layout with no status
func NewPageState(layout Layout) PageState {
	return PageState{Layout: layout}
}

// SetStatus shows an informational message for ttl (0 keeps it until replaced)
func (p *PageState) SetStatus(msg string, ttl time.Duration) {
	p.setStatus(msg, StatusInfo, ttl)
}

// SetWarning shows a warning that stays until cleared
func (p *PageState) SetWarning(msg string) {
	p.setStatus(msg, StatusWarning, 0)
}

func (p *PageState) setStatus(msg string, kind StatusKind, ttl time.Duration) {
	p.StatusMsg = msg
	p.StatusKind = kind
	p.StatusExpiry = time.Time{}
	if ttl > 0 {
		p.StatusExpiry = time.Now().Add(ttl)
	}
}

// ClearStatus removes the status line
func (p *PageState) ClearStatus() {
	p.setStatus("", StatusInfo, 0)
}

// ClearExpiredStatus drops a timed status once it has expired
func (p *PageState) ClearExpiredStatus() {
	if !p.StatusExpiry.IsZero() && time.Now().After(p.StatusExpiry) {
		p.ClearStatus()
	}
}

// HasStatus reports whether a status line is showing
func (p *PageState) HasStatus() bool {
	return p.StatusMsg != ""
}

// UpdateLayout recomputes the layout for a new window size and reports whether it changed
func (p *PageState) UpdateLayout(width, height int) bool {
	layout := NewLayout(width, height)
	if layout == p.Layout {
		return false
	}
	p.Layout = layout
	return true
}
