package collection

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPhaseKind   = errors.New("invalid phase kind")
	ErrInvalidPhaseWindow = errors.New("phase start must be before end")
)

type PhaseKind string

const (
	// PhaseKindPrivate is an allowlist window and outranks the public phase
	// whenever both are active.
	PhaseKindPrivate PhaseKind = "private"
	PhaseKindPublic  PhaseKind = "public"
)

func NewPhaseKind(s string) (PhaseKind, error) {
	switch PhaseKind(s) {
	case PhaseKindPrivate, PhaseKindPublic:
		return PhaseKind(s), nil
	default:
		return "", ErrInvalidPhaseKind
	}
}

// Phase is one pricing window of a collection's mint schedule.
type Phase struct {
	id            uuid.UUID
	kind          PhaseKind
	priceLamports uint64
	startsAt      time.Time
	endsAt        *time.Time
}

func NewPhase(kind PhaseKind, priceLamports uint64, startsAt time.Time, endsAt *time.Time) (Phase, error) {
	if kind != PhaseKindPrivate && kind != PhaseKindPublic {
		return Phase{}, ErrInvalidPhaseKind
	}
	if endsAt != nil && !startsAt.Before(*endsAt) {
		return Phase{}, ErrInvalidPhaseWindow
	}
	return Phase{
		id:            uuid.New(),
		kind:          kind,
		priceLamports: priceLamports,
		startsAt:      startsAt,
		endsAt:        endsAt,
	}, nil
}

func ReconstructPhase(id uuid.UUID, kind PhaseKind, priceLamports uint64, startsAt time.Time, endsAt *time.Time) Phase {
	return Phase{
		id:            id,
		kind:          kind,
		priceLamports: priceLamports,
		startsAt:      startsAt,
		endsAt:        endsAt,
	}
}

func (p Phase) ID() uuid.UUID         { return p.id }
func (p Phase) Kind() PhaseKind       { return p.kind }
func (p Phase) PriceLamports() uint64 { return p.priceLamports }
func (p Phase) StartsAt() time.Time   { return p.startsAt }
func (p Phase) EndsAt() *time.Time    { return p.endsAt }

func (p Phase) ActiveAt(now time.Time) bool {
	if now.Before(p.startsAt) {
		return false
	}
	if p.endsAt != nil && !now.Before(*p.endsAt) {
		return false
	}
	return true
}

func (p Phase) priority() int {
	if p.kind == PhaseKindPrivate {
		return 2
	}
	return 1
}

// ActivePhase returns the highest-priority phase active at now.
func ActivePhase(phases []Phase, now time.Time) (Phase, bool) {
	var best Phase
	found := false
	for _, p := range phases {
		if !p.ActiveAt(now) {
			continue
		}
		if !found || p.priority() > best.priority() {
			best = p
			found = true
		}
	}
	return best, found
}
