// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"image"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an election
type Status string

const (
	StatusSetup     Status = "setup"
	StatusVoting    Status = "voting"
	StatusCompleted Status = "completed"
)

// Candidate slot limits
const (
	MinCandidates = 2
	MaxCandidates = 10
)

// ImageLoader decodes and normalises candidate images.
// Implementations decide the output dimensions.
type ImageLoader interface {
	LoadPhoto(path string) (image.Image, error)
	LoadSymbol(path string) (image.Image, error)
}

type Candidate struct {
	Name       string
	PhotoPath  string
	SymbolPath string

	photo  image.Image
	symbol image.Image
}

// Photo returns the normalised photo, nil before voting starts
func (c Candidate) Photo() image.Image { return c.photo }

// Symbol returns the normalised symbol, nil before voting starts
func (c Candidate) Symbol() image.Image { return c.symbol }

type Election struct {
	id        string
	name      string
	status    Status
	slots     []Candidate
	tally     map[string]int
	createdAt time.Time
	openedAt  time.Time
	closedAt  time.Time
	now       func() time.Time
}

func newElection(name string, slots int, now func() time.Time) *Election {
	return &Election{
		id:        uuid.NewString(),
		name:      name,
		status:    StatusSetup,
		slots:     make([]Candidate, slots),
		createdAt: now(),
		now:       now,
	}
}

func (e *Election) ID() string           { return e.id }
func (e *Election) Name() string         { return e.name }
func (e *Election) Status() Status       { return e.status }
func (e *Election) SlotCount() int       { return len(e.slots) }
func (e *Election) CreatedAt() time.Time { return e.createdAt }

// OpenedAt is zero until voting starts
func (e *Election) OpenedAt() time.Time { return e.openedAt }

// ClosedAt is zero until voting ends
func (e *Election) ClosedAt() time.Time { return e.closedAt }

// Candidates returns a copy of the slots in registration order.
// During setup some slots may be partially filled.
func (e *Election) Candidates() []Candidate {
	out := make([]Candidate, len(e.slots))
	copy(out, e.slots)
	return out
}

// Candidate returns the slot at index
func (e *Election) Candidate(index int) (Candidate, error) {
	if index < 0 || index >= len(e.slots) {
		return Candidate{}, &SlotOutOfRangeError{Index: index, Slots: len(e.slots)}
	}
	return e.slots[index], nil
}

// Tally returns a copy of the vote counts, nil during setup
func (e *Election) Tally() map[string]int {
	if e.tally == nil {
		return nil
	}
	out := make(map[string]int, len(e.tally))
	for name, votes := range e.tally {
		out[name] = votes
	}
	return out
}

func (e *Election) TotalVotes() int {
	total := 0
	for _, votes := range e.tally {
		total += votes
	}
	return total
}

// SetCandidate fills slot index. Empty values are accepted here and
// rejected by ValidateAndStart.
func (e *Election) SetCandidate(index int, name, photoPath, symbolPath string) error {
	if e.status != StatusSetup {
		return &InvalidStateError{Op: "register candidate", Status: e.status}
	}
	if index < 0 || index >= len(e.slots) {
		return &SlotOutOfRangeError{Index: index, Slots: len(e.slots)}
	}

	e.slots[index] = Candidate{
		Name:       strings.TrimSpace(name),
		PhotoPath:  strings.TrimSpace(photoPath),
		SymbolPath: strings.TrimSpace(symbolPath),
	}
	return nil
}

// ValidateAndStart checks every slot, loads the candidate images and opens
// voting. On any error the election stays in setup.
func (e *Election) ValidateAndStart(loader ImageLoader) error {
	if e.status != StatusSetup {
		return &InvalidStateError{Op: "start voting", Status: e.status}
	}

	if err := e.validateSlots(); err != nil {
		return err
	}

	// Load into a scratch copy so a failure leaves the slots untouched
	roster := make([]Candidate, len(e.slots))
	copy(roster, e.slots)
	for i := range roster {
		photo, err := loader.LoadPhoto(roster[i].PhotoPath)
		if err != nil {
			return &ResourceLoadError{CandidateIndex: i, Resource: FieldPhoto, Err: err}
		}
		symbol, err := loader.LoadSymbol(roster[i].SymbolPath)
		if err != nil {
			return &ResourceLoadError{CandidateIndex: i, Resource: FieldSymbol, Err: err}
		}
		roster[i].photo = photo
		roster[i].symbol = symbol
	}

	tally := make(map[string]int, len(roster))
	for _, c := range roster {
		tally[c.Name] = 0
	}

	e.slots = roster
	e.tally = tally
	e.status = StatusVoting
	e.openedAt = e.now()
	return nil
}

func (e *Election) validateSlots() error {
	for i, c := range e.slots {
		switch {
		case c.Name == "":
			return &IncompleteCandidateError{Index: i, Field: FieldName}
		case c.PhotoPath == "":
			return &IncompleteCandidateError{Index: i, Field: FieldPhoto}
		case c.SymbolPath == "":
			return &IncompleteCandidateError{Index: i, Field: FieldSymbol}
		}
	}

	seen := make(map[string]int, len(e.slots))
	for i, c := range e.slots {
		if first, ok := seen[c.Name]; ok {
			return &DuplicateCandidateNameError{Name: c.Name, First: first, Second: i}
		}
		seen[c.Name] = i
	}
	return nil
}

// CastVote adds one vote for the named candidate. There is no voter
// identity check; every call counts.
func (e *Election) CastVote(candidateName string) error {
	if e.status != StatusVoting {
		return &InvalidStateError{Op: "cast vote", Status: e.status}
	}
	if _, ok := e.tally[candidateName]; !ok {
		return &UnknownCandidateError{Name: candidateName}
	}

	e.tally[candidateName]++
	return nil
}

// EndVoting closes voting for good. The tally is read-only afterwards.
func (e *Election) EndVoting() error {
	if e.status != StatusVoting {
		return &InvalidStateError{Op: "end voting", Status: e.status}
	}

	e.status = StatusCompleted
	e.closedAt = e.now()
	return nil
}

// RankedResults orders the roster by votes, highest first.
func (e *Election) RankedResults() ([]Result, error) {
	if e.status != StatusCompleted {
		return nil, &InvalidStateError{Op: "rank results", Status: e.status}
	}
	return RankCandidates(e.slots, e.tally), nil
}

// Export builds the snapshot document for a completed election
func (e *Election) Export(now time.Time) (Snapshot, error) {
	if e.status != StatusCompleted {
		return Snapshot{}, &InvalidStateError{Op: "export results", Status: e.status}
	}
	return newSnapshot(e.name, now, e.slots, e.tally), nil
}
