package training

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/throwlab/backend/internal/throwlog"
)

var (
	ErrSessionIncomplete = errors.New("session is not complete")
	ErrInvalidRPE        = errors.New("session RPE must be between 1 and 10")
	ErrFoulReasonMissing = errors.New("foul throws must have a foul reason")
	ErrThrowLimitReached = errors.New("drill throw limit reached")
	ErrThrowNotFound     = errors.New("throw not found")
	ErrNoDrills          = errors.New("session has no drills")
)

// ThrowEntry is a single throw as entered during a session. Distance is
// kept as the raw text typed in, it gets parsed on finalize.
type ThrowEntry struct {
	ThrowNumber int
	Distance    string
	IsFoul      bool
	FoulReason  *throwlog.FoulReason
	Notes       string
}

// CompletedThrow is one throw of the final session log.
type CompletedThrow struct {
	DrillID     string               `json:"drillId"`
	ThrowNumber int                  `json:"throwNumber"`
	Distance    *float64             `json:"distance"`
	IsFoul      bool                 `json:"isFoul"`
	FoulReason  *throwlog.FoulReason `json:"foulReason"`
	Notes       *string              `json:"notes"`
}

// CompletionPayload is the flattened result of a finalized session,
// throws ordered by drill order and throw number.
type CompletionPayload struct {
	SessionID  string           `json:"sessionId"`
	SessionRPE int              `json:"sessionRPE"`
	Notes      *string          `json:"notes"`
	Throws     []CompletedThrow `json:"throws"`
}

// IncompleteFoul points at a foul entry that has no reason set yet.
type IncompleteFoul struct {
	DrillID     string
	ThrowNumber int
}

// ProgressTracker drives the throw-by-throw logging of one training
// session. All editing applies to the current drill. The tracker is
// pure in-memory state, persistence happens on finalize only.
type ProgressTracker struct {
	sessionID       string
	athleteID       string
	drills          []Drill
	entries         map[string][]ThrowEntry
	currentDrillIdx int
}

// NewProgressTracker seeds the tracker from the session plan and any
// already persisted throw logs, and positions it at the first drill
// that still has throws left to log.
func NewProgressTracker(session *TrainingSession, logs []throwlog.ThrowLog) (*ProgressTracker, error) {
	if len(session.Drills) == 0 {
		return nil, ErrNoDrills
	}

	tracker := &ProgressTracker{
		sessionID: session.ID,
		athleteID: session.AthleteID,
		drills:    session.Drills,
		entries:   make(map[string][]ThrowEntry),
	}

	for _, tl := range logs {
		distance := ""
		if tl.Distance != nil {
			distance = strconv.FormatFloat(*tl.Distance, 'f', -1, 64)
		}
		notes := ""
		if tl.Notes != nil {
			notes = *tl.Notes
		}
		tracker.entries[tl.DrillID] = append(tracker.entries[tl.DrillID], ThrowEntry{
			ThrowNumber: tl.ThrowNumber,
			Distance:    distance,
			IsFoul:      tl.IsFoul,
			FoulReason:  tl.FoulReason,
			Notes:       notes,
		})
	}
	for drillID := range tracker.entries {
		tracker.renumber(drillID)
	}

	// seeded entries obey the same per-drill cap as AddThrow
	for _, drill := range tracker.drills {
		if len(tracker.entries[drill.ID]) > drill.TargetReps {
			return nil, fmt.Errorf("drill %s: %w", drill.ID, ErrThrowLimitReached)
		}
	}

	for i, drill := range tracker.drills {
		if !tracker.DrillComplete(drill.ID) {
			tracker.currentDrillIdx = i
			break
		}
		tracker.currentDrillIdx = i
	}

	return tracker, nil
}

func (t *ProgressTracker) CurrentDrill() Drill {
	return t.drills[t.currentDrillIdx]
}

func (t *ProgressTracker) CurrentDrillIndex() int {
	return t.currentDrillIdx
}

// Throws returns the entries logged for the given drill, in order.
func (t *ProgressTracker) Throws(drillID string) []ThrowEntry {
	return t.entries[drillID]
}

// AddThrow appends a throw to the current drill. The throw number is
// assigned by the tracker. Adding beyond the drill's target reps
// returns ErrThrowLimitReached.
func (t *ProgressTracker) AddThrow(entry ThrowEntry) error {
	drill := t.CurrentDrill()
	drillEntries := t.entries[drill.ID]
	if len(drillEntries) >= drill.TargetReps {
		return ErrThrowLimitReached
	}

	entry.ThrowNumber = len(drillEntries) + 1
	t.entries[drill.ID] = append(drillEntries, entry)
	return nil
}

// UpdateThrow replaces the throw with the given number in the current
// drill, keeping its number.
func (t *ProgressTracker) UpdateThrow(throwNumber int, entry ThrowEntry) error {
	drill := t.CurrentDrill()
	drillEntries := t.entries[drill.ID]
	for i := range drillEntries {
		if drillEntries[i].ThrowNumber == throwNumber {
			entry.ThrowNumber = throwNumber
			drillEntries[i] = entry
			return nil
		}
	}
	return ErrThrowNotFound
}

// RemoveThrow deletes the throw with the given number from the current
// drill and renumbers the remaining throws densely from 1.
func (t *ProgressTracker) RemoveThrow(throwNumber int) error {
	drill := t.CurrentDrill()
	drillEntries := t.entries[drill.ID]
	for i := range drillEntries {
		if drillEntries[i].ThrowNumber == throwNumber {
			t.entries[drill.ID] = append(drillEntries[:i], drillEntries[i+1:]...)
			t.renumber(drill.ID)
			return nil
		}
	}
	return ErrThrowNotFound
}

func (t *ProgressTracker) renumber(drillID string) {
	for i := range t.entries[drillID] {
		t.entries[drillID][i].ThrowNumber = i + 1
	}
}

// AdvanceDrill moves to the next drill, clamped at the last one.
func (t *ProgressTracker) AdvanceDrill() Drill {
	if t.currentDrillIdx < len(t.drills)-1 {
		t.currentDrillIdx++
	}
	return t.CurrentDrill()
}

// RetreatDrill moves to the previous drill, clamped at the first one.
func (t *ProgressTracker) RetreatDrill() Drill {
	if t.currentDrillIdx > 0 {
		t.currentDrillIdx--
	}
	return t.CurrentDrill()
}

func (t *ProgressTracker) DrillComplete(drillID string) bool {
	for _, drill := range t.drills {
		if drill.ID == drillID {
			return len(t.entries[drillID]) >= drill.TargetReps
		}
	}
	return false
}

func (t *ProgressTracker) SessionComplete() bool {
	for _, drill := range t.drills {
		if !t.DrillComplete(drill.ID) {
			return false
		}
	}
	return true
}

// IncompleteFouls lists all foul entries that are missing a valid foul
// reason, across all drills.
func (t *ProgressTracker) IncompleteFouls() []IncompleteFoul {
	var incomplete []IncompleteFoul
	for _, drill := range t.drills {
		for _, entry := range t.entries[drill.ID] {
			if !entry.IsFoul {
				continue
			}
			if entry.FoulReason == nil || !entry.FoulReason.IsValid() {
				incomplete = append(incomplete, IncompleteFoul{
					DrillID:     drill.ID,
					ThrowNumber: entry.ThrowNumber,
				})
			}
		}
	}
	return incomplete
}

// Finalize validates the session and builds the completion payload.
// It does not mutate the tracker, a failed persist can be retried.
func (t *ProgressTracker) Finalize(sessionRPE int, notes string) (*CompletionPayload, error) {
	if !t.SessionComplete() {
		return nil, ErrSessionIncomplete
	}
	if sessionRPE < 1 || sessionRPE > 10 {
		return nil, ErrInvalidRPE
	}
	if len(t.IncompleteFouls()) > 0 {
		return nil, ErrFoulReasonMissing
	}

	payload := &CompletionPayload{
		SessionID:  t.sessionID,
		SessionRPE: sessionRPE,
	}
	if notes != "" {
		payload.Notes = &notes
	}

	for _, drill := range t.drills {
		for _, entry := range t.entries[drill.ID] {
			throw := CompletedThrow{
				DrillID:     drill.ID,
				ThrowNumber: entry.ThrowNumber,
				IsFoul:      entry.IsFoul,
				FoulReason:  entry.FoulReason,
			}
			if !entry.IsFoul {
				if distance, err := strconv.ParseFloat(entry.Distance, 64); err == nil {
					throw.Distance = &distance
				}
			}
			if entry.Notes != "" {
				entryNotes := entry.Notes
				throw.Notes = &entryNotes
			}
			payload.Throws = append(payload.Throws, throw)
		}
	}

	return payload, nil
}
