package training

import "time"

type DrillType string

const (
	DrillFullThrow      DrillType = "FULL_THROW"
	DrillStandThrow     DrillType = "STAND_THROW"
	DrillGlideDrill     DrillType = "GLIDE_DRILL"
	DrillSpinDrill      DrillType = "SPIN_DRILL"
	DrillTechnicalDrill DrillType = "TECHNICAL_DRILL"
	DrillStrengthDrill  DrillType = "STRENGTH_DRILL"
	DrillMobilityDrill  DrillType = "MOBILITY_DRILL"
	DrillOther          DrillType = "OTHER"
)

var DrillTypes = []DrillType{
	DrillFullThrow,
	DrillStandThrow,
	DrillGlideDrill,
	DrillSpinDrill,
	DrillTechnicalDrill,
	DrillStrengthDrill,
	DrillMobilityDrill,
	DrillOther,
}

func (dt DrillType) IsValid() bool {
	for _, t := range DrillTypes {
		if dt == t {
			return true
		}
	}
	return false
}

func (dt DrillType) String() string {
	return string(dt)
}

type SessionStatus string

const (
	StatusPlanned    SessionStatus = "PLANNED"
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusCompleted  SessionStatus = "COMPLETED"
	StatusCancelled  SessionStatus = "CANCELLED"
)

func (s SessionStatus) IsValid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s SessionStatus) String() string {
	return string(s)
}

// CanTransitionTo tells whether the status machine allows moving from s
// to the target status. A completed session can be completed again,
// re-finalizing overwrites the logged throws. Cancelled is terminal.
func (s SessionStatus) CanTransitionTo(target SessionStatus) bool {
	switch s {
	case StatusPlanned:
		return target == StatusInProgress || target == StatusCompleted || target == StatusCancelled
	case StatusInProgress:
		return target == StatusCompleted || target == StatusCancelled
	case StatusCompleted:
		return target == StatusCompleted
	}
	return false
}

// Drill is one planned block of throws within a training session.
// ImplementWeight is a free-form label such as "4kg shot" or "1.6kg discus".
type Drill struct {
	ID              string    `json:"id"`
	SessionID       string    `json:"sessionId"`
	Name            string    `json:"name"`
	Type            DrillType `json:"type"`
	ImplementWeight string    `json:"implementWeight"`
	TargetReps      int       `json:"targetReps"`
	Order           int       `json:"order"`
	Notes           *string   `json:"notes"`
}

type TrainingSession struct {
	ID          string        `json:"id"`
	CoachID     string        `json:"coachId"`
	AthleteID   string        `json:"athleteId"`
	Title       string        `json:"title"`
	ScheduledAt time.Time     `json:"scheduledAt"`
	Status      SessionStatus `json:"status"`
	SessionRPE  *int          `json:"sessionRPE"`
	Notes       *string       `json:"notes"`
	Drills      []Drill       `json:"drills"`
	CreatedAt   time.Time     `json:"createdAt"`
}
