package throwlog

import "time"

type FoulReason string

const (
	FoulOutFront      FoulReason = "OUT_FRONT"
	FoulSectorLeft    FoulReason = "SECTOR_LEFT"
	FoulSectorRight   FoulReason = "SECTOR_RIGHT"
	FoulLateBlock     FoulReason = "LATE_BLOCK"
	FoulBalanceLoss   FoulReason = "BALANCE_LOSS"
	FoulFootworkError FoulReason = "FOOTWORK_ERROR"
	FoulReleaseError  FoulReason = "RELEASE_ERROR"
	FoulOther         FoulReason = "OTHER"
)

var FoulReasons = []FoulReason{
	FoulOutFront,
	FoulSectorLeft,
	FoulSectorRight,
	FoulLateBlock,
	FoulBalanceLoss,
	FoulFootworkError,
	FoulReleaseError,
	FoulOther,
}

func (fr FoulReason) IsValid() bool {
	for _, r := range FoulReasons {
		if fr == r {
			return true
		}
	}
	return false
}

func (fr FoulReason) String() string {
	return string(fr)
}

// ThrowLog is a single recorded throw attempt within a training session.
// Distance is in meters and is nil for fouls and unmeasured throws.
type ThrowLog struct {
	ID          string      `json:"id"`
	SessionID   string      `json:"sessionId"`
	DrillID     string      `json:"drillId"`
	AthleteID   string      `json:"athleteId"`
	ThrowNumber int         `json:"throwNumber"`
	Distance    *float64    `json:"distance"`
	IsFoul      bool        `json:"isFoul"`
	FoulReason  *FoulReason `json:"foulReason"`
	Notes       *string     `json:"notes"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Valid reports whether the throw counts towards distance stats.
func (tl ThrowLog) Valid() bool {
	return !tl.IsFoul
}

// Measured reports whether the throw has a recorded distance.
func (tl ThrowLog) Measured() bool {
	return !tl.IsFoul && tl.Distance != nil
}
