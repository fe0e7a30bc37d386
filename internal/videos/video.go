package videos

import "time"

type EventType string

const (
	EventShotPut EventType = "SHOT_PUT"
	EventDiscus  EventType = "DISCUS"
	EventJavelin EventType = "JAVELIN"
	EventHammer  EventType = "HAMMER"
	EventOther   EventType = "OTHER"
)

var EventTypes = []EventType{
	EventShotPut,
	EventDiscus,
	EventJavelin,
	EventHammer,
	EventOther,
}

func (et EventType) IsValid() bool {
	for _, t := range EventTypes {
		if et == t {
			return true
		}
	}
	return false
}

func (et EventType) String() string {
	return string(et)
}

// Video is the metadata of one uploaded training clip. The bytes live
// on disk, DiskPath points at them and stays server-side.
type Video struct {
	ID             string    `json:"id"`
	AthleteID      string    `json:"athleteId"`
	UploadedBy     string    `json:"uploadedBy"`
	Title          string    `json:"title"`
	EventType      EventType `json:"eventType"`
	ContentType    string    `json:"contentType"`
	Size           int64     `json:"size"`
	DiskPath       string    `json:"-"`
	AnnotationPath *string   `json:"-"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
}
