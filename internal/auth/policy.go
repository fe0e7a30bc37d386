package auth

// Action is what an actor attempts to do with a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource types known to the policy.
const (
	ResourceTrainingSession = "training-session"
	ResourceWorkout         = "workout"
	ResourceAssignment      = "workout-assignment"
	ResourceExerciseCatalog = "exercise-catalog"
	ResourceVideo           = "video"
	ResourceAthleteLink     = "athlete-link"
)

// Actor is the authenticated user performing a request.
type Actor struct {
	ID   string
	Role Role
}

// Resource identifies the target of a request and its ownership.
// CoachID and AthleteID may be empty when the resource is not yet
// scoped to a concrete coach or athlete (e.g. on creation).
type Resource struct {
	Type      string
	CoachID   string
	AthleteID string
}

// Allowed is the single authorization decision point. All handlers go
// through here, no role checks are scattered around the codebase.
func Allowed(actor Actor, resource Resource, action Action) bool {
	if actor.ID == "" || !actor.Role.IsValid() {
		return false
	}

	ownsAsCoach := resource.CoachID == "" || resource.CoachID == actor.ID
	ownsAsAthlete := resource.AthleteID == actor.ID

	switch resource.Type {
	case ResourceExerciseCatalog:
		if action == ActionRead {
			return true
		}
		return actor.Role == RoleCoach
	case ResourceTrainingSession:
		switch actor.Role {
		case RoleCoach:
			return ownsAsCoach
		case RoleAthlete:
			// athletes view and log their own sessions, planning is coach territory
			return ownsAsAthlete && (action == ActionRead || action == ActionUpdate)
		}
	case ResourceWorkout, ResourceAssignment:
		switch actor.Role {
		case RoleCoach:
			return ownsAsCoach
		case RoleAthlete:
			return ownsAsAthlete && action == ActionRead
		}
	case ResourceVideo:
		switch actor.Role {
		case RoleCoach:
			return ownsAsCoach
		case RoleAthlete:
			return ownsAsAthlete && action != ActionDelete
		}
	case ResourceAthleteLink:
		return actor.Role == RoleCoach && ownsAsCoach
	}

	return false
}
