package workouts

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

func (d Difficulty) String() string {
	return string(d)
}

// Exercise is a catalog entry, shared between coaches.
type Exercise struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Instructions string     `json:"instructions"`
	MuscleGroups []string   `json:"muscleGroups"`
	Equipment    []string   `json:"equipment"`
	Difficulty   Difficulty `json:"difficulty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// WorkoutExercise is one exercise slot within a workout, with its
// prescription. Nil fields were left open by the coach.
type WorkoutExercise struct {
	ID         string   `json:"id"`
	WorkoutID  string   `json:"workoutId"`
	ExerciseID string   `json:"exerciseId"`
	Sets       *int     `json:"sets"`
	Reps       *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
	Duration   *int     `json:"duration"`
	RestTime   *int     `json:"restTime"`
	Order      int      `json:"order"`
}

type Workout struct {
	ID          string            `json:"id"`
	CoachID     string            `json:"coachId"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Duration    *int              `json:"duration"`
	Exercises   []WorkoutExercise `json:"exercises"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type Assignment struct {
	ID         string     `json:"id"`
	WorkoutID  string     `json:"workoutId"`
	AthleteID  string     `json:"athleteId"`
	AssignedBy string     `json:"assignedBy"`
	AssignedAt time.Time  `json:"assignedAt"`
	DueDate    *time.Time `json:"dueDate"`
	Completed  bool       `json:"completed"`
}
