package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/throwlab/backend/internal/auth"
	"github.com/throwlab/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrForbidden        = errors.New("actor not allowed")
	ErrAthleteNotLinked = errors.New("athlete not linked to coach")
	ErrInvalidExercise  = errors.New("invalid exercise")
	ErrInvalidWorkout   = errors.New("invalid workout")
	ErrNoAthletes       = errors.New("no athletes given")
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	CreateExercise(ctx context.Context, exercise Exercise) (_ *Exercise, err error)
	GetExercise(ctx context.Context, id string) (_ *Exercise, err error)
	ListExercises(ctx context.Context) (_ []Exercise, err error)
	CreateWorkout(ctx context.Context, workout Workout) (_ *Workout, err error)
	GetWorkout(ctx context.Context, id string) (_ *Workout, err error)
	ListWorkouts(ctx context.Context, coachID string) (_ []Workout, err error)
	Assign(ctx context.Context, workoutID, assignedBy string, athleteIDs []string, dueDate *time.Time) (_ []Assignment, err error)
	ListAssignments(ctx context.Context, athleteID string) (_ []Assignment, err error)
}

type athleteLinks interface {
	LinkExists(ctx context.Context, coachID, athleteID string) (_ bool, err error)
}

type Service struct {
	repo  workoutsRepo
	links athleteLinks
}

func NewService(repo workoutsRepo, links athleteLinks) *Service {
	return &Service{
		repo:  repo,
		links: links,
	}
}

// CreateExercise adds a catalog entry. Coach only, the catalog itself
// is shared between coaches.
func (s *Service) CreateExercise(ctx context.Context, actor auth.Actor, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.createExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !auth.Allowed(actor, auth.Resource{Type: auth.ResourceExerciseCatalog}, auth.ActionCreate) {
		return nil, ErrForbidden
	}
	if exercise.Name == "" || !exercise.Difficulty.IsValid() {
		return nil, ErrInvalidExercise
	}

	return s.repo.CreateExercise(ctx, exercise)
}

func (s *Service) ListExercises(ctx context.Context, actor auth.Actor) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !auth.Allowed(actor, auth.Resource{Type: auth.ResourceExerciseCatalog}, auth.ActionRead) {
		return nil, ErrForbidden
	}

	return s.repo.ListExercises(ctx)
}

func (s *Service) CreateWorkout(ctx context.Context, actor auth.Actor, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.createWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !auth.Allowed(actor, auth.Resource{
		Type:    auth.ResourceWorkout,
		CoachID: actor.ID,
	}, auth.ActionCreate) {
		return nil, ErrForbidden
	}

	if workout.Name == "" {
		return nil, ErrInvalidWorkout
	}
	for _, slot := range workout.Exercises {
		if slot.ExerciseID == "" {
			return nil, ErrInvalidWorkout
		}
	}

	workout.CoachID = actor.ID
	created, err := s.repo.CreateWorkout(ctx, workout)
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}

	span.SetAttributes(attribute.String("workout.id", created.ID))
	return created, nil
}

// GetWorkout returns the workout for its owning coach, or for an
// athlete that has it assigned.
func (s *Service) GetWorkout(ctx context.Context, actor auth.Actor, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.getWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	workout, err := s.repo.GetWorkout(ctx, id)
	if err != nil {
		return nil, err
	}

	resource := auth.Resource{
		Type:    auth.ResourceWorkout,
		CoachID: workout.CoachID,
	}
	if actor.Role == auth.RoleAthlete {
		assigned, err := s.assignedTo(ctx, actor.ID, workout.ID)
		if err != nil {
			return nil, err
		}
		if assigned {
			resource.AthleteID = actor.ID
		}
	}
	if !auth.Allowed(actor, resource, auth.ActionRead) {
		return nil, ErrForbidden
	}

	return workout, nil
}

func (s *Service) ListWorkouts(ctx context.Context, actor auth.Actor) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.listWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if actor.Role != auth.RoleCoach {
		return nil, ErrForbidden
	}

	return s.repo.ListWorkouts(ctx, actor.ID)
}

// AssignWorkout assigns the workout to the given athletes. The workout
// must belong to the coach, and every athlete must be linked.
func (s *Service) AssignWorkout(ctx context.Context, actor auth.Actor, workoutID string, athleteIDs []string, dueDate *time.Time) (_ []Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.assignWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout_id", workoutID))

	if len(athleteIDs) == 0 {
		return nil, ErrNoAthletes
	}

	workout, err := s.repo.GetWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	if !auth.Allowed(actor, auth.Resource{
		Type:    auth.ResourceAssignment,
		CoachID: workout.CoachID,
	}, auth.ActionCreate) {
		return nil, ErrForbidden
	}

	for _, athleteID := range athleteIDs {
		linked, err := s.links.LinkExists(ctx, actor.ID, athleteID)
		if err != nil {
			return nil, fmt.Errorf("check athlete link: %w", err)
		}
		if !linked {
			return nil, ErrAthleteNotLinked
		}
	}

	return s.repo.Assign(ctx, workoutID, actor.ID, athleteIDs, dueDate)
}

// ListAssignments returns the assignments of the given athlete. An
// athlete sees only their own, a coach only linked athletes'.
func (s *Service) ListAssignments(ctx context.Context, actor auth.Actor, athleteID string) (_ []Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.listAssignments")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete_id", athleteID))

	switch actor.Role {
	case auth.RoleAthlete:
		athleteID = actor.ID
	case auth.RoleCoach:
		linked, err := s.links.LinkExists(ctx, actor.ID, athleteID)
		if err != nil {
			return nil, fmt.Errorf("check athlete link: %w", err)
		}
		if !linked {
			return nil, ErrAthleteNotLinked
		}
	default:
		return nil, ErrForbidden
	}

	return s.repo.ListAssignments(ctx, athleteID)
}

func (s *Service) assignedTo(ctx context.Context, athleteID, workoutID string) (bool, error) {
	assignments, err := s.repo.ListAssignments(ctx, athleteID)
	if err != nil {
		return false, fmt.Errorf("list assignments: %w", err)
	}
	for _, a := range assignments {
		if a.WorkoutID == workoutID {
			return true, nil
		}
	}
	return false, nil
}
