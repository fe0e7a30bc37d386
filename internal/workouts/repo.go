package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/throwlab/backend/internal/telemetry/tracing"
	"github.com/throwlab/backend/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrWorkoutNotFound  = errors.New("workout not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CreateExercise(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}
	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}

	if _, err = r.db.Exec(
		ctx,
		`INSERT INTO exercise
				(id, name, description, instructions, muscle_groups, equipment, difficulty, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		exercise.ID, exercise.Name, exercise.Description, exercise.Instructions,
		exercise.MuscleGroups, exercise.Equipment, exercise.Difficulty, exercise.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	return &exercise, nil
}

func (r *Repo) GetExercise(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var e Exercise
	var difficulty string
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, description, instructions, muscle_groups, equipment, difficulty, created_at
			FROM exercise
			WHERE id = $1;`,
		id,
	).Scan(&e.ID, &e.Name, &e.Description, &e.Instructions, &e.MuscleGroups, &e.Equipment, &difficulty, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	e.Difficulty = Difficulty(difficulty)

	return &e, nil
}

func (r *Repo) ListExercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, description, instructions, muscle_groups, equipment, difficulty, created_at
			FROM exercise
			ORDER BY name ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		var difficulty string
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.Instructions,
			&e.MuscleGroups, &e.Equipment, &difficulty, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.Difficulty = Difficulty(difficulty)
		exercises = append(exercises, e)
	}

	return exercises, nil
}

// CreateWorkout stores the workout and its exercise slots in one
// transaction. Slot order is made dense (1..n) in the given order.
func (r *Repo) CreateWorkout(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				log.Errorf("create workout, rollback: %s", rollbackErr)
			}
		}
	}()

	if _, err = tx.Exec(
		ctx,
		`INSERT INTO workout
				(id, coach_id, name, description, duration, created_at)
				VALUES ($1, $2, $3, $4, $5, $6);`,
		workout.ID, workout.CoachID, workout.Name, workout.Description,
		workout.Duration, workout.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	for i := range workout.Exercises {
		slot := &workout.Exercises[i]
		if slot.ID == "" {
			slot.ID = uuid.NewString()
		}
		slot.WorkoutID = workout.ID
		slot.Order = i + 1

		if _, err = tx.Exec(
			ctx,
			`INSERT INTO workout_exercise
					(id, workout_id, exercise_id, sets, reps, weight, duration, rest_time, slot_order)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			slot.ID, slot.WorkoutID, slot.ExerciseID, slot.Sets, slot.Reps,
			slot.Weight, slot.Duration, slot.RestTime, slot.Order,
		); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return nil, ErrExerciseNotFound
			}
			return nil, fmt.Errorf("insert workout exercise: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.String("workout.id", workout.ID))
	return &workout, nil
}

func (r *Repo) GetWorkout(ctx context.Context, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var w Workout
	err = r.db.QueryRow(
		ctx,
		`SELECT id, coach_id, name, description, duration, created_at
			FROM workout
			WHERE id = $1;`,
		id,
	).Scan(&w.ID, &w.CoachID, &w.Name, &w.Description, &w.Duration, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	if w.Exercises, err = r.exercisesForWorkout(ctx, w.ID); err != nil {
		return nil, fmt.Errorf("get workout exercises: %w", err)
	}
	return &w, nil
}

// ListWorkouts returns all workouts created by the given coach, newest
// first, with their exercise slots.
func (r *Repo) ListWorkouts(ctx context.Context, coachID string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("coach_id", coachID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, coach_id, name, description, duration, created_at
			FROM workout
			WHERE coach_id = $1
			ORDER BY created_at DESC;`,
		coachID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	workouts := make([]Workout, 0)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.CoachID, &w.Name, &w.Description, &w.Duration, &w.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	for i := range workouts {
		if workouts[i].Exercises, err = r.exercisesForWorkout(ctx, workouts[i].ID); err != nil {
			return nil, fmt.Errorf("get workout exercises: %w", err)
		}
	}

	return workouts, nil
}

// Assign creates one assignment per athlete in a single transaction.
func (r *Repo) Assign(ctx context.Context, workoutID, assignedBy string, athleteIDs []string, dueDate *time.Time) (_ []Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.assign")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout_id", workoutID))
	span.SetAttributes(attribute.Int("athletes", len(athleteIDs)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				log.Errorf("assign workout, rollback: %s", rollbackErr)
			}
		}
	}()

	now := time.Now()
	assignments := make([]Assignment, 0, len(athleteIDs))
	for _, athleteID := range athleteIDs {
		assignment := Assignment{
			ID:         uuid.NewString(),
			WorkoutID:  workoutID,
			AthleteID:  athleteID,
			AssignedBy: assignedBy,
			AssignedAt: now,
			DueDate:    dueDate,
		}
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO workout_assignment
					(id, workout_id, athlete_id, assigned_by, assigned_at, due_date, completed)
					VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			assignment.ID, assignment.WorkoutID, assignment.AthleteID,
			assignment.AssignedBy, assignment.AssignedAt, assignment.DueDate, assignment.Completed,
		); err != nil {
			return nil, fmt.Errorf("insert assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return assignments, nil
}

// ListAssignments returns the athlete's assignments, newest first.
func (r *Repo) ListAssignments(ctx context.Context, athleteID string) (_ []Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listAssignments")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete_id", athleteID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, athlete_id, assigned_by, assigned_at, due_date, completed
			FROM workout_assignment
			WHERE athlete_id = $1
			ORDER BY assigned_at DESC;`,
		athleteID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	assignments := make([]Assignment, 0)
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(
			&a.ID, &a.WorkoutID, &a.AthleteID, &a.AssignedBy,
			&a.AssignedAt, &a.DueDate, &a.Completed,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func (r *Repo) exercisesForWorkout(ctx context.Context, workoutID string) ([]WorkoutExercise, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, exercise_id, sets, reps, weight, duration, rest_time, slot_order
			FROM workout_exercise
			WHERE workout_id = $1
			ORDER BY slot_order ASC;`,
		workoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	slots := make([]WorkoutExercise, 0)
	for rows.Next() {
		var slot WorkoutExercise
		if err := rows.Scan(
			&slot.ID, &slot.WorkoutID, &slot.ExerciseID, &slot.Sets, &slot.Reps,
			&slot.Weight, &slot.Duration, &slot.RestTime, &slot.Order,
		); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
