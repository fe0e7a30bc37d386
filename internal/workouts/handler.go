package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/throwlab/backend/internal/auth"
	"github.com/throwlab/backend/internal/telemetry/tracing"
	"github.com/throwlab/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	CreateExercise(ctx context.Context, actor auth.Actor, exercise Exercise) (_ *Exercise, err error)
	ListExercises(ctx context.Context, actor auth.Actor) (_ []Exercise, err error)
	CreateWorkout(ctx context.Context, actor auth.Actor, workout Workout) (_ *Workout, err error)
	GetWorkout(ctx context.Context, actor auth.Actor, id string) (_ *Workout, err error)
	ListWorkouts(ctx context.Context, actor auth.Actor) (_ []Workout, err error)
	AssignWorkout(ctx context.Context, actor auth.Actor, workoutID string, athleteIDs []string, dueDate *time.Time) (_ []Assignment, err error)
	ListAssignments(ctx context.Context, actor auth.Actor, athleteID string) (_ []Assignment, err error)
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleCreate).Methods("POST", "OPTIONS").Name("workout-create")
	router.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("workout-list")
	router.HandleFunc("/exercises", handler.HandleCreateExercise).Methods("POST", "OPTIONS").Name("exercise-create")
	router.HandleFunc("/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS").Name("exercise-list")
	router.HandleFunc("/assignments", handler.HandleListAssignments).Methods("GET", "OPTIONS").Name("assignment-list")
	router.HandleFunc("/assign", handler.HandleAssign).Methods("POST", "OPTIONS").Name("workout-assign")
	router.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("workout-get")
}

func (handler *Handler) HandleCreateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.createExercise")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Errorf("new exercise, unmarshal json params: %s", err)
		http.Error(w, "create exercise failed", http.StatusBadRequest)
		return
	}

	created, err := handler.service.CreateExercise(ctx, actor, exercise)
	if err != nil {
		writeServiceError(w, "create exercise", err)
		return
	}

	exerciseJson, err := json.Marshal(created)
	if err != nil {
		log.Errorf("marshal created exercise: %s", err)
		http.Error(w, "create exercise failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseJson, http.StatusCreated)
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listExercises")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exercises, err := handler.service.ListExercises(ctx, actor)
	if err != nil {
		writeServiceError(w, "list exercises", err)
		return
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("marshal exercises: %s", err)
		http.Error(w, "list exercises failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exercisesJson)
}

type NewWorkoutRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Duration    *int              `json:"duration"`
	Exercises   []WorkoutExercise `json:"exercises"`
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req NewWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("new workout, unmarshal json params: %s", err)
		http.Error(w, "create workout failed", http.StatusBadRequest)
		return
	}

	created, err := handler.service.CreateWorkout(ctx, actor, Workout{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Exercises:   req.Exercises,
	})
	if err != nil {
		writeServiceError(w, "create workout", err)
		return
	}

	workoutJson, err := json.Marshal(created)
	if err != nil {
		log.Errorf("marshal created workout: %s", err)
		http.Error(w, "create workout failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout created: %s", created.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workouts, err := handler.service.ListWorkouts(ctx, actor)
	if err != nil {
		writeServiceError(w, "list workouts", err)
		return
	}

	workoutsJson, err := json.Marshal(workouts)
	if err != nil {
		log.Errorf("marshal workouts: %s", err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutsJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.GetWorkout(ctx, actor, id)
	if err != nil {
		writeServiceError(w, "get workout", err)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("marshal workout: %s", err)
		http.Error(w, "get workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutJson)
}

type AssignWorkoutRequest struct {
	WorkoutID  string     `json:"workoutId"`
	AthleteIDs []string   `json:"athleteIds"`
	DueDate    *time.Time `json:"dueDate"`
}

func (handler *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.assign")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req AssignWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("assign workout, unmarshal json params: %s", err)
		http.Error(w, "assign workout failed", http.StatusBadRequest)
		return
	}

	if req.WorkoutID == "" || len(req.AthleteIDs) == 0 {
		http.Error(w, "error, workout id and athlete ids are required", http.StatusBadRequest)
		return
	}

	assignments, err := handler.service.AssignWorkout(ctx, actor, req.WorkoutID, req.AthleteIDs, req.DueDate)
	if err != nil {
		writeServiceError(w, "assign workout", err)
		return
	}

	assignmentsJson, err := json.Marshal(assignments)
	if err != nil {
		log.Errorf("marshal assignments: %s", err)
		http.Error(w, "assign workout failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout %s assigned to %d athletes", req.WorkoutID, len(assignments))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, assignmentsJson, http.StatusCreated)
}

func (handler *Handler) HandleListAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listAssignments")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	assignments, err := handler.service.ListAssignments(ctx, actor, r.URL.Query().Get("athlete"))
	if err != nil {
		writeServiceError(w, "list assignments", err)
		return
	}

	assignmentsJson, err := json.Marshal(assignments)
	if err != nil {
		log.Errorf("marshal assignments: %s", err)
		http.Error(w, "list assignments failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, assignmentsJson)
}

func writeServiceError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		http.Error(w, action+" failed - not allowed", http.StatusForbidden)
	case errors.Is(err, ErrWorkoutNotFound), errors.Is(err, ErrExerciseNotFound):
		http.Error(w, action+" failed - not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidWorkout),
		errors.Is(err, ErrInvalidExercise),
		errors.Is(err, ErrAthleteNotLinked),
		errors.Is(err, ErrNoAthletes):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
	}
}
