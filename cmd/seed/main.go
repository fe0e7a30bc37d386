// Seeds the database with a demo coach, a couple of athletes and some
// training data, for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/throwlab/backend/internal/auth"
	"github.com/throwlab/backend/internal/db"
	"github.com/throwlab/backend/internal/throwlog"
	"github.com/throwlab/backend/internal/training"
	"github.com/throwlab/backend/internal/users"
	"github.com/throwlab/backend/internal/workouts"
	"github.com/throwlab/backend/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	dbHost := flag.String("db-host", "localhost", "postgres host")
	dbPort := flag.String("db-port", "5432", "postgres port")
	dbName := flag.String("db-name", "throwlab", "postgres database name")
	password := flag.String("password", "trainhard", "password for all seeded users")
	flag.Parse()

	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: *dbHost,
		DBPort: *dbPort,
		DBName: *dbName,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	passwordHash, err := pkg.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %s", err)
	}

	usersRepo := users.NewRepo(dbPool)

	coach, err := usersRepo.Add(ctx, users.User{
		Email:        "coach@throwlab.app",
		Name:         gofakeit.Name(),
		PasswordHash: passwordHash,
		Role:         auth.RoleCoach,
	})
	if err != nil {
		log.Fatalf("add coach: %s", err)
	}
	log.Infof("coach: %s [%s]", coach.Name, coach.Email)

	var athletes []*users.User
	for i := 0; i < 2; i++ {
		athlete, err := usersRepo.Add(ctx, users.User{
			Email:        fmt.Sprintf("athlete%d@throwlab.app", i+1),
			Name:         gofakeit.Name(),
			PasswordHash: passwordHash,
			Role:         auth.RoleAthlete,
		})
		if err != nil {
			log.Fatalf("add athlete: %s", err)
		}
		if err := usersRepo.Link(ctx, coach.ID, athlete.ID); err != nil {
			log.Fatalf("link athlete: %s", err)
		}
		log.Infof("athlete: %s [%s]", athlete.Name, athlete.Email)
		athletes = append(athletes, athlete)
	}

	seedWorkout(ctx, dbPool, coach, athletes)
	seedSession(ctx, dbPool, coach, athletes[0])

	log.Infof("all seeded, login with password: %s", *password)
}

func seedWorkout(ctx context.Context, dbPool *pgxpool.Pool, coach *users.User, athletes []*users.User) {
	workoutsRepo := workouts.NewRepo(dbPool)

	squat, err := workoutsRepo.CreateExercise(ctx, workouts.Exercise{
		Name:         "Back Squat",
		Description:  "Barbell back squat",
		Instructions: "Brace, sit down between the hips, drive up through mid-foot",
		MuscleGroups: []string{"quads", "glutes", "core"},
		Equipment:    []string{"barbell", "rack"},
		Difficulty:   workouts.DifficultyIntermediate,
	})
	if err != nil {
		log.Fatalf("add exercise: %s", err)
	}

	medBallThrow, err := workoutsRepo.CreateExercise(ctx, workouts.Exercise{
		Name:         "Overhead Med Ball Throw",
		Description:  "Explosive overhead throw with a medicine ball",
		Instructions: "Full hip extension, release as late as possible",
		MuscleGroups: []string{"posterior chain", "shoulders"},
		Equipment:    []string{"medicine ball"},
		Difficulty:   workouts.DifficultyBeginner,
	})
	if err != nil {
		log.Fatalf("add exercise: %s", err)
	}

	sets, reps := 5, 3
	throwSets, throwReps := 4, 6
	weight := 120.0
	rest := 180
	duration := 60
	workout, err := workoutsRepo.CreateWorkout(ctx, workouts.Workout{
		CoachID:     coach.ID,
		Name:        "Throwers Strength A",
		Description: "Heavy lower body plus ballistic work",
		Duration:    &duration,
		Exercises: []workouts.WorkoutExercise{
			{ExerciseID: squat.ID, Sets: &sets, Reps: &reps, Weight: &weight, RestTime: &rest},
			{ExerciseID: medBallThrow.ID, Sets: &throwSets, Reps: &throwReps},
		},
	})
	if err != nil {
		log.Fatalf("add workout: %s", err)
	}

	var athleteIDs []string
	for _, athlete := range athletes {
		athleteIDs = append(athleteIDs, athlete.ID)
	}
	dueDate := time.Now().Add(7 * 24 * time.Hour)
	if _, err := workoutsRepo.Assign(ctx, workout.ID, coach.ID, athleteIDs, &dueDate); err != nil {
		log.Fatalf("assign workout: %s", err)
	}

	log.Infof("workout: %s, assigned to %d athletes", workout.Name, len(athleteIDs))
}

func seedSession(ctx context.Context, dbPool *pgxpool.Pool, coach, athlete *users.User) {
	trainingRepo := training.NewRepo(dbPool)

	session, err := trainingRepo.Create(ctx, training.TrainingSession{
		CoachID:     coach.ID,
		AthleteID:   athlete.ID,
		Title:       "Morning throws",
		ScheduledAt: time.Now().Add(-24 * time.Hour),
		Status:      training.StatusInProgress,
		Drills: []training.Drill{
			{Name: "Stand throws", Type: training.DrillStandThrow, ImplementWeight: "4kg shot", TargetReps: 6},
			{Name: "Full approach", Type: training.DrillFullThrow, ImplementWeight: "4kg shot", TargetReps: 4},
		},
	})
	if err != nil {
		log.Fatalf("add session: %s", err)
	}

	throwLogsRepo := throwlog.NewRepo(dbPool)
	for i := 0; i < 6; i++ {
		throwLog := throwlog.ThrowLog{
			SessionID:   session.ID,
			DrillID:     session.Drills[0].ID,
			AthleteID:   athlete.ID,
			ThrowNumber: i + 1,
		}
		// every fourth throw fouls out
		if (i+1)%4 == 0 {
			throwLog.IsFoul = true
			foulReason := throwlog.FoulReasons[gofakeit.Number(0, len(throwlog.FoulReasons)-1)]
			throwLog.FoulReason = &foulReason
		} else {
			distance := gofakeit.Float64Range(14.5, 19.5)
			throwLog.Distance = &distance
		}
		if _, err := throwLogsRepo.Add(ctx, throwLog); err != nil {
			log.Fatalf("add throw log: %s", err)
		}
	}

	log.Infof("session: %s [%s], with 6 throws logged", session.Title, session.ID)
}
