package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/throwlab/backend/internal/auth"
	"github.com/throwlab/backend/internal/telemetry/tracing"
	"github.com/throwlab/backend/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if _, err = r.db.Exec(
		ctx,
		`INSERT INTO app_user
				(id, email, name, password_hash, role, created_at)
				VALUES ($1, $2, $3, $4, $5, $6);`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role, user.CreatedAt,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &user, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	return r.scanOne(r.db.QueryRow(
		ctx,
		`SELECT id, email, name, password_hash, role, created_at
			FROM app_user
			WHERE id = $1;`,
		id,
	))
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanOne(r.db.QueryRow(
		ctx,
		`SELECT id, email, name, password_hash, role, created_at
			FROM app_user
			WHERE email = $1;`,
		email,
	))
}

// ListAthletes returns the athletes linked to the given coach, by name.
func (r *Repo) ListAthletes(ctx context.Context, coachID string) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.listAthletes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("coach_id", coachID))

	rows, err := r.db.Query(
		ctx,
		`SELECT u.id, u.email, u.name, u.password_hash, u.role, u.created_at
			FROM app_user u
			JOIN coach_athlete ca ON ca.athlete_id = u.id
			WHERE ca.coach_id = $1
			ORDER BY u.name ASC;`,
		coachID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	athletes := make([]User, 0)
	for rows.Next() {
		var u User
		var role string
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Role = auth.Role(role)
		athletes = append(athletes, u)
	}

	return athletes, nil
}

func (r *Repo) LinkExists(ctx context.Context, coachID, athleteID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.linkExists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM coach_athlete WHERE coach_id = $1 AND athlete_id = $2);`,
		coachID, athleteID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *Repo) Link(ctx context.Context, coachID, athleteID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.link")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("coach_id", coachID))
	span.SetAttributes(attribute.String("athlete_id", athleteID))

	if _, err = r.db.Exec(
		ctx,
		`INSERT INTO coach_athlete (coach_id, athlete_id, linked_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (coach_id, athlete_id) DO NOTHING;`,
		coachID, athleteID, time.Now(),
	); err != nil {
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

func (r *Repo) Unlink(ctx context.Context, coachID, athleteID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.unlink")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err = r.db.Exec(
		ctx,
		`DELETE FROM coach_athlete WHERE coach_id = $1 AND athlete_id = $2;`,
		coachID, athleteID,
	); err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	return nil
}

func (r *Repo) scanOne(row pgx.Row) (*User, error) {
	var u User
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.Role = auth.Role(role)
	return &u, nil
}
