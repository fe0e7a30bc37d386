package training

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/throwlab/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSessionNotFound = errors.New("training session not found")

type ListSessionsParams struct {
	CoachID   string
	AthleteID string
	Status    string
	From      *time.Time
	To        *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create stores the session and its drills in one transaction. Drill
// order is made dense (1..n) in the given order.
func (r *Repo) Create(ctx context.Context, session TrainingSession) (_ *TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	if session.Status == "" {
		session.Status = StatusPlanned
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				log.Errorf("create training session, rollback: %s", rollbackErr)
			}
		}
	}()

	if _, err = tx.Exec(
		ctx,
		`INSERT INTO training_session
				(id, coach_id, athlete_id, title, scheduled_at, status, session_rpe, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		session.ID, session.CoachID, session.AthleteID, session.Title,
		session.ScheduledAt, session.Status, session.SessionRPE, session.Notes, session.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	for i := range session.Drills {
		drill := &session.Drills[i]
		if drill.ID == "" {
			drill.ID = uuid.NewString()
		}
		drill.SessionID = session.ID
		drill.Order = i + 1

		if _, err = tx.Exec(
			ctx,
			`INSERT INTO drill
					(id, session_id, name, type, implement_weight, target_reps, drill_order, notes)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			drill.ID, drill.SessionID, drill.Name, drill.Type,
			drill.ImplementWeight, drill.TargetReps, drill.Order, drill.Notes,
		); err != nil {
			return nil, fmt.Errorf("insert drill: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.String("session.id", session.ID))
	return &session, nil
}

// Get returns the session with its drills ordered by drill order.
func (r *Repo) Get(ctx context.Context, id string) (_ *TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, coach_id, athlete_id, title, scheduled_at, status, session_rpe, notes, created_at
			FROM training_session
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}

	session := &sessions[0]
	if session.Drills, err = r.drillsForSession(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("get drills: %w", err)
	}
	return session, nil
}

// List returns sessions matching the given params, most recent first,
// with their drills.
func (r *Repo) List(ctx context.Context, params ListSessionsParams) (_ []TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("coach_id", params.CoachID))
	span.SetAttributes(attribute.String("athlete_id", params.AthleteID))
	span.SetAttributes(attribute.String("status", params.Status))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, coach_id, athlete_id, title, scheduled_at, status, session_rpe, notes, created_at
			FROM training_session
				WHERE ($1::text = '' OR coach_id = $1)
				AND ($2::text = '' OR athlete_id = $2)
				AND ($3::text = '' OR status = $3)
				AND ($4::timestamp IS NULL OR scheduled_at >= $4)
				AND ($5::timestamp IS NULL OR scheduled_at <= $5)
			ORDER BY scheduled_at DESC;`,
		params.CoachID, params.AthleteID, params.Status,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2sessions: %w", err)
	}

	for i := range sessions {
		if sessions[i].Drills, err = r.drillsForSession(ctx, sessions[i].ID); err != nil {
			return nil, fmt.Errorf("get drills: %w", err)
		}
	}

	return sessions, nil
}

func (r *Repo) UpdateStatus(ctx context.Context, id string, status SessionStatus) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.updateStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))
	span.SetAttributes(attribute.String("status", status.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE training_session SET status = $1 WHERE id = $2;`,
		status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Complete marks the session completed and stores the session RPE and notes.
func (r *Repo) Complete(ctx context.Context, id string, sessionRPE int, notes *string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))
	span.SetAttributes(attribute.Int("session_rpe", sessionRPE))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE training_session SET status = $1, session_rpe = $2, notes = $3 WHERE id = $4;`,
		StatusCompleted, sessionRPE, notes, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) drillsForSession(ctx context.Context, sessionID string) ([]Drill, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, session_id, name, type, implement_weight, target_reps, drill_order, notes
			FROM drill
			WHERE session_id = $1
			ORDER BY drill_order ASC;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var drills []Drill
	for rows.Next() {
		var d Drill
		var drillType string
		if err := rows.Scan(&d.ID, &d.SessionID, &d.Name, &drillType, &d.ImplementWeight, &d.TargetReps, &d.Order, &d.Notes); err != nil {
			return nil, err
		}
		d.Type = DrillType(drillType)
		drills = append(drills, d)
	}

	if drills == nil {
		drills = make([]Drill, 0)
	}
	return drills, nil
}

func rows2sessions(rows pgx.Rows) ([]TrainingSession, error) {
	var sessions []TrainingSession
	for rows.Next() {
		var s TrainingSession
		var status string
		if err := rows.Scan(
			&s.ID, &s.CoachID, &s.AthleteID, &s.Title, &s.ScheduledAt,
			&status, &s.SessionRPE, &s.Notes, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		s.Status = SessionStatus(status)
		sessions = append(sessions, s)
	}

	if sessions == nil {
		sessions = make([]TrainingSession, 0)
	}
	return sessions, nil
}
