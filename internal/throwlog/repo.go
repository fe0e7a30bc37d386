package throwlog

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

var ErrThrowLogNotFound = errors.New("throw log not found")

type ListParams struct {
	AthleteID string
	SessionID string
	DrillID   string
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

func (r *Repo) Add(ctx context.Context, throwLog ThrowLog) (_ *ThrowLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.throwlog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if throwLog.ID == "" {
		throwLog.ID = uuid.NewString()
	}
	if throwLog.CreatedAt.IsZero() {
		throwLog.CreatedAt = time.Now()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO throw_log
				(id, session_id, drill_id, athlete_id, throw_number, distance, is_foul, foul_reason, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		throwLog.ID, throwLog.SessionID, throwLog.DrillID, throwLog.AthleteID,
		throwLog.ThrowNumber, throwLog.Distance, throwLog.IsFoul, throwLog.FoulReason,
		throwLog.Notes, throwLog.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("throwlog.id", throwLog.ID))

	return &throwLog, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *ThrowLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.throwlog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, session_id, drill_id, athlete_id, throw_number, distance, is_foul, foul_reason, notes, created_at
			FROM throw_log
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

	throwLogs, err := rows2throwLogs(rows)
	if err != nil {
		return nil, err
	}

	if len(throwLogs) != 1 {
		return nil, ErrThrowLogNotFound
	}

	return &throwLogs[0], nil
}

// ListAll returns throw logs filtered by the given params,
// ordered ascending by creation time and throw number.
func (r *Repo) ListAll(ctx context.Context, params ListParams) (_ []ThrowLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.throwlog.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete_id", params.AthleteID))
	span.SetAttributes(attribute.String("session_id", params.SessionID))
	span.SetAttributes(attribute.String("drill_id", params.DrillID))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, session_id, drill_id, athlete_id, throw_number, distance, is_foul, foul_reason, notes, created_at
			FROM throw_log
				WHERE ($1::text = '' OR athlete_id = $1)
				AND ($2::text = '' OR session_id = $2)
				AND ($3::text = '' OR drill_id = $3)
				AND ($4::timestamp IS NULL OR created_at >= $4)
				AND ($5::timestamp IS NULL OR created_at <= $5)
			ORDER BY created_at ASC, throw_number ASC;`,
		params.AthleteID, params.SessionID, params.DrillID,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	throwLogs, err := rows2throwLogs(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2throwLogs: %w", err)
	}
	return throwLogs, nil
}

// GetForSession returns all throw logs of a session,
// ordered by drill and throw number.
func (r *Repo) GetForSession(ctx context.Context, sessionID string) (_ []ThrowLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.throwlog.getForSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, session_id, drill_id, athlete_id, throw_number, distance, is_foul, foul_reason, notes, created_at
			FROM throw_log
			WHERE session_id = $1
			ORDER BY drill_id ASC, throw_number ASC;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2throwLogs(rows)
}

// UpsertForSession atomically replaces the throw logs of a session with
// the given set. Existing rows are updated in place by their natural key
// (session, drill, athlete, throw number), new rows inserted, and rows
// no longer present deleted. All inside one transaction.
func (r *Repo) UpsertForSession(ctx context.Context, sessionID string, throwLogs []ThrowLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.throwlog.upsertForSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))
	span.SetAttributes(attribute.Int("throw_logs", len(throwLogs)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				log.Errorf("upsert throw logs for session %s, rollback: %s", sessionID, rollbackErr)
			}
		}
	}()

	drillIDs := make([]string, 0, len(throwLogs))
	throwNumbers := make([]int, 0, len(throwLogs))
	now := time.Now()
	for _, tl := range throwLogs {
		if tl.ID == "" {
			tl.ID = uuid.NewString()
		}
		if tl.CreatedAt.IsZero() {
			tl.CreatedAt = now
		}

		if _, err = tx.Exec(
			ctx,
			`INSERT INTO throw_log
					(id, session_id, drill_id, athlete_id, throw_number, distance, is_foul, foul_reason, notes, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				ON CONFLICT (session_id, drill_id, athlete_id, throw_number)
				DO UPDATE SET
					distance = EXCLUDED.distance,
					is_foul = EXCLUDED.is_foul,
					foul_reason = EXCLUDED.foul_reason,
					notes = EXCLUDED.notes;`,
			tl.ID, sessionID, tl.DrillID, tl.AthleteID,
			tl.ThrowNumber, tl.Distance, tl.IsFoul, tl.FoulReason,
			tl.Notes, tl.CreatedAt,
		); err != nil {
			return fmt.Errorf("upsert throw log: %w", err)
		}

		drillIDs = append(drillIDs, tl.DrillID)
		throwNumbers = append(throwNumbers, tl.ThrowNumber)
	}

	// remove rows dropped from the session (e.g. after renumbering)
	if _, err = tx.Exec(
		ctx,
		`DELETE FROM throw_log
			WHERE session_id = $1
			AND (drill_id, throw_number) NOT IN (
				SELECT unnest($2::text[]), unnest($3::int[])
			);`,
		sessionID, drillIDs, throwNumbers,
	); err != nil {
		return fmt.Errorf("delete stale throw logs: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *Repo) DeleteForSession(ctx context.Context, sessionID string) (deleted int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.throwlog.deleteForSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM throw_log WHERE session_id = $1;`,
		sessionID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) Count(ctx context.Context, params ListParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.throwlog.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM throw_log
			WHERE ($1::text = '' OR athlete_id = $1)
			AND ($2::text = '' OR session_id = $2)
			AND ($3::text = '' OR drill_id = $3)
			AND ($4::timestamp IS NULL OR created_at >= $4)
			AND ($5::timestamp IS NULL OR created_at <= $5);
	`,
		params.AthleteID, params.SessionID, params.DrillID,
		params.From, params.To,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get throw logs count")
}

func rows2throwLogs(rows pgx.Rows) ([]ThrowLog, error) {
	var throwLogs []ThrowLog
	for rows.Next() {
		var tl ThrowLog
		var foulReason *string
		if err := rows.Scan(
			&tl.ID, &tl.SessionID, &tl.DrillID, &tl.AthleteID,
			&tl.ThrowNumber, &tl.Distance, &tl.IsFoul, &foulReason,
			&tl.Notes, &tl.CreatedAt,
		); err != nil {
			return nil, err
		}

		if foulReason != nil {
			reason := FoulReason(*foulReason)
			tl.FoulReason = &reason
		}

		throwLogs = append(throwLogs, tl)
	}

	if throwLogs == nil {
		throwLogs = make([]ThrowLog, 0)
	}

	return throwLogs, nil
}
