package videos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/throwlab/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrVideoNotFound = errors.New("video not found")

type ListParams struct {
	AthleteID string
	EventType string
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, video Video) (_ *Video, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.videos.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if video.ID == "" {
		video.ID = uuid.NewString()
	}
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now()
	}

	if _, err = r.db.Exec(
		ctx,
		`INSERT INTO video
				(id, athlete_id, uploaded_by, title, event_type, content_type, size, disk_path, annotation_path, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		video.ID, video.AthleteID, video.UploadedBy, video.Title, video.EventType,
		video.ContentType, video.Size, video.DiskPath, video.AnnotationPath, video.Notes, video.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert video: %w", err)
	}

	span.SetAttributes(attribute.String("video.id", video.ID))
	return &video, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Video, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.videos.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var v Video
	var eventType string
	err = r.db.QueryRow(
		ctx,
		`SELECT id, athlete_id, uploaded_by, title, event_type, content_type, size, disk_path, annotation_path, notes, created_at
			FROM video
			WHERE id = $1;`,
		id,
	).Scan(
		&v.ID, &v.AthleteID, &v.UploadedBy, &v.Title, &eventType,
		&v.ContentType, &v.Size, &v.DiskPath, &v.AnnotationPath, &v.Notes, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	v.EventType = EventType(eventType)

	return &v, nil
}

// List returns videos matching the given params, newest first.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Video, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.videos.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete_id", params.AthleteID))
	span.SetAttributes(attribute.String("event_type", params.EventType))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, athlete_id, uploaded_by, title, event_type, content_type, size, disk_path, annotation_path, notes, created_at
			FROM video
				WHERE ($1::text = '' OR athlete_id = $1)
				AND ($2::text = '' OR event_type = $2)
			ORDER BY created_at DESC;`,
		params.AthleteID, params.EventType,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	videos := make([]Video, 0)
	for rows.Next() {
		var v Video
		var eventType string
		if err := rows.Scan(
			&v.ID, &v.AthleteID, &v.UploadedBy, &v.Title, &eventType,
			&v.ContentType, &v.Size, &v.DiskPath, &v.AnnotationPath, &v.Notes, &v.CreatedAt,
		); err != nil {
			return nil, err
		}
		v.EventType = EventType(eventType)
		videos = append(videos, v)
	}

	return videos, nil
}

func (r *Repo) SetAnnotation(ctx context.Context, id, annotationPath string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.videos.setAnnotation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE video SET annotation_path = $1 WHERE id = $2;`,
		annotationPath, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrVideoNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.videos.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM video WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrVideoNotFound
	}
	return nil
}
