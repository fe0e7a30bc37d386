package videos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/throwlab/backend/internal/auth"
	"github.com/throwlab/backend/internal/telemetry/metrics"
	"github.com/throwlab/backend/internal/telemetry/tracing"
	"github.com/throwlab/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// 50 MB, matches the upload limit of the web client
const maxUploadSize = 50 << 20

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=videos_test

type videosRepo interface {
	Add(ctx context.Context, video Video) (_ *Video, err error)
	Get(ctx context.Context, id string) (_ *Video, err error)
	List(ctx context.Context, params ListParams) (_ []Video, err error)
	SetAnnotation(ctx context.Context, id, annotationPath string) (err error)
	Delete(ctx context.Context, id string) (err error)
}

type fileStore interface {
	Save(ctx context.Context, params SaveFileParams) (_ string, err error)
	Delete(ctx context.Context, filePath string) (err error)
	Contains(filePath string) bool
}

type athleteLinks interface {
	LinkExists(ctx context.Context, coachID, athleteID string) (_ bool, err error)
}

type Handler struct {
	repo    videosRepo
	store   fileStore
	links   athleteLinks
	metrics *metrics.Manager
}

func NewHandler(
	repo videosRepo,
	store fileStore,
	links athleteLinks,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:    repo,
		store:   store,
		links:   links,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleUpload).Methods("POST", "OPTIONS").Name("video-upload")
	router.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("video-list")
	router.HandleFunc("/content/{id}", handler.HandleContent).Methods("GET", "OPTIONS").Name("video-content")
	router.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("video-get")
	router.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("video-delete")
	router.HandleFunc("/{id}/annotation", handler.HandleAnnotation).Methods("POST", "OPTIONS").Name("video-annotation")
}

func (handler *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.videos.upload")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Errorf("video upload, parse multipart form: %s", err)
		http.Error(w, "file too big or malformed form", http.StatusBadRequest)
		return
	}

	athleteID := r.FormValue("athleteId")
	if athleteID == "" && actor.Role == auth.RoleAthlete {
		athleteID = actor.ID
	}
	if athleteID == "" {
		http.Error(w, "error, athlete id empty", http.StatusBadRequest)
		return
	}

	eventType := EventType(r.FormValue("eventType"))
	if !eventType.IsValid() {
		http.Error(w, "error, invalid event type", http.StatusBadRequest)
		return
	}

	resource := auth.Resource{Type: auth.ResourceVideo, AthleteID: athleteID}
	if actor.Role == auth.RoleCoach {
		resource.CoachID = actor.ID
	}
	if !auth.Allowed(actor, resource, auth.ActionCreate) {
		http.Error(w, "video upload failed - not allowed", http.StatusForbidden)
		return
	}

	if actor.Role == auth.RoleCoach {
		linked, err := handler.links.LinkExists(ctx, actor.ID, athleteID)
		if err != nil {
			log.Errorf("video upload, check link: %s", err)
			http.Error(w, "video upload failed", http.StatusInternalServerError)
			return
		}
		if !linked {
			http.Error(w, "error, athlete not linked", http.StatusBadRequest)
			return
		}
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		log.Errorf("video upload, get form file: %s", err)
		http.Error(w, "error getting file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "video/") {
		http.Error(w, "error, not a video file", http.StatusBadRequest)
		return
	}

	diskPath, err := handler.store.Save(ctx, SaveFileParams{
		AthleteID: athleteID,
		Subfolder: eventType.String(),
		Filename:  fileHeader.Filename,
		File:      file,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidFilename) {
			http.Error(w, "error, invalid file name", http.StatusBadRequest)
			return
		}
		log.Errorf("video upload, save file: %s", err)
		http.Error(w, "video upload failed", http.StatusInternalServerError)
		return
	}

	title := r.FormValue("title")
	if title == "" {
		title = fileHeader.Filename
	}
	video := Video{
		AthleteID:   athleteID,
		UploadedBy:  actor.ID,
		Title:       title,
		EventType:   eventType,
		ContentType: contentType,
		Size:        fileHeader.Size,
		DiskPath:    diskPath,
	}
	if notes := r.FormValue("notes"); notes != "" {
		video.Notes = &notes
	}

	added, err := handler.repo.Add(ctx, video)
	if err != nil {
		log.Errorf("video upload, store metadata: %s", err)
		if removeErr := handler.store.Delete(ctx, diskPath); removeErr != nil {
			log.Errorf("video upload, remove orphaned file: %s", removeErr)
		}
		http.Error(w, "video upload failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterVideoUploads.Inc()
	log.Debugf("new video uploaded: %s [%s]", added.ID, added.Title)

	videoJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal uploaded video: %s", err)
		http.Error(w, "video upload failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, videoJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.videos.list")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	params := ListParams{
		AthleteID: r.URL.Query().Get("athlete"),
		EventType: r.URL.Query().Get("event"),
	}

	switch actor.Role {
	case auth.RoleAthlete:
		params.AthleteID = actor.ID
	case auth.RoleCoach:
		if params.AthleteID == "" {
			http.Error(w, "error, athlete param required", http.StatusBadRequest)
			return
		}
		linked, err := handler.links.LinkExists(ctx, actor.ID, params.AthleteID)
		if err != nil {
			log.Errorf("list videos, check link: %s", err)
			http.Error(w, "list videos failed", http.StatusInternalServerError)
			return
		}
		if !linked {
			http.Error(w, "error, athlete not linked", http.StatusBadRequest)
			return
		}
	default:
		http.Error(w, "list videos failed - not allowed", http.StatusForbidden)
		return
	}

	videos, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("list videos: %s", err)
		http.Error(w, "list videos failed", http.StatusInternalServerError)
		return
	}

	videosJson, err := json.Marshal(videos)
	if err != nil {
		log.Errorf("marshal videos: %s", err)
		http.Error(w, "list videos failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, videosJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.videos.get")
	defer span.End()

	video, ok := handler.authorizedVideo(ctx, w, r, auth.ActionRead)
	if !ok {
		return
	}

	videoJson, err := json.Marshal(video)
	if err != nil {
		log.Errorf("marshal video: %s", err)
		http.Error(w, "get video failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, videoJson)
}

// HandleContent streams the video bytes. Range requests come from the
// web player, http.ServeFile handles them.
func (handler *Handler) HandleContent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.videos.content")
	defer span.End()

	video, ok := handler.authorizedVideo(ctx, w, r, auth.ActionRead)
	if !ok {
		return
	}

	if !handler.store.Contains(video.DiskPath) {
		log.Errorf("video %s: disk path outside of store root", video.ID)
		http.Error(w, "get video content failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", video.ContentType)
	http.ServeFile(w, r, video.DiskPath)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.videos.delete")
	defer span.End()

	video, ok := handler.authorizedVideo(ctx, w, r, auth.ActionDelete)
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, video.ID); err != nil {
		log.Errorf("delete video: %s", err)
		http.Error(w, "delete video failed", http.StatusInternalServerError)
		return
	}

	if err := handler.store.Delete(ctx, video.DiskPath); err != nil && !errors.Is(err, ErrFileNotFound) {
		// metadata row is gone, the file is orphaned but harmless
		log.Errorf("delete video %s, remove file: %s", video.ID, err)
	}
	if video.AnnotationPath != nil {
		if err := handler.store.Delete(ctx, *video.AnnotationPath); err != nil && !errors.Is(err, ErrFileNotFound) {
			log.Errorf("delete video %s, remove annotation: %s", video.ID, err)
		}
	}

	log.Debugf("video deleted: %s", video.ID)
	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%s", video.ID))
}

// HandleAnnotation attaches a drawn-over still image to the video.
func (handler *Handler) HandleAnnotation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.videos.annotation")
	defer span.End()

	video, ok := handler.authorizedVideo(ctx, w, r, auth.ActionUpdate)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Errorf("video annotation, parse multipart form: %s", err)
		http.Error(w, "file too big or malformed form", http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		log.Errorf("video annotation, get form file: %s", err)
		http.Error(w, "error getting file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		http.Error(w, "error, not an image file", http.StatusBadRequest)
		return
	}

	annotationPath, err := handler.store.Save(ctx, SaveFileParams{
		AthleteID: video.AthleteID,
		Subfolder: "annotations",
		Filename:  fileHeader.Filename,
		File:      file,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidFilename) {
			http.Error(w, "error, invalid file name", http.StatusBadRequest)
			return
		}
		log.Errorf("video annotation, save file: %s", err)
		http.Error(w, "save annotation failed", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.SetAnnotation(ctx, video.ID, annotationPath); err != nil {
		log.Errorf("video annotation, store path: %s", err)
		http.Error(w, "save annotation failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "annotated")
}

func (handler *Handler) authorizedVideo(ctx context.Context, w http.ResponseWriter, r *http.Request, action auth.Action) (*Video, bool) {
	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil, false
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return nil, false
	}

	video, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			http.Error(w, "video not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get video %s: %s", id, err)
		http.Error(w, "get video failed", http.StatusInternalServerError)
		return nil, false
	}

	resource := auth.Resource{Type: auth.ResourceVideo, AthleteID: video.AthleteID}
	if actor.Role == auth.RoleCoach {
		linked, err := handler.links.LinkExists(ctx, actor.ID, video.AthleteID)
		if err != nil {
			log.Errorf("video %s, check link: %s", id, err)
			http.Error(w, "get video failed", http.StatusInternalServerError)
			return nil, false
		}
		if !linked {
			http.Error(w, "not allowed", http.StatusForbidden)
			return nil, false
		}
		resource.CoachID = actor.ID
	}
	if !auth.Allowed(actor, resource, action) {
		http.Error(w, "not allowed", http.StatusForbidden)
		return nil, false
	}

	return video, true
}
