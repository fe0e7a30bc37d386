package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/throwlab/backend/internal/auth"
	"github.com/throwlab/backend/internal/middleware"
	"github.com/throwlab/backend/internal/telemetry/tracing"
	"github.com/throwlab/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersRepo interface {
	Get(ctx context.Context, id string) (_ *User, err error)
	GetByEmail(ctx context.Context, email string) (_ *User, err error)
	ListAthletes(ctx context.Context, coachID string) (_ []User, err error)
	Link(ctx context.Context, coachID, athleteID string) (err error)
	Unlink(ctx context.Context, coachID, athleteID string) (err error)
}

type loginService interface {
	Login(ctx context.Context, userID string, role auth.Role, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Handler struct {
	repo         usersRepo
	loginService loginService
}

func NewHandler(repo usersRepo, loginService loginService) *Handler {
	return &Handler{
		repo:         repo,
		loginService: loginService,
	}
}

// SetupAuthRoutes mounts login and logout, which are on the public
// paths list of the auth middleware.
func (handler *Handler) SetupAuthRoutes(router *mux.Router) {
	router.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	router.HandleFunc("/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/me", handler.HandleMe).Methods("GET", "OPTIONS").Name("me")
	router.HandleFunc("/athletes", handler.HandleListAthletes).Methods("GET", "OPTIONS").Name("athletes-list")
	router.HandleFunc("/athletes/link", handler.HandleLink).Methods("POST", "OPTIONS").Name("athletes-link")
	router.HandleFunc("/athletes/unlink", handler.HandleUnlink).Methods("POST", "OPTIONS").Name("athletes-unlink")
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("login failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusInternalServerError)
		return
	}

	email := r.Form.Get("email")
	if email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}

	password := r.Form.Get("password")
	if password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	user, err := handler.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Tracef("[email] failed login attempt for: %s", email)
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login failed, get user: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for: %s", email)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	token, err := handler.loginService.Login(ctx, user.ID, user.Role, time.Now())
	if err != nil {
		log.Errorf("login failed, create session: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new login: %s [%s]", user.ID, user.Role)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token": "%s", "userId": "%s", "role": "%s"}`, token, user.ID, user.Role))
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	authToken := r.Header.Get(middleware.AuthTokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.loginService.Logout(ctx, authToken)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout failed: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.me")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	user, err := handler.repo.Get(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get current user: %s", err)
		http.Error(w, "get user failed", http.StatusInternalServerError)
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("marshal user: %s", err)
		http.Error(w, "get user failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, userJson)
}

func (handler *Handler) HandleListAthletes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.listAthletes")
	defer span.End()

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if !auth.Allowed(actor, auth.Resource{
		Type:    auth.ResourceAthleteLink,
		CoachID: actor.ID,
	}, auth.ActionRead) {
		http.Error(w, "list athletes failed - not allowed", http.StatusForbidden)
		return
	}

	athletes, err := handler.repo.ListAthletes(ctx, actor.ID)
	if err != nil {
		log.Errorf("list athletes: %s", err)
		http.Error(w, "list athletes failed", http.StatusInternalServerError)
		return
	}

	athletesJson, err := json.Marshal(athletes)
	if err != nil {
		log.Errorf("marshal athletes: %s", err)
		http.Error(w, "list athletes failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, athletesJson)
}

type LinkRequest struct {
	AthleteID string `json:"athleteId"`
}

func (handler *Handler) HandleLink(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.link")
	defer span.End()

	actor, athleteID, ok := handler.linkParams(ctx, w, r)
	if !ok {
		return
	}

	athlete, err := handler.repo.Get(ctx, athleteID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "athlete not found", http.StatusNotFound)
			return
		}
		log.Errorf("link athlete, get user: %s", err)
		http.Error(w, "link athlete failed", http.StatusInternalServerError)
		return
	}
	if athlete.Role != auth.RoleAthlete {
		http.Error(w, "error, user is not an athlete", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Link(ctx, actor.ID, athleteID); err != nil {
		log.Errorf("link athlete: %s", err)
		http.Error(w, "link athlete failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("athlete %s linked to coach %s", athleteID, actor.ID)
	pkg.WriteTextResponseOK(w, "linked")
}

func (handler *Handler) HandleUnlink(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.unlink")
	defer span.End()

	actor, athleteID, ok := handler.linkParams(ctx, w, r)
	if !ok {
		return
	}

	if err := handler.repo.Unlink(ctx, actor.ID, athleteID); err != nil {
		log.Errorf("unlink athlete: %s", err)
		http.Error(w, "unlink athlete failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "unlinked")
}

func (handler *Handler) linkParams(ctx context.Context, w http.ResponseWriter, r *http.Request) (auth.Actor, string, bool) {
	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return auth.Actor{}, "", false
	}

	if !auth.Allowed(actor, auth.Resource{
		Type:    auth.ResourceAthleteLink,
		CoachID: actor.ID,
	}, auth.ActionUpdate) {
		http.Error(w, "not allowed", http.StatusForbidden)
		return auth.Actor{}, "", false
	}

	var req LinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("link params, unmarshal json: %s", err)
		http.Error(w, "invalid params", http.StatusBadRequest)
		return auth.Actor{}, "", false
	}
	if req.AthleteID == "" {
		http.Error(w, "error, athlete id empty", http.StatusBadRequest)
		return auth.Actor{}, "", false
	}

	return actor, req.AthleteID, true
}
