package handlers_fiber

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"school-activities/config"
	"school-activities/internal/api"
	"school-activities/internal/repository"
	"school-activities/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// newTestApp builds a full handler/usecase/registry stack over the built-in
// seed catalog. Each test gets its own registry instance.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := zaptest.NewLogger(t).Sugar()
	cfg := &config.Config{
		Registry: config.RegistryConfig{Backend: "memory"},
	}

	repo, err := repository.New(cfg.Registry.Backend, log, cfg)
	require.NoError(t, err)
	require.NoError(t, repo.OnStart(context.Background()))

	uc := usecase.New(log, repo, time.Second)

	app := fiber.New()
	api.RegisterHandlers(app, NewHandler(log, uc))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeDetail(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Detail
}

func decodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body api.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Message
}

func TestRootRedirectsToStaticIndex(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/")
	defer resp.Body.Close()

	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	require.Equal(t, "/static/index.html", resp.Header.Get("Location"))
}

func TestGetActivities(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/activities")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var activities api.ActivitiesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&activities))

	require.Contains(t, activities, "Chess Club")
	require.Contains(t, activities, "Programming Class")

	hasParticipants := false
	for _, details := range activities {
		require.NotEmpty(t, details.Description)
		require.NotEmpty(t, details.Schedule)
		require.Positive(t, details.MaxParticipants)
		require.NotNil(t, details.Participants)
		if len(details.Participants) > 0 {
			hasParticipants = true
		}
	}
	require.True(t, hasParticipants)
}

func TestSignupNewParticipant(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost,
		"/activities/Chess%20Club/signup?email=newstudent@mergington.edu")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	msg := decodeMessage(t, resp)
	require.Contains(t, msg, "newstudent@mergington.edu")
	require.Contains(t, msg, "Chess Club")
}

func TestSignupDuplicateParticipant(t *testing.T) {
	app := newTestApp(t)
	target := "/activities/Chess%20Club/signup?email=dup@mergington.edu"

	resp1 := doRequest(t, app, http.MethodPost, target)
	resp1.Body.Close()
	require.Equal(t, http.StatusOK, resp1.StatusCode)

	resp2 := doRequest(t, app, http.MethodPost, target)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp2.StatusCode)
	require.Contains(t, decodeDetail(t, resp2), "already signed up")
}

func TestSignupUnknownActivity(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost,
		"/activities/Nonexistent%20Club/signup?email=test@mergington.edu")
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, decodeDetail(t, resp), "not found")
}

func TestSignupMissingEmail(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/activities/Chess%20Club/signup")
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignupFullActivity(t *testing.T) {
	app := newTestApp(t)

	// Math Club: capacity 10 with 2 seeded members leaves 8 free slots.
	for i := 0; i < 8; i++ {
		resp := doRequest(t, app, http.MethodPost,
			fmt.Sprintf("/activities/Math%%20Club/signup?email=fill%d@mergington.edu", i))
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, "signup %d should fit", i)
	}

	resp := doRequest(t, app, http.MethodPost,
		"/activities/Math%20Club/signup?email=overflow@mergington.edu")
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, decodeDetail(t, resp), "full")
}

func TestUnregisterParticipant(t *testing.T) {
	app := newTestApp(t)
	email := "leaver@mergington.edu"

	resp1 := doRequest(t, app, http.MethodPost,
		"/activities/Programming%20Class/signup?email="+email)
	resp1.Body.Close()
	require.Equal(t, http.StatusOK, resp1.StatusCode)

	resp2 := doRequest(t, app, http.MethodDelete,
		"/activities/Programming%20Class/unregister?email="+email)
	defer resp2.Body.Close()

	require.Equal(t, http.StatusOK, resp2.StatusCode)
	msg := decodeMessage(t, resp2)
	require.Contains(t, msg, email)
	require.Contains(t, msg, "Programming Class")
}

func TestUnregisterAbsentParticipant(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodDelete,
		"/activities/Chess%20Club/unregister?email=ghost@mergington.edu")
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, decodeDetail(t, resp), "not signed up")
}

func TestUnregisterUnknownActivity(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodDelete,
		"/activities/Nonexistent%20Club/unregister?email=test@mergington.edu")
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, decodeDetail(t, resp), "not found")
}

func TestSignupThenUnregisterTwice(t *testing.T) {
	app := newTestApp(t)
	target := "/activities/Chess%%20Club/%s?email=a@x.edu"

	resp := doRequest(t, app, http.MethodPost, fmt.Sprintf(target, "signup"))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, fmt.Sprintf(target, "signup"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, decodeDetail(t, resp), "already signed up")
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodDelete, fmt.Sprintf(target, "unregister"))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, fmt.Sprintf(target, "unregister"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, decodeDetail(t, resp), "not signed up")
}
