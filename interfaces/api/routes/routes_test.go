package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fco200/UES-Academic-Helper/application/serviceimpl"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/email"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/memory"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/postgres"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/postgres/testdb"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/sms"
	"github.com/Fco200/UES-Academic-Helper/interfaces/api/handlers"
	"github.com/Fco200/UES-Academic-Helper/interfaces/api/middleware"
	"github.com/Fco200/UES-Academic-Helper/interfaces/api/routes"
)

const secret = "routes-test-secret"

type testApp struct {
	app    *fiber.App
	mailer *email.ConsoleMailer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db := testdb.New(t)
	userRepo := postgres.NewUserRepository(db)
	subjectRepo := postgres.NewSubjectRepository(db)

	mailer := email.NewConsoleMailer()
	dispatcher := serviceimpl.NewNotificationDispatcher(mailer, sms.NewConsoleSender())
	users := serviceimpl.NewUserService(serviceimpl.AuthConfig{
		JWTSecret:          secret,
		JWTTTL:             time.Hour,
		DefaultPassword:    "UES2026",
		AdminIdentifier:    "admin@ues.mx",
		DefaultCountryCode: "52",
	}, userRepo, nil)
	loc, err := time.LoadLocation("America/Hermosillo")
	require.NoError(t, err)
	reminders := serviceimpl.NewReminderService(serviceimpl.ReminderConfig{Enabled: true, Location: loc}, subjectRepo, dispatcher, nil, nil)

	h := handlers.NewHandlers(&handlers.Services{
		UserService:     users,
		RecoveryService: serviceimpl.NewRecoveryService(userRepo, memory.NewCodeStore(), dispatcher, users, time.Minute, "52"),
		SubjectService:  serviceimpl.NewSubjectService(subjectRepo, reminders),
		ReminderService: reminders,
		NewsService:     serviceimpl.NewNewsService(postgres.NewNewsRepository(db)),
		ChatService:     serviceimpl.NewChatService(nil),
	})

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestIDMiddleware())
	routes.SetupRoutes(app, h, secret)
	return &testApp{app: app, mailer: mailer}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		_ = json.Unmarshal(raw, &env)
	}
	return resp.StatusCode, env
}

func (a *testApp) login(t *testing.T, identifier, password string) string {
	t.Helper()
	status, env := a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"identifier": identifier,
		"password":   password,
	})
	require.Contains(t, []int{http.StatusOK, http.StatusCreated}, status)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func tomorrowInHermosillo() string {
	loc, _ := time.LoadLocation("America/Hermosillo")
	return time.Now().In(loc).AddDate(0, 0, 1).Format("2006-01-02")
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := a.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginFlow(t *testing.T) {
	a := newTestApp(t)

	status, _ := a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"identifier": "ana@ues.mx", "password": "UES2026"})
	assert.Equal(t, http.StatusCreated, status)

	status, _ = a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"identifier": "ana@ues.mx", "password": "UES2026"})
	assert.Equal(t, http.StatusOK, status)

	status, env := a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"identifier": "ana@ues.mx", "password": "otra"})
	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Clave incorrecta", env.Error.Message)

	status, env = a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"identifier": "ana@ues.mx"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestSubjectsRequireToken(t *testing.T) {
	a := newTestApp(t)
	status, _ := a.do(t, http.MethodGet, "/api/v1/subjects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = a.do(t, http.MethodGet, "/api/v1/subjects", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRejectedBodiesStoreNothing(t *testing.T) {
	a := newTestApp(t)
	ana := a.login(t, "ana@ues.mx", "UES2026")

	status, env := a.do(t, http.MethodPost, "/api/v1/subjects", ana, map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	status, env = a.do(t, http.MethodPost, "/api/v1/subjects", ana, "not an object")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)

	status, env = a.do(t, http.MethodPost, "/api/v1/subjects", ana, map[string]string{"name": "Cálculo"})
	require.Equal(t, http.StatusCreated, status)
	var subject struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &subject))

	for _, body := range []map[string]string{
		{"description": "Essay", "dueDate": "16-10-2026"},
		{"description": "", "dueDate": tomorrowInHermosillo()},
		{"description": "Essay"},
	} {
		status, env = a.do(t, http.MethodPost, "/api/v1/subjects/"+subject.ID+"/tasks", ana, body)
		assert.Equal(t, http.StatusBadRequest, status, body)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code, body)
	}

	status, env = a.do(t, http.MethodGet, "/api/v1/subjects", ana, nil)
	require.Equal(t, http.StatusOK, status)
	var subjects []struct {
		Name  string            `json:"name"`
		Tasks []json.RawMessage `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &subjects))
	require.Len(t, subjects, 1)
	assert.Equal(t, "Cálculo", subjects[0].Name)
	assert.Empty(t, subjects[0].Tasks)
	assert.Empty(t, a.mailer.Sent())
}

func TestSubjectLifecycleAndSweep(t *testing.T) {
	a := newTestApp(t)
	ana := a.login(t, "ana@ues.mx", "UES2026")
	beto := a.login(t, "beto@ues.mx", "UES2026")
	admin := a.login(t, "admin@ues.mx", "UES2026")

	status, env := a.do(t, http.MethodPost, "/api/v1/subjects", ana, map[string]string{"name": "Redacción"})
	require.Equal(t, http.StatusCreated, status)
	var subject struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &subject))

	status, _ = a.do(t, http.MethodPost, "/api/v1/subjects/"+subject.ID+"/tasks", ana, map[string]string{
		"description": "Essay",
		"dueDate":     "16-10-2026",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = a.do(t, http.MethodPost, "/api/v1/subjects/"+subject.ID+"/tasks", ana, map[string]string{
		"description": "Essay",
		"dueDate":     tomorrowInHermosillo(),
	})
	require.Equal(t, http.StatusCreated, status)
	var task struct {
		ID           string `json:"id"`
		ReminderSent bool   `json:"reminderSent"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &task))
	assert.False(t, task.ReminderSent)

	// another owner sees nothing
	status, _ = a.do(t, http.MethodDelete, "/api/v1/subjects/"+subject.ID, beto, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// sweep is admin only
	status, _ = a.do(t, http.MethodPost, "/api/v1/reminders/sweep", ana, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, env = a.do(t, http.MethodPost, "/api/v1/reminders/sweep", admin, nil)
	require.Equal(t, http.StatusOK, status)
	var sweep struct {
		Sent int `json:"sent"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sweep))
	assert.Equal(t, 1, sweep.Sent)
	require.Len(t, a.mailer.Sent(), 1)
	assert.Equal(t, "ana@ues.mx", a.mailer.Sent()[0].To)

	status, _ = a.do(t, http.MethodPost, "/api/v1/subjects/"+subject.ID+"/tasks/"+task.ID+"/remind", ana, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = a.do(t, http.MethodPatch, "/api/v1/subjects/"+subject.ID+"/tasks/"+task.ID+"/complete", ana, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = a.do(t, http.MethodGet, "/api/v1/reminders/status", admin, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = a.do(t, http.MethodDelete, "/api/v1/subjects/"+subject.ID, ana, nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestRecoveryAndChat(t *testing.T) {
	a := newTestApp(t)
	token := a.login(t, "ana@ues.mx", "UES2026")

	status, env := a.do(t, http.MethodPost, "/api/v1/auth/recovery", "", map[string]string{"identifier": "nadie@ues.mx"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No encontrado", env.Error.Message)

	status, env = a.do(t, http.MethodPost, "/api/v1/auth/recovery/confirm", "", map[string]string{
		"identifier":  "ana@ues.mx",
		"code":        "123456",
		"newPassword": "nueva",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Código inválido", env.Error.Message)

	status, _ = a.do(t, http.MethodPost, "/api/v1/chat", token, map[string]string{"message": "hola"})
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestNewsAdminOnly(t *testing.T) {
	a := newTestApp(t)
	ana := a.login(t, "ana@ues.mx", "UES2026")
	admin := a.login(t, "admin@ues.mx", "UES2026")

	body := map[string]string{"title": "Inscripciones", "content": "Abiertas"}
	status, _ := a.do(t, http.MethodPost, "/api/v1/news", ana, body)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = a.do(t, http.MethodPost, "/api/v1/news", admin, body)
	assert.Equal(t, http.StatusCreated, status)

	status, env := a.do(t, http.MethodGet, "/api/v1/news", "", nil)
	require.Equal(t, http.StatusOK, status)
	var list struct {
		Items []struct {
			Slug string `json:"slug"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "inscripciones", list.Items[0].Slug)
}
