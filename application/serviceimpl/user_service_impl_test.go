package serviceimpl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/Fco200/UES-Academic-Helper/domain/repositories"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/email"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/memory"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/postgres"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/postgres/testdb"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/sms"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/storage"
	"github.com/Fco200/UES-Academic-Helper/pkg/utils"
)

const testSecret = "test-secret"

func newUserFixture(t *testing.T) (*UserServiceImpl, repositories.UserRepository) {
	t.Helper()
	repo := postgres.NewUserRepository(testdb.New(t))
	store, err := storage.NewLocalStorage(storage.LocalStorageConfig{BasePath: t.TempDir(), BaseURL: "http://files.test"})
	require.NoError(t, err)

	svc := NewUserService(AuthConfig{
		JWTSecret:          testSecret,
		JWTTTL:             time.Hour,
		DefaultPassword:    "UES2026",
		AdminIdentifier:    "6629999999",
		DefaultUniversity:  "UES",
		DefaultCareer:      "Software",
		DefaultCountryCode: "52",
	}, repo, store)
	return svc, repo
}

func TestLoginCreatesAccountOnFirstUse(t *testing.T) {
	svc, repo := newUserFixture(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, &dto.LoginRequest{Identifier: "  Ana@UES.mx ", Password: "UES2026"})
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, "ana@ues.mx", res.User.Identifier)
	assert.Equal(t, models.OwnerKindEmail, res.User.OwnerKind)
	assert.Equal(t, models.RoleUser, res.User.Role)
	assert.Equal(t, "UES", res.User.University)
	assert.Equal(t, models.DefaultPhotoURL, res.User.PhotoURL)
	require.NotNil(t, res.User.LastAccessAt)

	claims, err := utils.ValidateTokenStringToUUID(res.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.ID)
	assert.Equal(t, "email", claims.OwnerKind)

	again, err := svc.Login(ctx, &dto.LoginRequest{Identifier: "ana@ues.mx", Password: "UES2026"})
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, res.User.ID, again.User.ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &dto.LoginRequest{Identifier: "ana@ues.mx", Password: "UES2026"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Identifier: "ana@ues.mx", Password: "nope"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoginPhoneAdmin(t *testing.T) {
	svc, _ := newUserFixture(t)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Identifier: "662-999-9999", Password: "UES2026", Career: "Medicina"})
	require.NoError(t, err)
	assert.Equal(t, "+526629999999", res.User.Identifier)
	assert.Equal(t, models.OwnerKindPhone, res.User.OwnerKind)
	assert.Equal(t, models.RoleAdmin, res.User.Role)
	assert.Equal(t, "Medicina", res.User.Career)
}

func TestLoginRejectsGarbageIdentifier(t *testing.T) {
	svc, _ := newUserFixture(t)
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Identifier: "abc", Password: "UES2026"})
	assert.ErrorIs(t, err, models.ErrInvalidOwner)
}

func TestUpdateProfileAndPhoto(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, &dto.LoginRequest{Identifier: "ana@ues.mx", Password: "UES2026"})
	require.NoError(t, err)

	name := "Ana López"
	user, err := svc.UpdateProfile(ctx, res.User.ID, &dto.UpdateProfileRequest{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana López", user.DisplayName)
	assert.Equal(t, "ana@ues.mx", user.Identifier)

	user, err = svc.UploadPhoto(ctx, res.User.ID, strings.NewReader("png"), 3, "Mi Foto.PNG", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.PhotoURL, "http://files.test/photos/"+res.User.ID.String()+"/"))
	assert.True(t, strings.HasSuffix(user.PhotoURL, ".png"))
}

func TestRecoveryFlow(t *testing.T) {
	users, repo := newUserFixture(t)
	ctx := context.Background()
	_, err := users.Login(ctx, &dto.LoginRequest{Identifier: "ana@ues.mx", Password: "UES2026"})
	require.NoError(t, err)

	mailer := email.NewConsoleMailer()
	codes := memory.NewCodeStore()
	recovery := NewRecoveryService(repo, codes, NewNotificationDispatcher(mailer, sms.NewConsoleSender()), users, time.Minute, "52")

	assert.ErrorIs(t, recovery.RequestCode(ctx, "nadie@ues.mx"), services.ErrUserNotFound)

	require.NoError(t, recovery.RequestCode(ctx, "ANA@ues.mx"))
	sent := mailer.Sent()
	require.Len(t, sent, 1)
	code := strings.TrimPrefix(sent[0].Subject, "Tu Código: ")
	require.Len(t, code, 6)

	err = recovery.ConfirmCode(ctx, &dto.RecoveryConfirmRequest{Identifier: "ana@ues.mx", Code: "000000x", NewPassword: "nueva"})
	assert.ErrorIs(t, err, services.ErrInvalidCode)

	require.NoError(t, recovery.ConfirmCode(ctx, &dto.RecoveryConfirmRequest{Identifier: "ana@ues.mx", Code: code, NewPassword: "nueva"}))

	// the code is single use
	err = recovery.ConfirmCode(ctx, &dto.RecoveryConfirmRequest{Identifier: "ana@ues.mx", Code: code, NewPassword: "otra"})
	assert.ErrorIs(t, err, services.ErrInvalidCode)

	_, err = users.Login(ctx, &dto.LoginRequest{Identifier: "ana@ues.mx", Password: "UES2026"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	_, err = users.Login(ctx, &dto.LoginRequest{Identifier: "ana@ues.mx", Password: "nueva"})
	assert.NoError(t, err)
}
