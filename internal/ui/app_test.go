package ui_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-signup-client/internal/api"
	"activity-signup-client/internal/apitest"
	"activity-signup-client/internal/model"
	"activity-signup-client/internal/repository"
	"activity-signup-client/internal/service"
	"activity-signup-client/internal/ui"
)

type fixture struct {
	app      *ui.App
	server   *apitest.Server
	store    *repository.MemoryStorage
	sessions *service.SessionManager
}

func newFixture(t *testing.T, activities []model.Activity, persisted *model.Session) fixture {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	fake := apitest.NewServer(apitest.Teachers(), activities)
	srv := httptest.NewServer(fake.Router())
	t.Cleanup(srv.Close)

	store := repository.NewMemoryStorage()
	if persisted != nil {
		require.NoError(t, store.Set(ctx, service.TokenKey, persisted.Token))
		require.NoError(t, store.Set(ctx, service.UsernameKey, persisted.Username))
	}

	client := api.NewClient(srv.URL, nil, 2*time.Second, logger)
	sessions, err := service.NewSessionManager(ctx, store, client, logger)
	require.NoError(t, err)

	app := ui.NewApp(
		sessions,
		service.NewActivityService(client),
		service.NewMutationService(client, sessions, logger),
		time.Minute,
		logger,
	)
	return fixture{app: app, server: fake, store: store, sessions: sessions}
}

func (f fixture) login(t *testing.T) {
	t.Helper()
	f.app.Login(context.Background(), apitest.TeacherUsername, apitest.TeacherPassword)
	require.True(t, f.sessions.IsLoggedIn())
}

func chessClub() []model.Activity {
	return []model.Activity{{
		Name:            "Chess Club",
		Description:     "Learn strategies",
		Schedule:        "Fridays",
		MaxParticipants: 10,
		Participants:    []string{"a@x.com"},
	}}
}

func TestApp_Load_RendersCardsAndOptions(t *testing.T) {
	f := newFixture(t, apitest.Activities(), nil)

	before := f.app.Snapshot()
	assert.True(t, before.Loading)

	f.app.Load(context.Background())
	p := f.app.Snapshot()

	assert.False(t, p.Loading)
	assert.Empty(t, p.LoadError)
	assert.Equal(t, ui.ModeStudent, p.Mode)
	assert.Equal(t, "Student mode", p.TeacherStatus)
	assert.True(t, p.ShowLoginButton)
	assert.False(t, p.ShowSignupForm)
	assert.True(t, p.ShowTeacherRequiredMsg)

	seed := apitest.Activities()
	require.Len(t, p.Activities, len(seed))
	require.Len(t, p.Options, len(seed)+1)
	assert.Equal(t, ui.Option{Value: "", Label: ui.PlaceholderOption, Selected: true}, p.Options[0])

	for i, a := range seed {
		card := p.Activities[i]
		assert.Equal(t, a.Name, card.Name)
		assert.Equal(t, a.Name, p.Options[i+1].Value)
		assert.Equal(t, a.MaxParticipants-len(a.Participants), card.SpotsLeft)
		for _, row := range card.Participants {
			assert.False(t, row.Removable, "student mode must not render delete controls")
		}
	}
}

func TestApp_UnregisterAsTeacher(t *testing.T) {
	f := newFixture(t, chessClub(), nil)
	ctx := context.Background()

	f.app.Load(ctx)
	p := f.app.Snapshot()
	require.Len(t, p.Activities, 1)
	assert.Equal(t, "9 spots left", p.Activities[0].Availability)

	f.login(t)
	p = f.app.Snapshot()
	assert.Equal(t, ui.ModeTeacher, p.Mode)
	assert.Equal(t, "Teacher mode: "+apitest.TeacherUsername, p.TeacherStatus)
	require.NotNil(t, p.Banner)
	assert.Equal(t, "Teacher login successful", p.Banner.Text)
	assert.True(t, p.Activities[0].Participants[0].Removable)

	f.app.Unregister(ctx, "Chess Club", "a@x.com")
	p = f.app.Snapshot()

	require.NotNil(t, p.Banner)
	assert.Equal(t, ui.BannerSuccess, p.Banner.Kind)
	assert.Equal(t, "Unregistered a@x.com from Chess Club", p.Banner.Text)
	assert.Equal(t, "10 spots left", p.Activities[0].Availability)
	assert.Empty(t, p.Activities[0].Participants)
}

func TestApp_SignupWhileLoggedOut_NoNetwork(t *testing.T) {
	f := newFixture(t, chessClub(), nil)
	f.app.Load(context.Background())
	before := f.server.Requests()

	f.app.Signup(context.Background(), "Chess Club", "b@x.com")

	assert.Equal(t, before, f.server.Requests())
	p := f.app.Snapshot()
	require.NotNil(t, p.Banner)
	assert.Equal(t, ui.BannerError, p.Banner.Kind)
	assert.Equal(t, "Teacher login is required.", p.Banner.Text)
	assert.Equal(t, ui.SignupForm{Email: "b@x.com", Activity: "Chess Club"}, p.Form)
}

func TestApp_Signup_ResetsFormAndRefreshes(t *testing.T) {
	f := newFixture(t, chessClub(), nil)
	ctx := context.Background()
	f.app.Load(ctx)
	f.login(t)

	f.app.Signup(ctx, "Chess Club", "b@x.com")
	p := f.app.Snapshot()

	require.NotNil(t, p.Banner)
	assert.Equal(t, "Signed up b@x.com for Chess Club", p.Banner.Text)
	assert.Equal(t, ui.SignupForm{}, p.Form)
	assert.Equal(t, 8, p.Activities[0].SpotsLeft)
	assert.Equal(t, []ui.Participant{
		{Email: "a@x.com", Removable: true},
		{Email: "b@x.com", Removable: true},
	}, p.Activities[0].Participants)

	// повторная запись: сервер отвечает 400, форма сохраняет значения
	f.app.Signup(ctx, "Chess Club", "b@x.com")
	p = f.app.Snapshot()
	assert.Equal(t, "Student is already signed up", p.Banner.Text)
	assert.Equal(t, ui.BannerError, p.Banner.Kind)
	assert.Equal(t, "b@x.com", p.Form.Email)
	assert.True(t, f.sessions.IsLoggedIn())
}

func TestApp_ForbiddenClearsSession(t *testing.T) {
	tests := []struct {
		name   string
		action func(app *ui.App)
	}{
		{
			name:   "signup",
			action: func(app *ui.App) { app.Signup(context.Background(), "Chess Club", "b@x.com") },
		},
		{
			name:   "unregister",
			action: func(app *ui.App) { app.Unregister(context.Background(), "Chess Club", "a@x.com") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, chessClub(), &model.Session{Token: "expired", Username: "mrodriguez"})

			f.app.Load(ctx)
			p := f.app.Snapshot()
			require.Equal(t, ui.ModeTeacher, p.Mode)
			require.True(t, p.Activities[0].Participants[0].Removable)

			tt.action(f.app)
			p = f.app.Snapshot()

			assert.False(t, f.sessions.IsLoggedIn())
			assert.Equal(t, ui.ModeStudent, p.Mode)
			assert.False(t, p.Activities[0].Participants[0].Removable)
			require.NotNil(t, p.Banner)
			assert.Equal(t, "Teacher login is required for this action", p.Banner.Text)

			_, err := f.store.Get(ctx, service.TokenKey)
			assert.ErrorIs(t, err, repository.ErrKeyNotFound)
			_, err = f.store.Get(ctx, service.UsernameKey)
			assert.ErrorIs(t, err, repository.ErrKeyNotFound)
		})
	}
}

func TestApp_RefreshFailure_KeepsSelector(t *testing.T) {
	f := newFixture(t, chessClub(), nil)
	ctx := context.Background()
	f.app.Load(ctx)

	f.server.FailActivities(true)
	f.app.Refresh(ctx)
	p := f.app.Snapshot()

	assert.Equal(t, ui.LoadErrorText, p.LoadError)
	assert.Empty(t, p.Activities)
	require.Len(t, p.Options, 2)
	assert.Equal(t, "Chess Club", p.Options[1].Value)

	f.server.FailActivities(false)
	f.app.Refresh(ctx)
	p = f.app.Snapshot()
	assert.Empty(t, p.LoadError)
	assert.Len(t, p.Activities, 1)
}

func TestApp_LoginFailures(t *testing.T) {
	f := newFixture(t, chessClub(), nil)
	ctx := context.Background()
	f.app.Load(ctx)
	f.app.OpenLogin()
	before := f.server.Requests()

	f.app.Login(ctx, "", "")
	p := f.app.Snapshot()
	assert.Equal(t, "Please enter username and password.", p.Banner.Text)
	assert.Equal(t, before, f.server.Requests())

	f.app.Login(ctx, apitest.TeacherUsername, "wrong")
	p = f.app.Snapshot()
	assert.Equal(t, "Invalid teacher credentials", p.Banner.Text)
	assert.Equal(t, ui.BannerError, p.Banner.Kind)
	assert.True(t, p.LoginOpen)
	assert.Equal(t, apitest.TeacherUsername, p.LoginUsername)
	assert.Equal(t, ui.ModeStudent, p.Mode)
}

func TestApp_LoginThenLogout(t *testing.T) {
	f := newFixture(t, chessClub(), nil)
	ctx := context.Background()
	f.app.Load(ctx)

	f.app.ToggleMenu()
	f.app.OpenLogin()
	f.login(t)

	p := f.app.Snapshot()
	assert.False(t, p.MenuOpen)
	assert.False(t, p.LoginOpen)
	assert.True(t, p.ShowLogoutButton)
	assert.True(t, p.ShowSignupForm)

	token, err := f.store.Get(ctx, service.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, f.sessions.Current().Token, token)

	f.app.ToggleMenu()
	f.app.Logout(ctx)
	p = f.app.Snapshot()

	assert.Equal(t, ui.ModeStudent, p.Mode)
	assert.False(t, p.MenuOpen)
	require.NotNil(t, p.Banner)
	assert.Equal(t, ui.Banner{Text: "Logged out.", Kind: ui.BannerInfo}, *p.Banner)
	_, err = f.store.Get(ctx, service.TokenKey)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestApp_MenuAndDialog(t *testing.T) {
	f := newFixture(t, chessClub(), nil)

	f.app.ToggleMenu()
	assert.True(t, f.app.Snapshot().MenuOpen)
	f.app.ToggleMenu()
	assert.False(t, f.app.Snapshot().MenuOpen)

	f.app.OpenLogin()
	assert.True(t, f.app.Snapshot().LoginOpen)
	f.app.CloseLogin()
	assert.False(t, f.app.Snapshot().LoginOpen)
}
