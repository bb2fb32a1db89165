package frontend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/glass-quote/internal/apiclient"
	"github.com/magabrotheeeer/glass-quote/internal/models"
)

func TestShell_InitialViewIsChecking(t *testing.T) {
	f := newFixture()
	assert.Equal(t, ViewChecking, f.shell.View())
	f.api.AssertNotCalled(t, "Me", mock.Anything)
}

func TestShell_Start(t *testing.T) {
	quotes := []models.Quote{{ID: "q2"}, {ID: "q1"}}

	tests := []struct {
		name       string
		setupMock  func(m *GatewayMock)
		wantView   View
		wantQuotes []models.Quote
	}{
		{
			name: "активная сессия загружает расчёты и каталог",
			setupMock: func(m *GatewayMock) {
				m.On("Me", mock.Anything).Return(admin, nil).Once()
				m.On("ListQuotes", mock.Anything).Return(quotes, nil).Once()
				m.On("ListGlassTypes", mock.Anything).Return([]models.GlassType{float4}, nil).Once()
			},
			wantView:   ViewMain,
			wantQuotes: quotes,
		},
		{
			name: "ошибка проверки сессии — форма входа без запросов расчётов",
			setupMock: func(m *GatewayMock) {
				m.On("Me", mock.Anything).Return(nil, &apiclient.Error{Status: 401, Message: "No autenticado"}).Once()
			},
			wantView: ViewLogin,
		},
		{
			name: "сетевая ошибка трактуется как отсутствие сессии",
			setupMock: func(m *GatewayMock) {
				m.On("Me", mock.Anything).Return(nil, errors.New("connection refused")).Once()
			},
			wantView: ViewLogin,
		},
		{
			name: "ошибка загрузки расчётов не мешает главному экрану",
			setupMock: func(m *GatewayMock) {
				m.On("Me", mock.Anything).Return(admin, nil).Once()
				m.On("ListQuotes", mock.Anything).Return(nil, errors.New("db down")).Once()
				m.On("ListGlassTypes", mock.Anything).Return([]models.GlassType{}, nil).Once()
			},
			wantView: ViewMain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setupMock(f.api)

			f.shell.Start(context.Background())

			assert.Equal(t, tt.wantView, f.shell.View())
			assert.Equal(t, tt.wantQuotes, f.shell.State().Quotes)
			assert.Empty(t, f.notifier.messages, "ошибки сессии не показываются")
			f.api.AssertExpectations(t)
		})
	}
}

func TestShell_LoginLoadsQuotes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	quotes := []models.Quote{{ID: "q1"}}

	f.api.On("Me", mock.Anything).Return(nil, errors.New("401")).Once()
	f.shell.Start(ctx)
	require.Equal(t, ViewLogin, f.shell.View())

	f.api.On("Login", mock.Anything, "admin100", "secret").Return(admin, nil).Once()
	f.api.On("ListQuotes", mock.Anything).Return(quotes, nil).Once()
	f.api.On("ListGlassTypes", mock.Anything).Return([]models.GlassType{float4}, nil).Once()

	f.shell.Auth.Username = "admin100"
	f.shell.Auth.Password = "secret"
	f.shell.Auth.Submit(ctx)

	st := f.shell.State()
	assert.Equal(t, ViewMain, f.shell.View())
	require.NotNil(t, st.User)
	assert.Equal(t, "admin100", st.User.Username)
	assert.Equal(t, quotes, st.Quotes)
	assert.Equal(t, []models.GlassType{float4}, st.Catalog)
	assert.Equal(t, "g1", f.shell.Calculator.GlassID)
	f.api.AssertExpectations(t)
}

func TestShell_LogoutClearsStateEvenOnFailure(t *testing.T) {
	for _, logoutErr := range []error{nil, errors.New("network down")} {
		f := newFixture()
		ctx := context.Background()
		f.api.On("Me", mock.Anything).Return(admin, nil).Once()
		f.api.On("ListQuotes", mock.Anything).Return([]models.Quote{{ID: "q1"}}, nil).Once()
		f.api.On("ListGlassTypes", mock.Anything).Return([]models.GlassType{}, nil).Once()
		f.api.On("Logout", mock.Anything).Return(logoutErr).Once()

		f.shell.Start(ctx)
		f.shell.Header.ToggleMenu()
		f.shell.Logout(ctx)

		st := f.shell.State()
		assert.Equal(t, ViewLogin, f.shell.View())
		assert.Nil(t, st.User)
		assert.Empty(t, st.Quotes)
		assert.False(t, f.shell.Header.MenuOpen)
		assert.Empty(t, f.notifier.messages)
		f.api.AssertExpectations(t)
	}
}

func TestShell_CreateThenDeleteQuoteRestoresList(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	before := []models.Quote{{ID: "q1"}, {ID: "q0"}}
	f.api.On("Me", mock.Anything).Return(admin, nil).Once()
	f.api.On("ListQuotes", mock.Anything).Return(before, nil).Once()
	f.api.On("ListGlassTypes", mock.Anything).Return([]models.GlassType{float4}, nil).Once()
	f.shell.Start(ctx)

	created := &models.Quote{ID: "q2", CreatedAt: time.Now(), Height: 2, Width: 1.5, Area: 3, CostPrice: 300, ClientPrice: 390}
	f.api.On("CreateQuote", mock.Anything, mock.Anything).Return(created, nil).Once()
	f.api.On("DeleteQuote", mock.Anything, "q2").Return(nil).Once()

	f.shell.Calculator.Height = "2"
	f.shell.Calculator.Width = "1.5"
	f.shell.Calculator.Save(ctx)

	after := f.shell.State().Quotes
	require.Len(t, after, 3)
	assert.Equal(t, "q2", after[0].ID, "новый расчёт первым")

	f.shell.Quotes.Delete(ctx, after[0])

	assert.Equal(t, before, f.shell.State().Quotes)
	f.api.AssertNumberOfCalls(t, "ListQuotes", 1)
	f.api.AssertExpectations(t)
}

func TestStore_RemoveQuoteUnknownID(t *testing.T) {
	s := NewStore()
	s.ReplaceQuotes([]models.Quote{{ID: "a"}, {ID: "b"}})
	s.RemoveQuote("zzz")
	assert.Equal(t, []models.Quote{{ID: "a"}, {ID: "b"}}, s.Quotes())
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.ReplaceCatalog([]models.GlassType{float4})
	snap := s.Snapshot()
	snap.Catalog[0].Name = "changed"
	assert.Equal(t, "Float", s.Catalog()[0].Name)
}

func TestHeader_Navigate(t *testing.T) {
	h := NewHeader()
	h.ToggleMenu()
	require.True(t, h.MenuOpen)

	assert.True(t, h.Navigate(SectionQuotes))
	assert.False(t, h.MenuOpen)
	assert.Equal(t, SectionQuotes, h.Current)

	h.ToggleMenu()
	assert.False(t, h.Navigate("Inexistente"))
	assert.True(t, h.MenuOpen)
	assert.Equal(t, SectionQuotes, h.Current)
}
