package quote

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/glass-quote/internal/models"
	"github.com/magabrotheeeer/glass-quote/internal/storage"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Quote)
	return list, args.Error(1)
}

func (m *RepoMock) CreateQuote(ctx context.Context, q models.Quote) (*models.Quote, error) {
	args := m.Called(ctx, q)
	saved, _ := args.Get(0).(*models.Quote)
	return saved, args.Error(1)
}

func (m *RepoMock) RemoveQuote(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type GlassMock struct {
	mock.Mock
}

func (m *GlassMock) GetGlassType(ctx context.Context, id string) (*models.GlassType, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*models.GlassType)
	return g, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCreate_ComputesAndSnapshots(t *testing.T) {
	repo := new(RepoMock)
	glass := new(GlassMock)
	glass.On("GetGlassType", mock.Anything, "g1").
		Return(&models.GlassType{ID: "g1", Name: "Float", Thickness: "4mm", PriceM2: 100}, nil).Once()

	want := models.Quote{
		Glass:       models.GlassSnapshot{ID: "g1", Name: "Float", Thickness: "4mm", PriceM2: 100},
		Height:      2,
		Width:       1.5,
		Area:        3,
		Markup:      30,
		CostPrice:   300,
		ClientPrice: 390,
		Note:        "Ventana cocina",
	}
	saved := want
	saved.ID = "q1"
	saved.CreatedAt = time.Date(2024, 5, 3, 14, 7, 0, 0, time.UTC)
	repo.On("CreateQuote", mock.Anything, want).Return(&saved, nil).Once()

	svc := NewService(repo, glass, newNoopLogger())
	got, err := svc.Create(context.Background(), models.QuoteRequest{
		Height: 2, Width: 1.5, GlassID: "g1", Markup: 30, Note: "Ventana cocina",
	})
	require.NoError(t, err)
	assert.Equal(t, &saved, got)
	repo.AssertExpectations(t)
	glass.AssertExpectations(t)
}

func TestCreate_KeepsFullPrecision(t *testing.T) {
	height, width, price := 1.1, 1.3, 33.33
	repo := new(RepoMock)
	glass := new(GlassMock)
	glass.On("GetGlassType", mock.Anything, "g1").
		Return(&models.GlassType{ID: "g1", Name: "Float", PriceM2: price}, nil).Once()
	repo.On("CreateQuote", mock.Anything, mock.MatchedBy(func(q models.Quote) bool {
		area := height * width
		return q.Area == area && q.CostPrice == area*price && q.ClientPrice == q.CostPrice
	})).Return(&models.Quote{ID: "q1"}, nil).Once()

	svc := NewService(repo, glass, newNoopLogger())
	_, err := svc.Create(context.Background(), models.QuoteRequest{Height: height, Width: width, GlassID: "g1"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(r *RepoMock, g *GlassMock)
		wantErr error
	}{
		{
			name: "unknown glass type",
			setup: func(_ *RepoMock, g *GlassMock) {
				g.On("GetGlassType", mock.Anything, "gx").Return(nil, storage.ErrNotFound).Once()
			},
			wantErr: ErrUnknownGlassType,
		},
		{
			name: "glass lookup failure",
			setup: func(_ *RepoMock, g *GlassMock) {
				g.On("GetGlassType", mock.Anything, "gx").Return(nil, errors.New("db error")).Once()
			},
		},
		{
			name: "repository failure",
			setup: func(r *RepoMock, g *GlassMock) {
				g.On("GetGlassType", mock.Anything, "gx").Return(&models.GlassType{ID: "gx", PriceM2: 1}, nil).Once()
				r.On("CreateQuote", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			glass := new(GlassMock)
			tt.setup(repo, glass)
			svc := NewService(repo, glass, newNoopLogger())

			got, err := svc.Create(context.Background(), models.QuoteRequest{Height: 1, Width: 1, GlassID: "gx"})
			require.Error(t, err)
			assert.Nil(t, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NotErrorIs(t, err, ErrUnknownGlassType)
			}
			repo.AssertExpectations(t)
			glass.AssertExpectations(t)
		})
	}
}

func TestListAndRemove(t *testing.T) {
	repo := new(RepoMock)
	quotes := []models.Quote{{ID: "q2"}, {ID: "q1"}}
	repo.On("ListQuotes", mock.Anything).Return(quotes, nil).Once()
	repo.On("RemoveQuote", mock.Anything, "q1").Return(nil).Once()
	repo.On("RemoveQuote", mock.Anything, "q9").Return(storage.ErrNotFound).Once()

	svc := NewService(repo, new(GlassMock), newNoopLogger())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, quotes, got)

	assert.NoError(t, svc.Remove(context.Background(), "q1"))
	assert.ErrorIs(t, svc.Remove(context.Background(), "q9"), storage.ErrNotFound)
	repo.AssertExpectations(t)
}
