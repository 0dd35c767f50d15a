package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	mockRepo "vendorradar/internal/mocks/repository"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRankSuggestions(t *testing.T) {
	entries := func(queries ...string) []entity.SearchHistoryEntry {
		out := make([]entity.SearchHistoryEntry, 0, len(queries))
		for _, q := range queries {
			out = append(out, entity.SearchHistoryEntry{Query: q})
		}

		return out
	}

	tests := []struct {
		name    string
		entries []entity.SearchHistoryEntry
		window  int
		limit   int
		want    []string
	}{
		{
			name:    "most frequent first, ties in first-seen order",
			entries: entries("red apples", "green apples", "milk"),
			window:  10,
			limit:   2,
			want:    []string{"apples", "red"},
		},
		{
			name:    "short words are skipped",
			entries: entries("a jar of honey", "BIG jar"),
			window:  10,
			limit:   5,
			want:    []string{"jar", "honey", "big"},
		},
		{
			name:    "only the window is considered",
			entries: entries("bread", "cheese", "cheese", "cheese"),
			window:  2,
			limit:   5,
			want:    []string{"bread", "cheese"},
		},
		{
			name:    "no usable words",
			entries: entries("ab", "of"),
			window:  10,
			limit:   5,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankSuggestions(tt.entries, tt.window, tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistory_AddEntryKeepsNewestFirstAndCaps(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	srv := env.historyService()
	customerID := uuid.New()

	for i := 0; i < 51; i++ {
		require.NoError(t, srv.AddEntry(ctx, customerID, &usecase.AddHistoryInput{
			Query:        fmt.Sprintf("query %d", i),
			ResultsCount: i,
		}))
	}

	entries, err := srv.History(ctx, customerID, 100)
	require.NoError(t, err)
	require.Len(t, entries, 50)
	assert.Equal(t, "query 50", entries[0].Query)
	assert.Equal(t, "query 1", entries[49].Query, "the oldest entry is evicted")

	entries, err = srv.History(ctx, customerID, 0)
	require.NoError(t, err)
	assert.Len(t, entries, defaultHistoryLimit)
}

func TestHistory_AddEntryStampsServerTime(t *testing.T) {
	env := newTestEnv(t)
	srv := env.historyService()
	frozen := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)
	srv.now = func() time.Time { return frozen }
	customerID := uuid.New()
	at := orb.Point{-74, 40.71}

	require.NoError(t, srv.AddEntry(context.Background(), customerID, &usecase.AddHistoryInput{
		Query:        "  fresh bread ",
		Coordinates:  &at,
		ResultsCount: 3,
	}))

	entries, err := srv.History(context.Background(), customerID, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fresh bread", entries[0].Query)
	assert.Equal(t, frozen, entries[0].Timestamp)
	assert.Equal(t, &at, entries[0].Coordinates)
	assert.Equal(t, 3, entries[0].ResultsCount)
}

func TestHistory_AddEntryValidation(t *testing.T) {
	srv := newTestEnv(t).historyService()
	bad := orb.Point{0, 100}

	tests := []struct {
		name  string
		input *usecase.AddHistoryInput
		want  error
	}{
		{name: "nil", input: nil, want: domainerrors.ErrValidationFailed},
		{name: "blank query", input: &usecase.AddHistoryInput{Query: " "}, want: domainerrors.ErrValidationFailed},
		{name: "negative results", input: &usecase.AddHistoryInput{Query: "milk", ResultsCount: -1}, want: domainerrors.ErrValidationFailed},
		{name: "bad coordinates", input: &usecase.AddHistoryInput{Query: "milk", Coordinates: &bad}, want: domainerrors.ErrInvalidCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, srv.AddEntry(context.Background(), uuid.New(), tt.input), tt.want)
		})
	}
}

func TestHistory_Suggestions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	srv := env.historyService()
	customerID := uuid.New()

	suggestions, err := srv.Suggestions(ctx, customerID, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"fruits", "vegetables", "dairy", "snacks"}, suggestions, "no history falls back to popular categories")

	suggestions, err = srv.Suggestions(ctx, customerID, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"fruits", "vegetables"}, suggestions)

	for _, q := range []string{"milk", "green apples", "red apples"} {
		require.NoError(t, srv.AddEntry(ctx, customerID, &usecase.AddHistoryInput{Query: q}))
	}

	suggestions, err = srv.Suggestions(ctx, customerID, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"apples", "red"}, suggestions)
}

func TestHistory_RepositoryFailure(t *testing.T) {
	repo := mockRepo.NewMockSearchHistoryRepository(t)
	srv := NewHistoryService(HistoryServiceParams{HistoryRepo: repo, Config: newTestConfig(), Logger: discardLogger})
	customerID := uuid.New()

	repo.EXPECT().RecentEntries(mock.Anything, customerID, 10).Return(nil, errors.New("mongo timeout"))

	_, err := srv.Suggestions(context.Background(), customerID, 3)
	require.Error(t, err)

	var infraErr *domainerrors.InfrastructureError
	assert.True(t, errors.As(err, &infraErr))
}
