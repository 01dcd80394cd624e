package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/boardgame-engine/internal/apperror"
	"github.com/rocketscienceinc/boardgame-engine/internal/engine"
	"github.com/rocketscienceinc/boardgame-engine/testing/suite"
)

func TestReplayer_Replay(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns a consistent archived game", func(t *testing.T) {
		// Given: a finished game stored in the archive
		session := newSession(t, nil)
		for _, pos := range xWinsMoves {
			_, err := session.Play(ctx, engine.PlaceName, pos)
			require.NoError(t, err)
		}
		record := session.Record()

		reader := &mockGameReader{}
		reader.On("GetByID", mock.Anything, record.ID).Return(record, nil).Once()

		// When: it is replayed
		replayed, err := NewReplayer(suite.NewLogger(), reader).Replay(ctx, record.ID)

		// Then: the record is returned
		require.NoError(t, err)
		assert.Equal(t, record, replayed)
		reader.AssertExpectations(t)
	})

	t.Run("Rejects a tampered record", func(t *testing.T) {
		// Given: an archived game whose last board was altered
		session := newSession(t, nil)
		for _, pos := range xWinsMoves {
			_, err := session.Play(ctx, engine.PlaceName, pos)
			require.NoError(t, err)
		}
		record := session.Record()

		last := len(record.History) - 1
		board, err := record.History[last].Board.WithCellSet(2, 2, "O")
		require.NoError(t, err)
		record.History[last].Board = board

		reader := &mockGameReader{}
		reader.On("GetByID", mock.Anything, record.ID).Return(record, nil).Once()

		// When: it is replayed
		_, err = NewReplayer(suite.NewLogger(), reader).Replay(ctx, record.ID)

		// Then: ErrReplayDiverged is returned
		assert.ErrorIs(t, err, apperror.ErrReplayDiverged)
	})

	t.Run("Passes through missing games", func(t *testing.T) {
		reader := &mockGameReader{}
		reader.On("GetByID", mock.Anything, "missing").Return(nil, apperror.ErrGameNotFound).Once()

		_, err := NewReplayer(suite.NewLogger(), reader).Replay(ctx, "missing")

		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Rejects unknown variants", func(t *testing.T) {
		session := newSession(t, nil)
		record := session.Record()
		record.Variant = "chess"

		reader := &mockGameReader{}
		reader.On("GetByID", mock.Anything, record.ID).Return(record, nil).Once()

		_, err := NewReplayer(suite.NewLogger(), reader).Replay(ctx, record.ID)

		assert.ErrorIs(t, err, apperror.ErrUnknownVariant)
	})
}
