package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/boardgame-engine/internal/entity"
)

type mockGameArchive struct {
	mock.Mock
}

func (that *mockGameArchive) Create(ctx context.Context, record *entity.GameRecord) error {
	args := that.Called(ctx, record)
	return args.Error(0)
}

type mockGameReader struct {
	mock.Mock
}

func (that *mockGameReader) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	args := that.Called(ctx, id)

	record, _ := args.Get(0).(*entity.GameRecord)

	return record, args.Error(1)
}

type mockGameIndex struct {
	mock.Mock
}

func (that *mockGameIndex) List(ctx context.Context, limit int64) ([]string, error) {
	args := that.Called(ctx, limit)

	ids, _ := args.Get(0).([]string)

	return ids, args.Error(1)
}

func (that *mockGameIndex) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}
