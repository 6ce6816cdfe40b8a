package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/royalty"
	"github.com/mintfolio/settleapi/domain/royalty/mocks"
)

func TestRecord(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	repo := &mocks.Repo{}
	im := New(repo)

	valid := &royalty.Schedule{
		AssetId: domain.AssetId("asset-1"),
		Shares: []royalty.Share{
			{Recipient: domain.Address("0xaaa"), Percentage: 50},
			{Recipient: domain.Address("0xbbb"), Percentage: 50},
		},
		FeeRateBps: 1000,
	}

	repo.On("Create", c, valid).Return(nil).Once()
	req.NoError(im.Record(c, valid))
	req.False(valid.CreatedAt.IsZero())

	invalid := &royalty.Schedule{
		AssetId: domain.AssetId("asset-2"),
		Shares: []royalty.Share{
			{Recipient: domain.Address("0xaaa"), Percentage: 60},
			{Recipient: domain.Address("0xbbb"), Percentage: 50},
		},
	}

	req.ErrorIs(im.Record(c, invalid), domain.ErrInvalidSplitPercentage)
	repo.AssertNumberOfCalls(t, "Create", 1)

	repo.AssertExpectations(t)
}

func TestFindByAssetCachesSchedule(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	repo := &mocks.Repo{}
	im := New(repo)

	id := domain.AssetId("asset-1")
	schedule := &royalty.Schedule{
		AssetId:    id,
		Shares:     []royalty.Share{{Recipient: domain.Address("0xaaa"), Percentage: 100}},
		FeeRateBps: 250,
	}

	repo.On("FindByAsset", c, id).Return(schedule, nil).Once()

	got, err := im.FindByAsset(c, id)
	req.NoError(err)
	req.Equal(*schedule, *got)

	// second read is served from cache, repo is hit once
	got, err = im.FindByAsset(c, id)
	req.NoError(err)
	req.Equal(*schedule, *got)

	repo.AssertExpectations(t)
}

func TestFindByAssetNotFound(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	repo := &mocks.Repo{}
	im := New(repo)

	id := domain.AssetId("missing")
	repo.On("FindByAsset", c, id).Return(nil, domain.ErrNotFound).Once()

	_, err := im.FindByAsset(c, id)
	req.ErrorIs(err, domain.ErrNotFound)

	repo.AssertExpectations(t)
}
