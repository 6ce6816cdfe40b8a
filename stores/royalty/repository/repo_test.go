package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/royalty"
	"github.com/mintfolio/settleapi/service/query"
	"github.com/mintfolio/settleapi/service/query/mocks"
)

func TestCreate(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	q := &mocks.Mongo{}
	im := New(q)

	schedule := &royalty.Schedule{
		AssetId: domain.AssetId("asset-1"),
		Shares: []royalty.Share{
			{Recipient: domain.Address("0xABCDEF0123456789abcdef0123456789ABCDEF01"), Percentage: 100},
		},
		FeeRateBps: 1000,
		CreatedAt:  time.Unix(123, 0).UTC(),
	}

	q.On("Insert", c, domain.TableRoyaltySchedules, schedule).Return(nil).Once()
	req.NoError(im.Create(c, schedule))
	req.Equal(domain.Address("0xabcdef0123456789abcdef0123456789abcdef01"), schedule.Shares[0].Recipient)

	q.On("Insert", c, domain.TableRoyaltySchedules, schedule).Return(query.ErrDuplicateKey).Once()
	req.ErrorIs(im.Create(c, schedule), domain.ErrConflict)

	q.AssertExpectations(t)
}

func TestFindByAsset(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	q := &mocks.Mongo{}
	im := New(q)

	id := domain.AssetId("asset-1")
	want := royalty.Schedule{
		AssetId:    id,
		Shares:     []royalty.Share{{Recipient: domain.Address("0xabc"), Percentage: 100}},
		FeeRateBps: 1000,
	}

	q.On("FindOne", c, domain.TableRoyaltySchedules, bson.M{"assetId": id}, mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*royalty.Schedule) = want
		}).
		Return(nil).Once()

	got, err := im.FindByAsset(c, id)
	req.NoError(err)
	req.Equal(want, *got)

	q.On("FindOne", c, domain.TableRoyaltySchedules, bson.M{"assetId": domain.AssetId("missing")}, mock.Anything).
		Return(query.ErrNotFound).Once()

	_, err = im.FindByAsset(c, domain.AssetId("missing"))
	req.ErrorIs(err, domain.ErrNotFound)

	q.AssertExpectations(t)
}
