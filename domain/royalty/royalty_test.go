package royalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/mintfolio/settleapi/domain"
)

func share(recipient string, pct int32) Share {
	return Share{Recipient: domain.Address(recipient), Percentage: pct}
}

func TestValidateShares(t *testing.T) {
	tests := []struct {
		desc   string
		shares []Share
		expErr error
	}{
		{
			desc:   "three way split",
			shares: []Share{share("0xa", 50), share("0xb", 30), share("0xc", 20)},
			expErr: nil,
		},
		{
			desc:   "two even shares",
			shares: []Share{share("0xa", 50), share("0xb", 50)},
			expErr: nil,
		},
		{
			desc:   "ten creators",
			shares: []Share{share("0x0", 10), share("0x1", 10), share("0x2", 10), share("0x3", 10), share("0x4", 10), share("0x5", 10), share("0x6", 10), share("0x7", 10), share("0x8", 10), share("0x9", 10)},
			expErr: nil,
		},
		{
			desc:   "boundary percentages 1 and 99",
			shares: []Share{share("0xa", 1), share("0xb", 99)},
			expErr: nil,
		},
		{
			desc:   "empty",
			shares: []Share{},
			expErr: domain.ErrNoCreators,
		},
		{
			desc:   "nil",
			shares: nil,
			expErr: domain.ErrNoCreators,
		},
		{
			desc:   "eleven creators",
			shares: []Share{share("0x0", 10), share("0x1", 9), share("0x2", 9), share("0x3", 9), share("0x4", 9), share("0x5", 9), share("0x6", 9), share("0x7", 9), share("0x8", 9), share("0x9", 9), share("0xa", 9)},
			expErr: domain.ErrTooManyCreators,
		},
		{
			desc:   "over allocation fails the sum check",
			shares: []Share{share("0xa", 50), share("0xb", 60)},
			expErr: domain.ErrInvalidSplitPercentage,
		},
		{
			desc:   "under allocation fails the sum check",
			shares: []Share{share("0xa", 40), share("0xb", 30)},
			expErr: domain.ErrInvalidSplitPercentage,
		},
		{
			desc:   "zero percentage share",
			shares: []Share{share("0xa", 0), share("0xb", 100)},
			expErr: domain.ErrInvalidCreatorPercentage,
		},
		{
			desc:   "hundred percent share",
			shares: []Share{share("0xa", 100)},
			expErr: domain.ErrInvalidCreatorPercentage,
		},
		{
			desc:   "negative percentage share",
			shares: []Share{share("0xa", -10), share("0xb", 110)},
			expErr: domain.ErrInvalidCreatorPercentage,
		},
	}

	for _, tc := range tests {
		err := ValidateShares(tc.shares)
		if tc.expErr == nil {
			assert.NoError(t, err, tc.desc)
		} else {
			assert.ErrorIs(t, err, tc.expErr, tc.desc)
		}
	}
}

func TestValidateSharesDoesNotMutate(t *testing.T) {
	shares := []Share{share("0xa", 50), share("0xb", 50)}
	orig := make([]Share, len(shares))
	copy(orig, shares)
	_ = ValidateShares(shares)
	assert.Equal(t, orig, shares)
}
