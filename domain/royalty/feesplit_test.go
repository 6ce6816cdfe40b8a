package royalty

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFee(t *testing.T) {
	tests := []struct {
		desc   string
		gross  uint64
		bps    uint32
		expFee uint64
		expNet uint64
	}{
		{desc: "ten percent of 10000", gross: 10_000, bps: 1000, expFee: 1000, expNet: 9000},
		{desc: "ten percent floors", gross: 12_345, bps: 1000, expFee: 1234, expNet: 11_111},
		{desc: "zero gross", gross: 0, bps: 1000, expFee: 0, expNet: 0},
		{desc: "zero rate", gross: 12_345, bps: 0, expFee: 0, expNet: 12_345},
		{desc: "full rate", gross: 12_345, bps: 10_000, expFee: 12_345, expNet: 0},
		{desc: "one bp of tiny amount floors to zero", gross: 9999, bps: 1, expFee: 0, expNet: 9999},
		{desc: "largest 63 bit gross", gross: 1<<63 - 1, bps: 1000, expFee: (1<<63 - 1) / 10, expNet: 1<<63 - 1 - (1<<63-1)/10},
	}

	for _, tc := range tests {
		fee, net := SplitFee(tc.gross, tc.bps)
		assert.Equal(t, tc.expFee, fee, tc.desc)
		assert.Equal(t, tc.expNet, net, tc.desc)
	}
}

func TestSplitFeeOverRate(t *testing.T) {
	// rates above 10,000 bps are not rejected, fee exceeds gross and net
	// saturates at zero
	fee, net := SplitFee(1000, 15_000)
	assert.Equal(t, uint64(1500), fee)
	assert.Equal(t, uint64(0), net)
}

func TestSplitFeeConservation(t *testing.T) {
	// fee + net == gross and fee == floor(gross*bps/10000) across a pseudo
	// random sweep of the 63 bit gross range
	req := require.New(t)
	rnd := rand.New(rand.NewSource(42))
	den := big.NewInt(BpsDenominator)

	for i := 0; i < 10_000; i++ {
		gross := uint64(rnd.Int63())
		bps := uint32(rnd.Intn(BpsDenominator + 1))

		fee, net := SplitFee(gross, bps)
		req.Equal(gross, fee+net, "gross=%d bps=%d", gross, bps)

		want := new(big.Int).SetUint64(gross)
		want.Mul(want, big.NewInt(int64(bps)))
		want.Quo(want, den)
		req.Equal(want.Uint64(), fee, "gross=%d bps=%d", gross, bps)
	}
}
