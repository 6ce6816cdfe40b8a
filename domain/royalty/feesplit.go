package royalty

import (
	"math"
	"math/bits"
)

// BpsDenominator is the number of basis points in the whole.
const BpsDenominator = 10_000

// SplitFee divides a gross amount into (fee, net) for a rate in basis
// points. The multiply is widened to 128 bits so the largest gross amount
// times 10,000 cannot overflow, and the division always floors. The
// subtraction saturates, so a misconfigured rate above 10,000 bps yields
// fee > gross and net == 0 instead of an underflow.
func SplitFee(gross uint64, bps uint32) (fee, net uint64) {
	hi, lo := bits.Mul64(gross, uint64(bps))
	if hi >= BpsDenominator {
		// quotient would not fit 64 bits, only reachable with a rate far
		// beyond 10,000 bps
		fee = math.MaxUint64
	} else {
		fee, _ = bits.Div64(hi, lo, BpsDenominator)
	}
	if fee > gross {
		return fee, 0
	}
	return fee, gross - fee
}

// ShareAmount floors one creator's cut of the remaining pool. Widened the
// same way as SplitFee; percentage comes from a validated share so the
// quotient always fits 64 bits.
func ShareAmount(remaining uint64, percentage int32) uint64 {
	hi, lo := bits.Mul64(remaining, uint64(percentage))
	amount, _ := bits.Div64(hi, lo, TotalPercentage)
	return amount
}
