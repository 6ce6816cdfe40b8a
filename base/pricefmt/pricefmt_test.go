package pricefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.2345", FormatAmount(1234500, 6))
	assert.Equal(t, "0.000001", FormatAmount(1, 6))
	assert.Equal(t, "0", FormatAmount(0, 6))
	assert.Equal(t, "1000000", FormatAmount(1000000, 0))
}

func TestFormatAmounts(t *testing.T) {
	assert.Equal(t, []string{"0.45", "0.27", "0.18"}, FormatAmounts([]uint64{450000, 270000, 180000}, 6))
}
