package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroup(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		950:      "950",
		1000:     "1.000",
		25000:    "25.000",
		75000:    "75.000",
		1234567:  "1.234.567",
		-1234567: "-1.234.567",
	}
	for n, want := range cases {
		assert.Equal(t, want, Group(n))
	}
}

func TestFormatIDR(t *testing.T) {
	assert.Equal(t, "Rp 75.000", FormatIDR(75000))
	assert.Equal(t, "Rp 0", FormatIDR(0))
}
