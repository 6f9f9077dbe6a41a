package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBirthYear(t *testing.T) {
	tests := []struct {
		name string
		year int
		want int
	}{
		{name: "four digit year passes through", year: 1985, want: 1985},
		{name: "two digits above 20 are 1900s", year: 85, want: 1985},
		{name: "boundary 21 is 1921", year: 21, want: 1921},
		{name: "boundary 20 is 2020", year: 20, want: 2020},
		{name: "small values are 2000s", year: 5, want: 2005},
		{name: "zero is 2000", year: 0, want: 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBirthYear(tt.year))
		})
	}
}
