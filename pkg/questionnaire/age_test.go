package questionnaire_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/anketa/pkg/questionnaire"
)

func TestAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		birth    time.Time
		today    time.Time
		expected int
	}{
		{"birthday passed this year", date(1990, time.January, 1), date(2025, time.June, 15), 35},
		{"birthday is today", date(2005, time.June, 15), date(2025, time.June, 15), 20},
		{"birthday later this month", date(2005, time.June, 16), date(2025, time.June, 15), 19},
		{"birthday in a later month", date(2005, time.December, 1), date(2025, time.June, 15), 19},
		{"leap day before Feb 28 ends", date(2000, time.February, 29), date(2025, time.February, 28), 24},
		{"leap day on March 1", date(2000, time.February, 29), date(2025, time.March, 1), 25},
		{"born today", date(2025, time.June, 15), date(2025, time.June, 15), 0},
		{"later this year", date(2025, time.December, 31), date(2025, time.June, 15), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, questionnaire.Age(tt.birth, tt.today))
		})
	}
}

func TestAgeIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	birth := date(1990, time.June, 15)
	morning := time.Date(2025, time.June, 15, 0, 0, 1, 0, time.UTC)
	evening := time.Date(2025, time.June, 15, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, 35, questionnaire.Age(birth, morning))
	assert.Equal(t, 35, questionnaire.Age(birth, evening))
}
