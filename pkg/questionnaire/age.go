package questionnaire

import "time"

// Age returns the number of full years between birth and today. The year
// difference is reduced by one while the birthday has not come yet this year.
func Age(birth, today time.Time) int {
	age := today.Year() - birth.Year()

	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}

	return age
}
