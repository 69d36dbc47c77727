package questionnaire

// Extremes returns the oldest and the youngest person. On equal ages the one
// that comes first in people wins. ok is false when people is empty.
func Extremes(people []Person) (oldest, youngest Person, ok bool) {
	if len(people) == 0 {
		return Person{}, Person{}, false
	}

	oi, yi := 0, 0
	for i := 1; i < len(people); i++ {
		if people[i].Age > people[oi].Age {
			oi = i
		}
		if people[i].Age < people[yi].Age {
			yi = i
		}
	}

	return people[oi], people[yi], true
}
