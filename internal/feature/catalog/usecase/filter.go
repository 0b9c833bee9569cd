package usecase

import (
	"strings"

	"yoga_storefront/internal/feature/catalog/domain/entity"
)

// FilterClasses returns the classes matching query, in their original order.
// A class matches if the lower-cased query is a substring of its day, time or type,
// or of any instance's teacher. An empty query matches everything.
func FilterClasses(classes []entity.YogaClass, query string) []entity.YogaClass {
	term := strings.ToLower(query)
	out := make([]entity.YogaClass, 0, len(classes))
	for _, c := range classes {
		if matches(c, term) {
			out = append(out, c.Clone())
		}
	}
	return out
}

func matches(c entity.YogaClass, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Day), term) ||
		strings.Contains(strings.ToLower(c.Time), term) ||
		strings.Contains(strings.ToLower(c.Type), term) {
		return true
	}
	for _, inst := range c.Instances {
		if strings.Contains(strings.ToLower(inst.Teacher), term) {
			return true
		}
	}
	return false
}
