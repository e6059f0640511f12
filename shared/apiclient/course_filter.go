package apiclient

import (
	"strings"

	"github.com/edu-platform/educlient/shared/api"
)

// CourseFilter narrows an already fetched list of courses on the client.
// Zero fields do not filter.
type CourseFilter struct {
	Search   string // case-insensitive match on title, description or tags
	Category string // case-insensitive exact match
	Level    string // case-insensitive exact match
	Tags     []string
	FreeOnly bool
	MinPrice *float64
	MaxPrice *float64
}

func (f CourseFilter) empty() bool {
	return strings.TrimSpace(f.Search) == "" && strings.TrimSpace(f.Category) == "" &&
		strings.TrimSpace(f.Level) == "" && len(nonBlank(f.Tags)) == 0 && !f.FreeOnly &&
		f.MinPrice == nil && f.MaxPrice == nil
}

// FilterCourses returns the courses matching every set field of f, keeping
// their order. The input slice is never modified.
func FilterCourses(courses []api.Course, f CourseFilter) []api.Course {
	if f.empty() {
		return courses
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	category := strings.TrimSpace(f.Category)
	level := strings.TrimSpace(f.Level)
	tags := nonBlank(f.Tags)

	out := make([]api.Course, 0, len(courses))
	for _, course := range courses {
		if search != "" && !matchesSearch(course, search) {
			continue
		}
		if category != "" && !strings.EqualFold(course.Category, category) {
			continue
		}
		if level != "" && !strings.EqualFold(course.Level, level) {
			continue
		}
		if f.FreeOnly && !(course.IsFree || course.Price == 0) {
			continue
		}
		if f.MinPrice != nil && course.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && course.Price > *f.MaxPrice {
			continue
		}
		if len(tags) > 0 && !hasAnyTag(course.Tags, tags) {
			continue
		}
		out = append(out, course)
	}
	return out
}

func matchesSearch(course api.Course, search string) bool {
	if strings.Contains(strings.ToLower(course.Title), search) ||
		strings.Contains(strings.ToLower(course.Description), search) {
		return true
	}
	for _, tag := range course.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
