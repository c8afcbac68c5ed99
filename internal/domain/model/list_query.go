//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"sort"
	"strconv"
	"strings"
)

// Lists arrive from the API already complete; searching, filtering and
// sorting happen in the portal. None of the functions below modify their input.

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// normalizeDir returns "asc" or "desc", falling back to def.
func normalizeDir(dir, def string) string {
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case SortAsc:
		return SortAsc
	case SortDesc:
		return SortDesc
	default:
		return def
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func matchesAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if containsFold(f, needle) {
			return true
		}
	}
	return false
}

// FilterVacancies applies opts to list and returns a new slice.
func FilterVacancies(list []Vacancy, opts VacancyListOptions) []Vacancy {
	q := strings.ToLower(strings.TrimSpace(opts.Q))
	dept := strings.TrimSpace(opts.Department)
	loc := strings.TrimSpace(opts.Location)

	out := make([]Vacancy, 0, len(list))
	for _, v := range list {
		if opts.Status != nil && v.Status != *opts.Status {
			continue
		}
		if dept != "" && !strings.EqualFold(strings.TrimSpace(v.Department), dept) {
			continue
		}
		if loc != "" && !strings.EqualFold(strings.TrimSpace(v.Location), loc) {
			continue
		}
		if q != "" && !matchesAny(q, v.Title, v.Department, v.Location, v.Description) {
			continue
		}
		out = append(out, v)
	}
	sortVacancies(out, opts.Sort, opts.Dir)
	return out
}

func sortVacancies(list []Vacancy, field, dir string) {
	field = strings.ToLower(strings.TrimSpace(field))
	var less func(a, b Vacancy) bool
	def := SortAsc
	switch field {
	case "deadline":
		// Vacancies without a deadline sort last in ascending order.
		less = func(a, b Vacancy) bool {
			if a.Deadline.IsZero() != b.Deadline.IsZero() {
				return !a.Deadline.IsZero()
			}
			return a.Deadline.Before(b.Deadline.Time)
		}
	case "salary":
		less = func(a, b Vacancy) bool { return a.salaryKey() < b.salaryKey() }
	case "title":
		less = func(a, b Vacancy) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	default:
		def = SortDesc
		less = func(a, b Vacancy) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
	desc := normalizeDir(dir, def) == SortDesc
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
}

// FacetsOf collects the distinct departments and locations of list, sorted.
func FacetsOf(list []Vacancy) VacancyFacets {
	depts := map[string]int{}
	locs := map[string]int{}
	for _, v := range list {
		if d := strings.TrimSpace(v.Department); d != "" {
			depts[d]++
		}
		if l := strings.TrimSpace(v.Location); l != "" {
			locs[l]++
		}
	}
	return VacancyFacets{Departments: sortedKeys(depts), Locations: sortedKeys(locs)}
}

// FilterApplications applies opts to list and returns a new slice.
func FilterApplications(list []Application, opts ApplicationListOptions) []Application {
	q := strings.ToLower(strings.TrimSpace(opts.Q))
	out := make([]Application, 0, len(list))
	for _, a := range list {
		if opts.Status != nil && a.Status != *opts.Status {
			continue
		}
		if !opts.VacancyID.IsZero() && a.VacancyID != opts.VacancyID {
			continue
		}
		if q != "" && !matchesAny(q, a.ApplicantName, a.ApplicantEmail, a.VacancyTitle) {
			continue
		}
		out = append(out, a)
	}
	sortApplications(out, opts.Sort, opts.Dir)
	return out
}

func sortApplications(list []Application, field, dir string) {
	var less func(a, b Application) bool
	def := SortAsc
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "status":
		less = func(a, b Application) bool { return a.Status.Ordinal() < b.Status.Ordinal() }
	case "applicant":
		less = func(a, b Application) bool {
			return strings.ToLower(a.ApplicantName) < strings.ToLower(b.ApplicantName)
		}
	case "vacancy":
		less = func(a, b Application) bool {
			return strings.ToLower(a.VacancyTitle) < strings.ToLower(b.VacancyTitle)
		}
	default:
		def = SortDesc
		less = func(a, b Application) bool { return a.AppliedAt.Before(b.AppliedAt) }
	}
	desc := normalizeDir(dir, def) == SortDesc
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
}

// RecentApplications returns up to limit applications, newest first.
func RecentApplications(list []Application, limit int) []Application {
	out := FilterApplications(list, ApplicationListOptions{})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatAmount renders a salary without decimals and with thousands separators.
func formatAmount(v float64) string {
	s := strconv.FormatInt(int64(v), 10)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func isHTTPURL(s string) bool {
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
