package httpx

import (
	"net/url"
	"strings"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/service"
)

const (
	// StrTrue represents the string "true" for boolean query parameters.
	StrTrue = "true"
	// SortDirAsc represents ascending sort direction.
	SortDirAsc = "asc"
	// SortDirDesc represents descending sort direction.
	SortDirDesc = "desc"
)

// ParseSortParam extracts the sort field and direction from the query.
// Both ?sort=field:dir and ?sort=field&dir=dir are accepted; the direction is
// lower-cased and dropped unless it is "asc" or "desc".
func ParseSortParam(q url.Values, sortKey, dirKey string) (string, string) {
	sortParam := strings.TrimSpace(q.Get(sortKey))

	if field, dir, ok := strings.Cut(sortParam, ":"); ok {
		return strings.TrimSpace(field), normalizeDir(dir)
	}
	return sortParam, normalizeDir(q.Get(dirKey))
}

func normalizeDir(dir string) string {
	dir = strings.ToLower(strings.TrimSpace(dir))
	if dir == SortDirAsc || dir == SortDirDesc {
		return dir
	}
	return ""
}

// SortOption is one entry of a list page's sort menu.
type SortOption struct {
	Value string
	Label string
}

//nolint:gochecknoglobals // static sort menus
var (
	vacancySorts = []SortOption{
		{Value: "deadline", Label: "Deadline"},
		{Value: "created_at", Label: "Newest"},
		{Value: "salary", Label: "Salary"},
		{Value: "title", Label: "Title"},
	}
	applicationSorts = []SortOption{
		{Value: "applied_at", Label: "Applied"},
		{Value: "status", Label: "Status"},
		{Value: "applicant", Label: "Applicant"},
		{Value: "vacancy", Label: "Vacancy"},
	}
)

// ListFilters echoes the active filters back to the list templates.
type ListFilters struct {
	Q          string
	Status     string
	Department string
	Location   string
	VacancyID  string
	Sort       string
	Dir        string
	Past       bool
}

// Active reports whether any narrowing filter is set.
func (f ListFilters) Active() bool {
	return f.Q != "" || f.Status != "" || f.Department != "" || f.Location != "" || f.VacancyID != ""
}

func baseFilters(q url.Values) ListFilters {
	sort, dir := ParseSortParam(q, "sort", "dir")
	return ListFilters{
		Q:    strings.TrimSpace(q.Get("q")),
		Sort: sort,
		Dir:  dir,
	}
}

// parseVacancyFilters reads q, department, location, status, sort and dir.
// Unknown status values are ignored rather than matching nothing.
func parseVacancyFilters(q url.Values) (model.VacancyListOptions, ListFilters) {
	f := baseFilters(q)
	f.Department = strings.TrimSpace(q.Get("department"))
	f.Location = strings.TrimSpace(q.Get("location"))

	opts := model.VacancyListOptions{Q: f.Q, Department: f.Department, Location: f.Location, Sort: f.Sort, Dir: f.Dir}
	if st, ok := model.ParseVacancyStatus(q.Get("status")); ok {
		opts.Status = &st
		f.Status = string(st)
	}
	return opts, f
}

func parseApplicationFilters(q url.Values) (model.ApplicationListOptions, ListFilters) {
	f := baseFilters(q)
	f.VacancyID = strings.TrimSpace(q.Get("vacancy_id"))

	opts := model.ApplicationListOptions{Q: f.Q, VacancyID: model.ID(f.VacancyID), Sort: f.Sort, Dir: f.Dir}
	if st, ok := model.ParseApplicationStatus(q.Get("status")); ok {
		opts.Status = &st
		f.Status = string(st)
	}
	return opts, f
}

func parseInterviewFilters(q url.Values) (service.InterviewListOptions, ListFilters) {
	f := ListFilters{Past: strings.EqualFold(strings.TrimSpace(q.Get("past")), StrTrue)}
	opts := service.InterviewListOptions{
		ApplicationID: model.ID(strings.TrimSpace(q.Get("application_id"))),
		Past:          f.Past,
	}
	if st, ok := model.ParseInterviewStatus(q.Get("status")); ok {
		opts.Status = &st
		f.Status = string(st)
	}
	return opts, f
}

func parseDecisionFilter(q url.Values) (*model.DecisionOutcome, ListFilters) {
	if d, ok := model.ParseDecisionOutcome(q.Get("decision")); ok {
		return &d, ListFilters{Status: string(d)}
	}
	return nil, ListFilters{}
}
