//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// HRDashboardStats summarizes recruitment activity for HR managers.
type HRDashboardStats struct {
	TotalVacancies     int            `json:"totalVacancies"`
	ActiveVacancies    int            `json:"activeVacancies"`
	TotalApplications  int            `json:"totalApplications"`
	ByStatus           map[string]int `json:"applicationsByStatus,omitempty"`
	UpcomingInterviews int            `json:"upcomingInterviews"`
	DecisionsMade      int            `json:"decisionsMade"`
}

// ApplicantDashboardStats summarizes an applicant's activity.
type ApplicantDashboardStats struct {
	TotalApplications  int            `json:"totalApplications"`
	ByStatus           map[string]int `json:"applicationsByStatus,omitempty"`
	UpcomingInterviews int            `json:"upcomingInterviews"`
}

// StatusCount is one row of a by-status breakdown.
type StatusCount struct {
	Status  ApplicationStatus
	Count   int
	Display Display
}

// StatusBreakdown orders a by-status map along the workflow. Statuses the
// workflow does not know are appended in their own rows so nothing is lost.
func StatusBreakdown(byStatus map[string]int) []StatusCount {
	byStatus = canonicalStatusCounts(byStatus)
	out := make([]StatusCount, 0, len(byStatus))
	seen := make(map[string]struct{}, len(byStatus))
	for _, s := range ApplicationStatuses() {
		seen[string(s)] = struct{}{}
		if n, ok := byStatus[string(s)]; ok {
			out = append(out, StatusCount{Status: s, Count: n, Display: StatusDisplay(KindApplication, string(s))})
		}
	}
	for _, raw := range sortedKeys(byStatus) {
		if _, ok := seen[raw]; ok {
			continue
		}
		out = append(out, StatusCount{
			Status:  ApplicationStatus(raw),
			Count:   byStatus[raw],
			Display: StatusDisplay(KindApplication, raw),
		})
	}
	return out
}
