package authroles

import (
	"strings"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

var _ ports.RoleMapper = ClaimsMapper{}

// Default claim values recognised for each role.
var (
	DefaultHRNames        = []string{"HR_MANAGER", "HR", "RECRUITER"}
	DefaultApplicantNames = []string{"APPLICANT", "CANDIDATE", "USER"}
)

// ClaimsMapper maps token role claims by name membership. HR names win when a
// token carries both. Matching ignores case, a "ROLE_" prefix and the
// separator ("hr-manager" matches "HR_MANAGER").
type ClaimsMapper struct {
	HRNames        []string
	ApplicantNames []string
}

// NewClaimsMapper returns a mapper, using the defaults for empty lists.
func NewClaimsMapper(hrNames, applicantNames []string) ClaimsMapper {
	if len(hrNames) == 0 {
		hrNames = DefaultHRNames
	}
	if len(applicantNames) == 0 {
		applicantNames = DefaultApplicantNames
	}
	return ClaimsMapper{HRNames: hrNames, ApplicantNames: applicantNames}
}

func (m ClaimsMapper) Map(roles []string) (domainauth.Role, bool) {
	if matchAny(roles, m.HRNames) {
		return domainauth.RoleHRManager, true
	}
	if matchAny(roles, m.ApplicantNames) {
		return domainauth.RoleApplicant, true
	}
	return "", false
}

func matchAny(claims, names []string) bool {
	for _, c := range claims {
		nc := normalize(c)
		if nc == "" {
			continue
		}
		for _, n := range names {
			if nc == normalize(n) {
				return true
			}
		}
	}
	return false
}

func normalize(s string) string {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "ROLE_")
	return strings.NewReplacer("-", "_", " ", "_").Replace(v)
}
