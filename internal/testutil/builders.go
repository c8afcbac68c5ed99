package testutil

import (
	"time"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
)

// VacancyBuilder provides a fluent interface for building vacancies for testing.
type VacancyBuilder struct {
	v model.Vacancy
}

// NewVacancy creates a VacancyBuilder with sensible defaults.
func NewVacancy(id model.ID) *VacancyBuilder {
	return &VacancyBuilder{
		v: model.Vacancy{
			ID:             id,
			Title:          "Backend Engineer",
			Department:     "Engineering",
			Location:       "Remote",
			EmploymentType: model.EmploymentFullTime,
			Description:    "Build and operate services.",
			Status:         model.VacancyStatusActive,
			Deadline:       model.NewDate(TestTime().AddDate(0, 1, 0)),
			CreatedAt:      TestTime(),
		},
	}
}

// WithTitle sets the title.
func (b *VacancyBuilder) WithTitle(title string) *VacancyBuilder {
	b.v.Title = title
	return b
}

// WithDepartment sets the department.
func (b *VacancyBuilder) WithDepartment(dept string) *VacancyBuilder {
	b.v.Department = dept
	return b
}

// WithLocation sets the location.
func (b *VacancyBuilder) WithLocation(loc string) *VacancyBuilder {
	b.v.Location = loc
	return b
}

// WithStatus sets the status.
func (b *VacancyBuilder) WithStatus(s model.VacancyStatus) *VacancyBuilder {
	b.v.Status = s
	return b
}

// WithSalary sets the salary band.
func (b *VacancyBuilder) WithSalary(minimum, maximum float64) *VacancyBuilder {
	b.v.SalaryMin = Float64Ptr(minimum)
	b.v.SalaryMax = Float64Ptr(maximum)
	return b
}

// WithCreatedAt sets the creation time.
func (b *VacancyBuilder) WithCreatedAt(t time.Time) *VacancyBuilder {
	b.v.CreatedAt = t
	return b
}

// Build returns the vacancy.
func (b *VacancyBuilder) Build() model.Vacancy {
	return b.v
}

// ApplicationBuilder provides a fluent interface for building applications for testing.
type ApplicationBuilder struct {
	a model.Application
}

// NewApplication creates an ApplicationBuilder for the given vacancy.
func NewApplication(id, vacancyID model.ID) *ApplicationBuilder {
	return &ApplicationBuilder{
		a: model.Application{
			ID:             id,
			VacancyID:      vacancyID,
			VacancyTitle:   "Backend Engineer",
			ApplicantID:    "applicant-1",
			ApplicantName:  "Ana Ruiz",
			ApplicantEmail: "ana@example.com",
			Status:         model.ApplicationSubmitted,
			AppliedAt:      TestTime(),
		},
	}
}

// WithStatus sets the status.
func (b *ApplicationBuilder) WithStatus(s model.ApplicationStatus) *ApplicationBuilder {
	b.a.Status = s
	return b
}

// WithApplicant sets the applicant name and email.
func (b *ApplicationBuilder) WithApplicant(name, email string) *ApplicationBuilder {
	b.a.ApplicantName = name
	b.a.ApplicantEmail = email
	return b
}

// WithAppliedAt sets the submission time.
func (b *ApplicationBuilder) WithAppliedAt(t time.Time) *ApplicationBuilder {
	b.a.AppliedAt = t
	return b
}

// Build returns the application.
func (b *ApplicationBuilder) Build() model.Application {
	return b.a
}
