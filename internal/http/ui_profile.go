package httpx

import (
	"context"
	"net/http"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
)

var (
	applicantProfileMeta = PageMeta{Title: "Profile", PageTitle: "My profile", CurrentPage: PageApplicantProfile}
	hrProfileMeta        = PageMeta{Title: "Profile", PageTitle: "My profile", CurrentPage: PageHRProfile}
)

// ApplicantProfile renders the applicant's profile form.
// GET /applicant/profile.
func (h *UIHandlers) ApplicantProfile(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: applicantProfileMeta,
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Form"] = map[string]string{}
			p, err := h.Profiles.Applicant(ctx, tokenOf(r))
			if err != nil {
				return err
			}
			data["Profile"] = p
			data["Form"] = applicantProfileFormValues(p)
			return nil
		},
	})
}

// SaveApplicantProfile saves the profile and reloads the page.
// POST /applicant/profile.
func (h *UIHandlers) SaveApplicantProfile(w http.ResponseWriter, r *http.Request) {
	HandleForm(h, FormHandlerOpts[model.ApplicantProfile]{
		W: w, R: r, Mode: FormModeCreate,
		Parser: parseApplicantProfileForm,
		Submit: func(ctx context.Context, _ model.ID, p model.ApplicantProfile) error {
			_, err := h.Profiles.SaveApplicant(ctx, tokenOf(r), p)
			return err
		},
		SuccessURL: withNotice("/applicant/profile", "profile-saved"),
		PageMeta:   applicantProfileMeta,
	})
}

// HRProfile renders the HR manager's profile form.
// GET /hr/profile.
func (h *UIHandlers) HRProfile(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: hrProfileMeta,
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Form"] = map[string]string{}
			p, err := h.Profiles.HR(ctx, tokenOf(r))
			if err != nil {
				return err
			}
			data["Profile"] = p
			data["Form"] = hrProfileFormValues(p)
			return nil
		},
	})
}

// SaveHRProfile saves the profile and reloads the page.
// POST /hr/profile.
func (h *UIHandlers) SaveHRProfile(w http.ResponseWriter, r *http.Request) {
	HandleForm(h, FormHandlerOpts[model.HRProfile]{
		W: w, R: r, Mode: FormModeCreate,
		Parser: parseHRProfileForm,
		Submit: func(ctx context.Context, _ model.ID, p model.HRProfile) error {
			_, err := h.Profiles.SaveHR(ctx, tokenOf(r), p)
			return err
		},
		SuccessURL: withNotice("/hr/profile", "profile-saved"),
		PageMeta:   hrProfileMeta,
	})
}
