// Package mocks provides gomock implementations of the ports used by the
// portal's services and handlers.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	hr := mocks.NewMockHRAPI(ctrl)
//	hr.EXPECT().ListApplications(gomock.Any(), "tok").Return(apps, nil)
package mocks

// Authenticator, SessionStore and TokenDecoder back service.AuthService.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_mock.go github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports Authenticator,SessionStore,TokenDecoder

// ApplicantAPI, HRAPI and VacancyAPI back the recruitment services.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=recruitment_mock.go github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports ApplicantAPI,HRAPI,VacancyAPI
