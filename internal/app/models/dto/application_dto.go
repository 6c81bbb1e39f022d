package dto

import (
	"time"

	"github.com/longvh/admissions/internal/app/models"
)

// ExtraDocumentRequest is one supporting-document group in a submission.
type ExtraDocumentRequest struct {
	Description string   `json:"description" binding:"required"`
	Files       []string `json:"files" binding:"required,min=1"`
}

// SubmitApplicationRequest carries a candidate's full application form.
// Application code, status and timestamps are assigned server-side.
type SubmitApplicationRequest struct {
	Fullname      string `json:"fullname" binding:"required"`
	Gender        string `json:"gender" binding:"required"`
	DOB           string `json:"dob" binding:"required"`
	IDNumber      string `json:"idNumber" binding:"required"`
	Province      string `json:"province" binding:"required"`
	District      string `json:"district" binding:"required"`
	Ward          string `json:"ward" binding:"required"`
	AddressDetail string `json:"addressDetail" binding:"required"`

	MathScore           float64  `json:"mathScore" binding:"required,min=0,max=10"`
	LiteratureScore     float64  `json:"literatureScore" binding:"required,min=0,max=10"`
	EnglishScore        float64  `json:"englishScore" binding:"required,min=0,max=10"`
	PhysicsScore        *float64 `json:"physicsScore,omitempty" binding:"omitempty,min=0,max=10"`
	ChemistryScore      *float64 `json:"chemistryScore,omitempty" binding:"omitempty,min=0,max=10"`
	BiologyScore        *float64 `json:"biologyScore,omitempty" binding:"omitempty,min=0,max=10"`
	HistoryScore        *float64 `json:"historyScore,omitempty" binding:"omitempty,min=0,max=10"`
	GeographyScore      *float64 `json:"geographyScore,omitempty" binding:"omitempty,min=0,max=10"`
	CivicEducationScore *float64 `json:"civicEducationScore,omitempty" binding:"omitempty,min=0,max=10"`

	School       string  `json:"school" binding:"required"`
	Major        string  `json:"major" binding:"required"`
	SubjectGroup string  `json:"subjectGroup" binding:"required"`
	TotalScore   float64 `json:"totalScore" binding:"required,min=0"`

	CCCDFront      string                 `json:"cccdFront" binding:"required"`
	CCCDBack       string                 `json:"cccdBack" binding:"required"`
	Transcript     []string               `json:"transcript" binding:"required,min=1"`
	Priority       *string                `json:"priority,omitempty"`
	PriorityProof  *string                `json:"priorityProof,omitempty"`
	ExtraDocuments []ExtraDocumentRequest `json:"extraDocuments,omitempty"`
}

// SubmitApplicationResponse confirms a stored submission.
type SubmitApplicationResponse struct {
	Message         string `json:"message"`
	ApplicationID   int64  `json:"applicationId"`
	ApplicationCode string `json:"applicationCode" example:"HS-A1B2C3D4"`
	Status          string `json:"status" example:"PENDING"`
}

// ApplicationFilterRequest holds the optional, still-unparsed list filters
// as they arrive on the query string. Date bounds are compiled (and
// validated) by the service layer.
type ApplicationFilterRequest struct {
	Search       string
	Status       string
	SchoolCode   string
	MajorCode    string
	SubjectGroup string
	DateFrom     string
	DateTo       string
	Page         int
	Limit        int
}

// ApplicationListItem is one row of a paginated application listing.
// SchoolName and MajorName stay null when the referenced reference data is
// missing; the record itself is never dropped.
type ApplicationListItem struct {
	ApplicationCode string  `json:"applicationCode" example:"HS-A1B2C3D4"`
	SchoolName      *string `json:"schoolName"`
	MajorName       *string `json:"majorName"`
	Status          string  `json:"status" example:"PENDING"`
}

// PaginatedApplicationsResponse is the envelope of both the candidate
// self-service listing and the admin listing.
type PaginatedApplicationsResponse struct {
	Pagination   PaginationInfo        `json:"pagination"`
	Applications []ApplicationListItem `json:"applications"`
}

// StatusDetail carries both representations of a status.
type StatusDetail struct {
	Code        string `json:"code" example:"PENDING"`
	DisplayName string `json:"displayName" example:"Chờ duyệt"`
}

// ApplicationDetailResponse is the full detail view of one application.
type ApplicationDetailResponse struct {
	ApplicationCode string       `json:"applicationCode"`
	Status          StatusDetail `json:"status"`

	Fullname      string `json:"fullname"`
	Gender        string `json:"gender"`
	DOB           string `json:"dob"`
	IDNumber      string `json:"idNumber"`
	Province      string `json:"province"`
	District      string `json:"district"`
	Ward          string `json:"ward"`
	AddressDetail string `json:"addressDetail"`

	MathScore           float64  `json:"mathScore"`
	LiteratureScore     float64  `json:"literatureScore"`
	EnglishScore        float64  `json:"englishScore"`
	PhysicsScore        *float64 `json:"physicsScore,omitempty"`
	ChemistryScore      *float64 `json:"chemistryScore,omitempty"`
	BiologyScore        *float64 `json:"biologyScore,omitempty"`
	HistoryScore        *float64 `json:"historyScore,omitempty"`
	GeographyScore      *float64 `json:"geographyScore,omitempty"`
	CivicEducationScore *float64 `json:"civicEducationScore,omitempty"`

	School       string  `json:"school"`
	SchoolName   *string `json:"schoolName"`
	Major        string  `json:"major"`
	MajorName    *string `json:"majorName"`
	SubjectGroup string  `json:"subjectGroup"`
	TotalScore   float64 `json:"totalScore"`

	CCCDFront      string                 `json:"cccdFront"`
	CCCDBack       string                 `json:"cccdBack"`
	Transcript     []string               `json:"transcript"`
	Priority       *string                `json:"priority,omitempty"`
	PriorityProof  *string                `json:"priorityProof,omitempty"`
	ExtraDocuments []ExtraDocumentRequest `json:"extraDocuments,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatusUpdateRequest is the admin status-transition payload.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required" example:"APPROVED" enums:"PENDING,APPROVED,CANCEL"`
}

// StatusUpdateResponse reports the outcome of a transition request.
// Changed is false for the no-op case: the record exists but already had the
// requested status, so nothing was written.
type StatusUpdateResponse struct {
	Message string `json:"message"`
	Changed bool   `json:"changed"`
}

// FromApplication converts an enriched application model into the detail DTO.
func FromApplication(app *models.Application) *ApplicationDetailResponse {
	if app == nil {
		return nil
	}

	var extras []ExtraDocumentRequest
	for _, doc := range app.ExtraDocuments {
		extras = append(extras, ExtraDocumentRequest{Description: doc.Description, Files: doc.Files})
	}

	return &ApplicationDetailResponse{
		ApplicationCode: app.ApplicationCode,
		Status: StatusDetail{
			Code:        app.Status.Code(),
			DisplayName: app.Status.Label(),
		},
		Fullname:            app.Fullname,
		Gender:              app.Gender,
		DOB:                 app.DOB,
		IDNumber:            app.IDNumber,
		Province:            app.Province,
		District:            app.District,
		Ward:                app.Ward,
		AddressDetail:       app.AddressDetail,
		MathScore:           app.MathScore,
		LiteratureScore:     app.LiteratureScore,
		EnglishScore:        app.EnglishScore,
		PhysicsScore:        app.PhysicsScore,
		ChemistryScore:      app.ChemistryScore,
		BiologyScore:        app.BiologyScore,
		HistoryScore:        app.HistoryScore,
		GeographyScore:      app.GeographyScore,
		CivicEducationScore: app.CivicEducationScore,
		School:              app.SchoolCode,
		SchoolName:          app.SchoolName,
		Major:               app.MajorCode,
		MajorName:           app.MajorName,
		SubjectGroup:        app.SubjectGroupCode,
		TotalScore:          app.TotalScore,
		CCCDFront:           app.CCCDFront,
		CCCDBack:            app.CCCDBack,
		Transcript:          app.Transcript,
		Priority:            app.Priority,
		PriorityProof:       app.PriorityProof,
		ExtraDocuments:      extras,
		CreatedAt:           app.CreatedAt,
		UpdatedAt:           app.UpdatedAt,
	}
}

// FromApplicationListItem converts an enriched application into a list row.
func FromApplicationListItem(app *models.Application) ApplicationListItem {
	return ApplicationListItem{
		ApplicationCode: app.ApplicationCode,
		SchoolName:      app.SchoolName,
		MajorName:       app.MajorName,
		Status:          app.Status.Code(),
	}
}
