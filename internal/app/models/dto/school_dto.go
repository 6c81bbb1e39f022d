package dto

import "github.com/longvh/admissions/internal/app/models"

// SchoolResponse is one school entry of the reference listing, without its
// major list.
type SchoolResponse struct {
	Code string `json:"code" example:"BKHN"`
	Name string `json:"name" example:"Đại học Bách khoa Hà Nội"`
}

// MajorResponse is one major of a school with its subject-group references.
type MajorResponse struct {
	Code              string   `json:"code" example:"CS01"`
	Name              string   `json:"name" example:"Computer Science"`
	SubjectGroupCodes []string `json:"subject_group_ids"`
}

// SubjectCombinationResponse is the detail view of one subject combination.
type SubjectCombinationResponse struct {
	Code     string   `json:"code" example:"A00"`
	Name     string   `json:"name" example:"Toán, Lý, Hóa"`
	Subjects []string `json:"subjects"`
}

// FromSchool converts a school model into the listing DTO.
func FromSchool(school *models.School) SchoolResponse {
	return SchoolResponse{Code: school.Code, Name: school.Name}
}

// FromMajor converts a major model into its DTO.
func FromMajor(major *models.Major) MajorResponse {
	return MajorResponse{
		Code:              major.Code,
		Name:              major.Name,
		SubjectGroupCodes: major.SubjectGroupCodes,
	}
}
