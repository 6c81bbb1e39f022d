package models

// School defines a school reference record based on the 'schools' table.
// Reference data: read-only from this service's perspective, owned by the
// external school-management collaborator.
type School struct {
	Code   string  `json:"code" db:"code" example:"BKHN"`
	Name   string  `json:"name" db:"name" example:"Đại học Bách khoa Hà Nội"`
	Majors []Major `json:"majors,omitempty"`
}

// Major is one entry of a school's ordered major list, based on the
// 'school_majors' table.
type Major struct {
	SchoolCode        string   `json:"-" db:"school_code"`
	Code              string   `json:"code" db:"code" example:"CS01"`
	Name              string   `json:"name" db:"name" example:"Computer Science"`
	SubjectGroupCodes []string `json:"subject_group_ids" db:"subject_group_codes"`
}
