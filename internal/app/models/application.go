package models

import "time"

// ExtraDocument is one candidate-supplied supporting document group: a free
// text description plus the files attached for it.
type ExtraDocument struct {
	Description string   `json:"description"`
	Files       []string `json:"files"`
}

// Application defines the application model based on the 'applications' table.
// One row is one candidate's submitted admissions form plus its processing
// status. The application code is assigned once at submission and never
// changes; the owning user never changes either.
type Application struct {
	ID              int64             `json:"id" db:"id"`
	UserID          int64             `json:"userId" db:"user_id"`
	ApplicationCode string            `json:"applicationCode" db:"application_code" example:"HS-A1B2C3D4"`
	Status          ApplicationStatus `json:"status" db:"status" example:"PENDING"`

	// Applicant profile
	Fullname      string `json:"fullname" db:"fullname"`
	Gender        string `json:"gender" db:"gender"`
	DOB           string `json:"dob" db:"dob"`
	IDNumber      string `json:"idNumber" db:"id_number"`
	Province      string `json:"province" db:"province"`
	District      string `json:"district" db:"district"`
	Ward          string `json:"ward" db:"ward"`
	AddressDetail string `json:"addressDetail" db:"address_detail"`

	// Subject scores: three mandatory, up to six optional
	MathScore           float64  `json:"mathScore" db:"math_score"`
	LiteratureScore     float64  `json:"literatureScore" db:"literature_score"`
	EnglishScore        float64  `json:"englishScore" db:"english_score"`
	PhysicsScore        *float64 `json:"physicsScore,omitempty" db:"physics_score"`
	ChemistryScore      *float64 `json:"chemistryScore,omitempty" db:"chemistry_score"`
	BiologyScore        *float64 `json:"biologyScore,omitempty" db:"biology_score"`
	HistoryScore        *float64 `json:"historyScore,omitempty" db:"history_score"`
	GeographyScore      *float64 `json:"geographyScore,omitempty" db:"geography_score"`
	CivicEducationScore *float64 `json:"civicEducationScore,omitempty" db:"civic_education_score"`

	// Choices
	SchoolCode       string  `json:"school" db:"school_code" example:"BKHN"`
	MajorCode        string  `json:"major" db:"major_code" example:"CS01"`
	SubjectGroupCode string  `json:"subjectGroup" db:"subject_group_code" example:"A00"`
	TotalScore       float64 `json:"totalScore" db:"total_score"`

	// Document references (stored as opaque strings / file references)
	CCCDFront      string          `json:"cccdFront" db:"cccd_front"`
	CCCDBack       string          `json:"cccdBack" db:"cccd_back"`
	Transcript     []string        `json:"transcript" db:"transcript"`
	Priority       *string         `json:"priority,omitempty" db:"priority"`
	PriorityProof  *string         `json:"priorityProof,omitempty" db:"priority_proof"`
	ExtraDocuments []ExtraDocument `json:"extraDocuments,omitempty" db:"extra_documents"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Denormalized reference names attached by the enrichment join.
	// Nil when the referenced school or major no longer exists.
	SchoolName *string `json:"schoolName,omitempty"`
	MajorName  *string `json:"majorName,omitempty"`
}
