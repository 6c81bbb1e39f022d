package models

// SubjectCombination defines a subject-combination reference record based on
// the 'subject_combinations' table, e.g. A00 = math/physics/chemistry.
type SubjectCombination struct {
	Code         string   `json:"code" db:"code" example:"A00"`
	Name         string   `json:"name" db:"name" example:"Toán, Lý, Hóa"`
	SubjectCodes []string `json:"subjects" db:"subject_codes"`
}
