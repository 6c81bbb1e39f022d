package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/longvh/admissions/internal/app/models"
)

// school is one seeded school with its majors.
type school struct {
	code   string
	name   string
	majors []major
}

type major struct {
	code   string
	name   string
	groups []string
}

type combination struct {
	code     string
	name     string
	subjects []string
}

var defaultCombinations = []combination{
	{"A00", "Toán, Vật lý, Hóa học", []string{"math", "physics", "chemistry"}},
	{"A01", "Toán, Vật lý, Tiếng Anh", []string{"math", "physics", "english"}},
	{"B00", "Toán, Hóa học, Sinh học", []string{"math", "chemistry", "biology"}},
	{"C00", "Ngữ văn, Lịch sử, Địa lý", []string{"literature", "history", "geography"}},
	{"D01", "Toán, Ngữ văn, Tiếng Anh", []string{"math", "literature", "english"}},
}

var defaultSchools = []school{
	{
		code: "BKHN", name: "Đại học Bách khoa Hà Nội",
		majors: []major{
			{"CS01", "Khoa học Máy tính", []string{"A00", "A01"}},
			{"EE01", "Kỹ thuật Điện", []string{"A00", "A01"}},
		},
	},
	{
		code: "NEU", name: "Đại học Kinh tế Quốc dân",
		majors: []major{
			{"KT01", "Kinh tế", []string{"A00", "A01", "D01"}},
			{"QT01", "Quản trị Kinh doanh", []string{"A01", "D01"}},
		},
	},
	{
		code: "HUS", name: "Đại học Khoa học Tự nhiên",
		majors: []major{
			{"HH01", "Hóa học", []string{"A00", "B00"}},
			{"SH01", "Sinh học", []string{"B00"}},
		},
	},
}

// CreateDefaultData seeds reference data (subject combinations, schools,
// majors) and the default admin user. Every insert is idempotent, so this
// runs on each startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (schools, majors, subject combinations)...")
	var finalErr error

	for _, c := range defaultCombinations {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO subject_combinations (code, name, subject_codes) VALUES ($1, $2, $3)
			 ON CONFLICT (code) DO NOTHING`,
			c.code, c.name, c.subjects)
		if err != nil {
			lgr.Error().Err(err).Str("code", c.code).Msg("Error seeding subject combination")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, s := range defaultSchools {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO schools (code, name) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`,
			s.code, s.name)
		if err != nil {
			lgr.Error().Err(err).Str("code", s.code).Msg("Error seeding school")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		for _, m := range s.majors {
			_, err := dbPool.Exec(ctx,
				`INSERT INTO school_majors (school_code, code, name, subject_group_codes) VALUES ($1, $2, $3, $4)
				 ON CONFLICT (school_code, code) DO NOTHING`,
				s.code, m.code, m.name, m.groups)
			if err != nil {
				lgr.Error().Err(err).Str("school", s.code).Str("major", m.code).Msg("Error seeding major")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// Default admin identity. Login happens on the external identity
	// collaborator; this row only anchors the admin's identity facts.
	_, err := dbPool.Exec(ctx,
		`INSERT INTO users (email, full_name, role) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`,
		"admin@admissions.local", "Admissions Admin", string(appModels.RoleAdmin))
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding default admin user")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}
