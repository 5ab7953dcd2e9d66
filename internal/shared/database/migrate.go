package database

import (
	"gorm.io/gorm"

	"praxis/internal/appointments"
	"praxis/internal/assessments"
	"praxis/internal/payments"
	"praxis/internal/questionnaires"
	"praxis/internal/responses"
	"praxis/internal/roles"
	"praxis/internal/users"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() defaults require the extension
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&roles.Role{},
		&users.User{},
		&appointments.Appointment{},
		&questionnaires.Questionnaire{},
		&responses.QuestionnaireResponse{},
		&payments.Payment{},
		&assessments.UserAssessment{},
	)
}
