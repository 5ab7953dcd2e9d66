package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"praxis/internal/questionnaires"
	"praxis/internal/roles"
	"praxis/internal/shared/config"
	"praxis/internal/shared/database"
	"praxis/internal/users"
)

type Seeder struct {
	db  *database.DB
	cfg *config.Config
}

func main() {
	fmt.Println("Starting Praxis database seeder...")

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db, cfg: cfg}
	ctx := context.Background()

	roleIDs, err := seeder.SeedRoles(ctx)
	if err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}
	fmt.Println("Roles seeded")

	adminID, err := seeder.SeedAdminUser(ctx, roleIDs)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	fmt.Println("Admin user seeded")

	if err := seeder.SeedIntakeQuestionnaire(ctx, adminID); err != nil {
		log.Fatalf("Failed to seed intake questionnaire: %v", err)
	}
	fmt.Println("Intake questionnaire seeded")

	fmt.Println("Seeding completed.")
}

// SeedRoles inserts the built-in roles if they are missing. Existing roles
// are left untouched so reruns are safe.
func (s *Seeder) SeedRoles(ctx context.Context) (map[string]string, error) {
	repo := roles.NewRepository(s.db.PostgreSQL)

	builtins := []roles.Role{
		{
			Name:        roles.RoleAdmin,
			Description: "Practice administrator with full access",
			Permissions: datatypes.JSONMap{"manage_users": true, "manage_roles": true, "manage_questionnaires": true, "view_payments": true},
		},
		{
			Name:        roles.RoleTherapist,
			Description: "Therapist with access to appointments and client responses",
			Permissions: datatypes.JSONMap{"view_appointments": true, "view_responses": true},
		},
		{
			Name:        roles.RoleClient,
			Description: "Client who books appointments and fills in questionnaires",
			Permissions: datatypes.JSONMap{"book_appointments": true, "submit_responses": true},
		},
	}

	ids := make(map[string]string, len(builtins))
	for i := range builtins {
		existing, err := repo.GetByName(ctx, builtins[i].Name)
		if err == nil {
			ids[existing.Name] = existing.ID.String()
			continue
		}
		if err := repo.Create(ctx, &builtins[i]); err != nil {
			return nil, fmt.Errorf("create role %s: %w", builtins[i].Name, err)
		}
		ids[builtins[i].Name] = builtins[i].ID.String()
		fmt.Printf("  Created role: %s\n", builtins[i].Name)
	}
	return ids, nil
}

// SeedAdminUser creates the initial administrator account. The password
// comes from SEED_ADMIN_PASSWORD so no default credential ships in code.
func (s *Seeder) SeedAdminUser(ctx context.Context, roleIDs map[string]string) (string, error) {
	repo := users.NewRepository(s.db.PostgreSQL)

	email := getEnvOr("SEED_ADMIN_EMAIL", "admin@praxis.clinic")
	existing, err := repo.GetByEmail(ctx, email)
	if err == nil {
		fmt.Printf("  Admin user already exists: %s\n", email)
		return existing.ID.String(), nil
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		return "", fmt.Errorf("SEED_ADMIN_PASSWORD must be set to create the admin user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.Auth.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash admin password: %w", err)
	}

	roleRepo := roles.NewRepository(s.db.PostgreSQL)
	adminRole, err := roleRepo.GetByName(ctx, roles.RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("load admin role: %w", err)
	}

	admin := &users.User{
		Username:  getEnvOr("SEED_ADMIN_USERNAME", "admin"),
		Email:     email,
		Password:  string(hash),
		RoleID:    adminRole.ID,
		FirstName: "Practice",
		LastName:  "Administrator",
		IsActive:  true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return "", fmt.Errorf("create admin user: %w", err)
	}
	fmt.Printf("  Created admin user: %s\n", email)
	return admin.ID.String(), nil
}

// SeedIntakeQuestionnaire creates a starter intake questionnaire so the
// booking flow is usable immediately after setup.
func (s *Seeder) SeedIntakeQuestionnaire(ctx context.Context, adminID string) error {
	repo := questionnaires.NewRepository(s.db.PostgreSQL)

	existing, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Println("  Questionnaires already present, skipping")
		return nil
	}

	min := 0.0
	max := 10.0
	q := &questionnaires.Questionnaire{
		Title:       "Initial intake",
		Description: "Filled in by new clients before their first session",
		Questions: datatypes.NewJSONSlice([]questionnaires.Question{
			{Text: "What brings you to therapy at this time?", Type: questionnaires.QuestionText, Required: true},
			{Text: "Have you been in therapy before?", Type: questionnaires.QuestionMultipleChoice, Required: true, Options: []string{"Yes", "No"}},
			{Text: "How would you rate your current stress level?", Type: questionnaires.QuestionScale, Required: true, Min: &min, Max: &max},
			{Text: "Which areas would you like to work on?", Type: questionnaires.QuestionCheckbox, Required: false, Options: []string{"Anxiety", "Depression", "Relationships", "Work", "Sleep", "Other"}},
			{Text: "Preferred session frequency", Type: questionnaires.QuestionDropdown, Required: false, Options: []string{"Weekly", "Biweekly", "Monthly"}},
		}),
		IsActive: true,
	}

	creator, err := uuid.Parse(adminID)
	if err != nil {
		return err
	}
	q.CreatedBy = creator

	if err := repo.Create(ctx, q); err != nil {
		return fmt.Errorf("create intake questionnaire: %w", err)
	}
	fmt.Printf("  Created questionnaire: %s\n", q.Title)
	return nil
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
