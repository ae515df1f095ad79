package main

import (
	"context"
	"embed"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/priya/internlink/internal/db"
	"github.com/priya/internlink/internal/models"
)

//go:embed fixtures.yaml
var fixturesYAML embed.FS

type fixtures struct {
	Faculty     []facultyFixture    `yaml:"faculty"`
	Internships []internshipFixture `yaml:"internships"`
}

type facultyFixture struct {
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Department  string `yaml:"department"`
	Designation string `yaml:"designation"`
}

type internshipFixture struct {
	Title          string   `yaml:"title"`
	CompanyName    string   `yaml:"company_name"`
	FacultyEmail   string   `yaml:"faculty_email"`
	Description    string   `yaml:"description"`
	Domains        []string `yaml:"domains"`
	Departments    []string `yaml:"departments"`
	DeadlineInDays *int     `yaml:"deadline_in_days"` // relative so fixtures stay evergreen
	Stipend        int      `yaml:"stipend"`
	DurationMonths int      `yaml:"duration_months"`
	Location       string   `yaml:"location"`
	Skills         []string `yaml:"skills"`

	Eligibility *struct {
		Type          string   `yaml:"type"`
		MinCGPA       *float64 `yaml:"min_cgpa"`
		MinPercentage *float64 `yaml:"min_percentage"`
		AllowedYears  []string `yaml:"allowed_years"`
	} `yaml:"eligibility"`
}

func main() {
	data, err := fixturesYAML.ReadFile("fixtures.yaml")
	if err != nil {
		log.Fatal(err)
	}
	var fx fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		log.Fatalf("Bad fixtures file: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	store := db.NewStore(pool)
	now := time.Now().UTC()

	facultyIDs := map[string]uuid.UUID{}
	for _, f := range fx.Faculty {
		hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}

		var id uuid.UUID
		err = pool.QueryRow(ctx, `
			INSERT INTO users (email, password_hash, role, first_name, last_name, department, designation)
			VALUES ($1, $2, 'faculty', $3, $4, $5, $6)
			ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
			RETURNING id
		`, f.Email, string(hash), f.FirstName, f.LastName, f.Department, f.Designation).Scan(&id)
		if err != nil {
			log.Fatalf("Seed faculty %s: %v", f.Email, err)
		}
		facultyIDs[f.Email] = id
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Title", "Company", "Departments", "Deadline", "Status"})

	for _, f := range fx.Internships {
		facultyID, ok := facultyIDs[f.FacultyEmail]
		if !ok {
			log.Fatalf("Internship %q references unknown faculty %s", f.Title, f.FacultyEmail)
		}

		var deadline *time.Time
		deadlineStr := "none"
		if f.DeadlineInDays != nil {
			d := now.AddDate(0, 0, *f.DeadlineInDays)
			deadline = &d
			deadlineStr = d.Format("2006-01-02")
		}

		in := models.Internship{
			Title:          f.Title,
			CompanyName:    f.CompanyName,
			Description:    f.Description,
			Domains:        f.Domains,
			Departments:    f.Departments,
			FirstRoundDate: deadline,
			Stipend:        f.Stipend,
			DurationMonths: f.DurationMonths,
			Location:       f.Location,
			Skills:         f.Skills,
			FacultyID:      facultyID,
		}
		if f.Eligibility != nil {
			in.Eligibility = &models.EligibilityCriteria{
				Type:          f.Eligibility.Type,
				MinCGPA:       f.Eligibility.MinCGPA,
				MinPercentage: f.Eligibility.MinPercentage,
				AllowedYears:  f.Eligibility.AllowedYears,
			}
		}

		status := "created"
		if _, err := store.CreateInternship(ctx, in); err != nil {
			status = "FAILED: " + err.Error()
		}
		t.AppendRow(table.Row{f.Title, f.CompanyName, len(f.Departments), deadlineStr, status})
	}
	t.Render()

	log.Printf("Seeded %d faculty, %d internships", len(fx.Faculty), len(fx.Internships))
}
