package main

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/priya/internlink/internal/taxonomy"
)

func TestFixturesDecodeCleanly(t *testing.T) {
	data, err := fixturesYAML.ReadFile("fixtures.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var fx fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		t.Fatalf("fixtures.yaml does not parse: %v", err)
	}
	if len(fx.Faculty) == 0 || len(fx.Internships) == 0 {
		t.Fatal("fixtures must seed at least one faculty member and one internship")
	}

	emails := map[string]bool{}
	for _, f := range fx.Faculty {
		if f.Email == "" || f.Password == "" {
			t.Fatalf("faculty fixture %q missing credentials", f.Email)
		}
		emails[f.Email] = true
	}

	for _, in := range fx.Internships {
		if !emails[in.FacultyEmail] {
			t.Fatalf("internship %q references unknown faculty %q", in.Title, in.FacultyEmail)
		}
		for _, dept := range in.Departments {
			if !taxonomy.IsKnownDepartment(dept) {
				t.Fatalf("internship %q lists unknown department %q", in.Title, dept)
			}
		}
	}
}
