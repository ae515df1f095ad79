package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/priya/internlink/internal/db"
	"github.com/priya/internlink/internal/profile"
)

// Prints a completeness audit of every account, most useful after a
// bulk import when many profiles are still half-filled.
func main() {
	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	store := db.NewStore(pool)
	users, err := store.ListUsers(ctx)
	if err != nil {
		log.Fatal(err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Email", "Role", "Department", "Complete", "Missing"})

	incomplete := 0
	for _, u := range users {
		report := profile.CheckCompletion(u, u.Role)

		missing := ""
		if !report.IsComplete {
			incomplete++
			missing = strings.Join(report.MissingFields, ", ")
			if len(missing) > 60 {
				missing = missing[:57] + "..."
			}
		}

		t.AppendRow(table.Row{u.Email, u.Role, u.Department, report.IsComplete, missing})
	}
	t.Render()

	log.Printf("%d of %d profiles incomplete", incomplete, len(users))
}
