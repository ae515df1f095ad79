// Package taxonomy holds the authoritative mapping from academic
// departments to their canonical subject domains. Every call site that
// needs department/domain knowledge imports this one table — the
// matcher and the visibility filter must never disagree on its content.
package taxonomy

import (
	"sort"
	"strings"
)

// DeptArtificialIntelligence is special-cased by the matching rules:
// AI-flavored domain strings belong to it exclusively.
const DeptArtificialIntelligence = "Artificial Intelligence"

// DepartmentDomains maps each department to its canonical domain names.
// Computer Science deliberately does not list "Artificial Intelligence"
// or "Machine Learning": those terms route to the AI department only.
var DepartmentDomains = map[string][]string{
	"Computer Science": {
		"Algorithms & Data Structures", "Software Development", "Database Systems",
		"Operating Systems", "Computer Networks", "Cybersecurity", "Cloud Computing",
		"Data Science", "Computer Graphics & AR/VR", "Distributed Systems",
		"Theory of Computation",
	},
	"Information Technology": {
		"Web Development", "Mobile App Development", "Software Engineering",
		"Information Security", "Cloud & DevOps", "Big Data Analytics",
		"Database Management", "IT Infrastructure & Networking",
		"E-commerce & ERP Systems", "Human-Computer Interaction",
	},
	"Electrical Engineering": {
		"Power Systems", "Electrical Machines", "Control Systems",
		"Power Electronics & Drives", "Renewable Energy Systems",
		"High Voltage Engineering", "Smart Grid & Energy Management",
		"Microgrids & Distributed Generation", "Instrumentation & Measurement",
		"Electromagnetics",
	},
	"Electronics and Telecommunication": {
		"VLSI Design", "Embedded Systems", "Digital Signal Processing (DSP)",
		"Control Systems", "Communication Systems (Wireless, Optical, Satellite)",
		"Antennas & Microwave Engineering", "Internet of Things (IoT)",
		"Robotics & Automation", "Nanoelectronics", "Power Electronics",
	},
	"Mechanical Engineering": {
		"Design Engineering", "Thermal Engineering", "Manufacturing & Production",
		"Mechatronics", "CAD/CAM & Robotics", "Fluid Mechanics & Hydraulics",
		"Automotive Engineering", "Aerospace Engineering",
		"Energy Systems & Power Plants", "Industrial Engineering",
	},
	"Civil Engineering": {
		"Structural Engineering", "Geotechnical Engineering", "Transportation Engineering",
		"Environmental Engineering", "Construction Management", "Water Resources Engineering",
		"Surveying & Geoinformatics", "Coastal & Offshore Engineering",
		"Urban Planning & Smart Cities", "Earthquake Engineering",
	},
	DeptArtificialIntelligence: {
		"Machine Learning", "Deep Learning", "Natural Language Processing (NLP)",
		"Computer Vision", "Reinforcement Learning", "Neural Networks",
		"AI in Robotics", "Explainable AI", "AI in Healthcare / Finance / IoT",
		"Data Mining & Knowledge Discovery",
	},
}

// Departments returns the known department names in sorted order.
func Departments() []string {
	names := make([]string, 0, len(DepartmentDomains))
	for name := range DepartmentDomains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DomainsFor returns the canonical domains for a department, or nil for
// an unknown department name.
func DomainsFor(department string) []string {
	return DepartmentDomains[department]
}

// IsKnownDepartment reports whether the department exists in the table.
func IsKnownDepartment(department string) bool {
	_, ok := DepartmentDomains[department]
	return ok
}

// aiTerms are domain fragments that bind a string to the Artificial
// Intelligence department exclusively. "ai" and "ml" are matched by
// equality only — containment would misfire on words like "email".
var aiTerms = []struct {
	term       string
	exactMatch bool
}{
	{"artificial intelligence", false},
	{"ai", true},
	{"machine learning", false},
	{"ml", true},
	{"deep learning", false},
	{"neural network", false},
	{"computer vision", false},
	{"natural language processing", false},
	{"nlp", false},
}

// IsAITerm reports whether a normalized (lowercased, trimmed) domain
// string carries an AI/ML term.
func IsAITerm(normalized string) bool {
	for _, t := range aiTerms {
		if t.exactMatch {
			if normalized == t.term {
				return true
			}
		} else if strings.Contains(normalized, t.term) {
			return true
		}
	}
	return false
}
