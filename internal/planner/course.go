package planner

import (
	"fmt"
	"sort"
	"strings"
)

// Course represents one catalog entry. Courses are loaded once per planning
// session and are immutable for the lifetime of that session.
type Course struct {
	Code         string   `json:"code"`
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Credits      int      `json:"credits"`
	Difficulty   float64  `json:"difficulty"`   // 0.0–5.0
	SuccessRate  float64  `json:"successRate"`  // 0.0–1.0
	OfferedTerms []string `json:"offeredTerms,omitempty"`
	Foundation   bool     `json:"foundation"` // curriculum-designer hint, not computed
}

// Catalog is a read-only lookup of course metadata keyed by course code.
type Catalog struct {
	courses map[string]Course
}

// NewCatalog builds a catalog from a list of courses. Course codes must be
// unique and non-empty, and credits must be positive.
func NewCatalog(courses []Course) (*Catalog, error) {
	byCode := make(map[string]Course, len(courses))
	for _, course := range courses {
		code := strings.TrimSpace(course.Code)
		if code == "" {
			return nil, fmt.Errorf("catalog: course with empty code (title %q)", course.Title)
		}
		if _, exists := byCode[code]; exists {
			return nil, fmt.Errorf("catalog: duplicate course code %s", code)
		}
		if course.Credits <= 0 {
			return nil, fmt.Errorf("catalog: course %s has non-positive credits %d", code, course.Credits)
		}
		course.Code = code
		byCode[code] = course
	}
	return &Catalog{courses: byCode}, nil
}

// Get returns the course with the given code.
func (c *Catalog) Get(code string) (Course, bool) {
	course, ok := c.courses[code]
	return course, ok
}

// Has reports whether the catalog contains the given course code.
func (c *Catalog) Has(code string) bool {
	_, ok := c.courses[code]
	return ok
}

// Len returns the number of courses in the catalog.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Codes returns all course codes in lexicographic order.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.courses))
	for code := range c.courses {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Courses returns all courses ordered by code.
func (c *Catalog) Courses() []Course {
	courses := make([]Course, 0, len(c.courses))
	for _, code := range c.Codes() {
		courses = append(courses, c.courses[code])
	}
	return courses
}
