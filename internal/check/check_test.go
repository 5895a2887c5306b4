package check

import (
	"errors"
	"testing"

	"github.com/Drommedhar/novalist-sub000/internal/index"
	"github.com/Drommedhar/novalist-sub000/internal/sheet"
)

type mapReader map[string]string

func (m mapReader) Read(path string) (string, error) {
	content, ok := m[path]
	if !ok {
		return "", errors.New("unreadable")
	}
	return content, nil
}

var testScopes = index.Scopes{
	sheet.CategoryCharacter: {"Characters"},
	sheet.CategoryLocation:  {"Locations"},
}

func findIssue(report *Report, code string) (Issue, bool) {
	for _, issue := range report.Issues {
		if issue.Code == code {
			return issue, true
		}
	}
	return Issue{}, false
}

func TestRun_CleanProject(t *testing.T) {
	reader := mapReader{
		"Characters/Anna.md": "## CharacterSheet\nName: Anna\n\n## Relationships\n- Friend: Liam\n",
		"Characters/Liam.md": "## CharacterSheet\nName: Liam\n",
		"Locations/Tower.md": "## LocationSheet\nName: Tower\n",
	}
	files := []index.File{
		{Path: "Characters/Anna.md", Name: "Anna"},
		{Path: "Characters/Liam.md", Name: "Liam"},
		{Path: "Locations/Tower.md", Name: "Tower"},
	}

	report := Run(reader, files, testScopes, Options{})
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", report.Issues)
	}
}

func TestRun_CategoryMismatch(t *testing.T) {
	reader := mapReader{
		"Characters/Tower.md": "## LocationSheet\nName: Tower\n",
	}
	files := []index.File{{Path: "Characters/Tower.md", Name: "Tower"}}

	report := Run(reader, files, testScopes, Options{})
	issue, ok := findIssue(report, "category_mismatch")
	if !ok {
		t.Fatalf("expected a category mismatch, got %+v", report.Issues)
	}
	if issue.Severity != SeverityError || issue.FilePath != "Characters/Tower.md" {
		t.Fatalf("unexpected issue: %+v", issue)
	}
}

func TestRun_MissingSheet(t *testing.T) {
	reader := mapReader{
		"Characters/Notes.md": "Just some prose without a sheet.\n",
	}
	files := []index.File{{Path: "Characters/Notes.md", Name: "Notes"}}

	report := Run(reader, files, testScopes, Options{})
	issue, ok := findIssue(report, "missing_sheet")
	if !ok {
		t.Fatalf("expected a missing sheet warning, got %+v", report.Issues)
	}
	if issue.Severity != SeverityWarn {
		t.Fatalf("unexpected severity: %+v", issue)
	}
}

func TestRun_UnknownRelationTarget(t *testing.T) {
	reader := mapReader{
		"Characters/Anna.md": "## CharacterSheet\nName: Anna\n\n## Relationships\n- Mentor: Nobody Known\n",
	}
	files := []index.File{{Path: "Characters/Anna.md", Name: "Anna"}}

	report := Run(reader, files, testScopes, Options{})
	issue, ok := findIssue(report, "unknown_relation_target")
	if !ok {
		t.Fatalf("expected an unknown relation warning, got %+v", report.Issues)
	}
	if issue.Name != "Anna" {
		t.Fatalf("unexpected issue: %+v", issue)
	}
}

func TestRun_AgeDateCheck(t *testing.T) {
	reader := mapReader{
		"Characters/Anna.md": "## CharacterSheet\nName: Anna\nAge: 1990-04-12\n",
		"Characters/Liam.md": "## CharacterSheet\nName: Liam\nAge: twenty\n",
	}
	files := []index.File{
		{Path: "Characters/Anna.md", Name: "Anna"},
		{Path: "Characters/Liam.md", Name: "Liam"},
	}

	report := Run(reader, files, testScopes, Options{AgeFromDate: true})
	issue, ok := findIssue(report, "unparsable_age_date")
	if !ok {
		t.Fatalf("expected an age date warning, got %+v", report.Issues)
	}
	if issue.Name != "Liam" {
		t.Fatalf("warning should name the bad document: %+v", issue)
	}

	report = Run(reader, files, testScopes, Options{})
	if _, ok := findIssue(report, "unparsable_age_date"); ok {
		t.Fatalf("age check should be off by default")
	}
}

func TestRun_DuplicateNames(t *testing.T) {
	reader := mapReader{
		"Characters/Anna.md": "## CharacterSheet\nName: Anna\n",
		"Locations/anna.md":  "## LocationSheet\nName: Anna\n",
	}
	files := []index.File{
		{Path: "Characters/Anna.md", Name: "Anna"},
		{Path: "Locations/anna.md", Name: "anna"},
	}

	report := Run(reader, files, testScopes, Options{})
	issue, ok := findIssue(report, "duplicate_name")
	if !ok {
		t.Fatalf("expected a duplicate name error, got %+v", report.Issues)
	}
	if issue.Severity != SeverityError {
		t.Fatalf("unexpected severity: %+v", issue)
	}
}

func TestRun_SkipsUnreadableAndOutOfScope(t *testing.T) {
	reader := mapReader{
		"Characters/Anna.md": "## CharacterSheet\nName: Anna\n",
	}
	files := []index.File{
		{Path: "Characters/Anna.md", Name: "Anna"},
		{Path: "Characters/Gone.md", Name: "Gone"},
		{Path: "Scratch/Draft.md", Name: "Draft"},
	}

	report := Run(reader, files, testScopes, Options{})
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", report.Issues)
	}
}
