// Package check runs consistency checks across a project's entity
// documents: sheets whose heading disagrees with their folder, relationship
// targets that no document defines, age dates that cannot be parsed, and
// names claimed by more than one document.
package check

import (
	"sort"
	"strings"

	"github.com/Drommedhar/novalist-sub000/internal/index"
	"github.com/Drommedhar/novalist-sub000/internal/resolve"
	"github.com/Drommedhar/novalist-sub000/internal/sheet"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeCategoryMismatch  = "category_mismatch"
	codeUnknownRelation   = "unknown_relation_target"
	codeUnparsableAgeDate = "unparsable_age_date"
	codeDuplicateName     = "duplicate_name"
	codeMissingSheet      = "missing_sheet"
)

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	Name     string
	FilePath string
}

type Report struct {
	Issues []Issue
}

// Reader supplies document contents; the vault implements it.
type Reader interface {
	Read(path string) (string, error)
}

type Options struct {
	// AgeFromDate enables the age-date parse check.
	AgeFromDate bool
}

// Run reads every scoped document and reports the issues it finds. Files
// that cannot be read are skipped, matching the index builder's behaviour.
func Run(reader Reader, files []index.File, scopes index.Scopes, opts Options) *Report {
	issues := make([]Issue, 0)

	type parsed struct {
		file  index.File
		sheet *sheet.EntitySheet
	}

	var sheets []parsed
	byName := make(map[string][]index.File)
	for _, f := range files {
		if _, ok := scopes.Category(f.Path); !ok {
			continue
		}
		raw, err := reader.Read(f.Path)
		if err != nil {
			continue
		}
		sheets = append(sheets, parsed{file: f, sheet: sheet.Parse(raw)})
		key := strings.ToLower(f.Name)
		byName[key] = append(byName[key], f)
	}

	for _, p := range sheets {
		issues = append(issues, checkCategory(p.file, p.sheet, scopes)...)
		issues = append(issues, checkRelationships(p.file, p.sheet, byName)...)
		if opts.AgeFromDate {
			issues = append(issues, checkAgeDate(p.file, p.sheet)...)
		}
	}
	issues = append(issues, checkDuplicates(byName)...)

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Severity != issues[j].Severity {
			return issues[i].Severity == SeverityError
		}
		return issues[i].FilePath < issues[j].FilePath
	})
	return &Report{Issues: issues}
}

func checkCategory(f index.File, s *sheet.EntitySheet, scopes index.Scopes) []Issue {
	folderCategory, ok := scopes.Category(f.Path)
	if !ok {
		return nil
	}
	if s.Category == sheet.CategoryUnknown {
		return []Issue{{
			Severity: SeverityWarn,
			Code:     codeMissingSheet,
			Message:  "document has no entity sheet heading",
			Name:     f.Name,
			FilePath: f.Path,
		}}
	}
	if s.Category != folderCategory {
		return []Issue{{
			Severity: SeverityError,
			Code:     codeCategoryMismatch,
			Message:  "sheet declares " + string(s.Category) + " but lives in a " + string(folderCategory) + " folder",
			Name:     f.Name,
			FilePath: f.Path,
		}}
	}
	return nil
}

func checkRelationships(f index.File, s *sheet.EntitySheet, byName map[string][]index.File) []Issue {
	var issues []Issue
	for _, rel := range s.Relationships {
		if rel.Target == "" {
			continue
		}
		if _, ok := byName[strings.ToLower(rel.Target)]; ok {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeUnknownRelation,
			Message:  "relationship target " + rel.Target + " has no document",
			Name:     f.Name,
			FilePath: f.Path,
		})
	}
	return issues
}

func checkAgeDate(f index.File, s *sheet.EntitySheet) []Issue {
	value := s.Fields.Value("Age")
	if value == "" {
		return nil
	}
	if _, ok := resolve.ParseDate(value); ok {
		return nil
	}
	return []Issue{{
		Severity: SeverityWarn,
		Code:     codeUnparsableAgeDate,
		Message:  "age value " + value + " is not a recognised date",
		Name:     f.Name,
		FilePath: f.Path,
	}}
}

func checkDuplicates(byName map[string][]index.File) []Issue {
	var issues []Issue
	for _, files := range byName {
		if len(files) < 2 {
			continue
		}
		paths := make([]string, 0, len(files))
		for _, f := range files {
			paths = append(paths, f.Path)
		}
		sort.Strings(paths)
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     codeDuplicateName,
			Message:  "name claimed by " + strings.Join(paths, ", "),
			Name:     files[0].Name,
			FilePath: paths[0],
		})
	}
	return issues
}
