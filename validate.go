package cardxlsx

import "fmt"

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // Render will fail
	SeverityWarning                 // Render succeeds but output may surprise
)

// ValidationIssue represents a single problem found in a card or its preferences.
type ValidationIssue struct {
	Severity Severity
	Where    string
	Message  string
}

// String formats the issue as "[ERROR] checklists[0]: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	return fmt.Sprintf("[%s] %s: %s", sev, v.Where, v.Message)
}

// HasErrors reports whether any issue is error severity.
func HasErrors(issues []ValidationIssue) bool {
	for _, is := range issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate checks a parsed card against prefs without rendering it.
// Parse errors are already reported by ParseCard; this finds the things that
// render silently as blanks or skipped rows.
func Validate(card *Card, prefs *Preferences) []ValidationIssue {
	var issues []ValidationIssue
	issues = append(issues, validatePreferences(prefs)...)
	issues = append(issues, validateHeader(card, prefs)...)
	issues = append(issues, validateChecklists(card)...)
	issues = append(issues, validateActions(card)...)
	return issues
}

func validatePreferences(prefs *Preferences) []ValidationIssue {
	var issues []ValidationIssue
	if err := prefs.Validate(); err != nil {
		issues = append(issues, ValidationIssue{Severity: SeverityError, Where: "preferences", Message: err.Error()})
	}
	return issues
}

func validateHeader(card *Card, prefs *Preferences) []ValidationIssue {
	var issues []ValidationIssue
	if card.Name == "" {
		issues = append(issues, ValidationIssue{Severity: SeverityWarning, Where: "name", Message: "card name is empty"})
	}
	if _, ok := prefs.ListName(card.ListID); !ok {
		issues = append(issues, ValidationIssue{
			Severity: SeverityWarning,
			Where:    "idList",
			Message:  fmt.Sprintf("list %q has no entry in lists; the list line stays blank", card.ListID),
		})
	}
	for i, l := range card.Labels {
		if l.Name == "" {
			issues = append(issues, ValidationIssue{
				Severity: SeverityWarning,
				Where:    fmt.Sprintf("labels[%d]", i),
				Message:  "label has no name and is not shown",
			})
		}
	}
	return issues
}

func validateChecklists(card *Card) []ValidationIssue {
	var issues []ValidationIssue
	for i, cl := range card.Checklists {
		where := fmt.Sprintf("checklists[%d]", i)
		if cl.Name == "" {
			issues = append(issues, ValidationIssue{Severity: SeverityWarning, Where: where, Message: "checklist has no name and is skipped"})
			continue
		}
		for j, it := range cl.Items {
			if it.State != "complete" && it.State != "incomplete" {
				issues = append(issues, ValidationIssue{
					Severity: SeverityWarning,
					Where:    fmt.Sprintf("%s.checkItems[%d]", where, j),
					Message:  fmt.Sprintf("unknown state %q is shown as incomplete", it.State),
				})
			}
		}
	}
	return issues
}

func validateActions(card *Card) []ValidationIssue {
	var issues []ValidationIssue
	for i, a := range card.Actions {
		if a.IsComment() && a.Text == "" {
			issues = append(issues, ValidationIssue{
				Severity: SeverityWarning,
				Where:    fmt.Sprintf("actions[%d]", i),
				Message:  "comment has no text",
			})
		}
	}
	return issues
}
