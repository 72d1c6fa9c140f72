package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Eloura74/Backbone/pkg/models"
)

// Rules is the intake validation policy, populated from config at startup.
type Rules struct {
	MaxContentLen  int
	MaxDecisionLen int
}

var rules Rules

func SetRules(r Rules) { rules = r }

// ValidateItem checks an inbox item before it enters the store.
func ValidateItem(item models.InboxItem) error {
	var errs []string
	if strings.TrimSpace(item.Content) == "" {
		errs = append(errs, "content is required")
	}
	if rules.MaxContentLen > 0 && len(item.Content) > rules.MaxContentLen {
		errs = append(errs, fmt.Sprintf("content too long: %d > %d", len(item.Content), rules.MaxContentLen))
	}
	if !validSource(item.Source) {
		errs = append(errs, fmt.Sprintf("invalid source: %q", item.Source))
	}
	if !validCategory(item.Category) {
		errs = append(errs, fmt.Sprintf("invalid category: %q", item.Category))
	}
	if item.Status != "" && item.Status != models.StatusPending && item.Status != models.StatusArchived {
		errs = append(errs, fmt.Sprintf("invalid status: %q", item.Status))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// ValidateDecision checks the decision text of a process request or a
// manually created memory trace.
func ValidateDecision(decision string) error {
	if strings.TrimSpace(decision) == "" {
		return errors.New("decision is required")
	}
	if rules.MaxDecisionLen > 0 && len(decision) > rules.MaxDecisionLen {
		return fmt.Errorf("decision too long: %d > %d", len(decision), rules.MaxDecisionLen)
	}
	return nil
}

func validSource(s models.Source) bool {
	for _, v := range models.Sources {
		if s == v {
			return true
		}
	}
	return false
}

func validCategory(c models.Category) bool {
	for _, v := range models.Categories {
		if c == v {
			return true
		}
	}
	return false
}
