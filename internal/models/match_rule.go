package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule assigns a transaction category to transactions whose note
// matches a glob pattern, e.g. "REWE*".
type MatchRule struct {
	DefaultModel
	Priority   uint
	Match      string
	CategoryID uuid.UUID
	Category   TransactionCategory `json:"-"`
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	return nil
}

// CategoryForNote returns the category ID of the first match rule whose
// pattern matches the note. Rules are checked by ascending priority.
// The second return value reports whether any rule matched.
func CategoryForNote(db *gorm.DB, note string) (uuid.UUID, bool, error) {
	var rules []MatchRule

	err := db.Order("priority ASC").Find(&rules).Error
	if err != nil {
		return uuid.Nil, false, err
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, note) {
			return rule.CategoryID, true, nil
		}
	}

	return uuid.Nil, false, nil
}
