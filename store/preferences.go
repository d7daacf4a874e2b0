package store

import (
	"context"
	"strconv"

	"github.com/oliverisaac/mynotes/types"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type preference struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// PreferenceStore keeps the two user settings as key/value rows.
type PreferenceStore struct {
	db *gorm.DB
}

func NewPreferenceStore(db *gorm.DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// Load never fails. Missing, unreadable or unknown values fall back to
// their defaults.
func (s *PreferenceStore) Load(ctx context.Context) types.Preferences {
	ret := types.DefaultPreferences()

	rows := []preference{}
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		logrus.Warnf("Loading preferences, using defaults: %v", err)
		return ret
	}

	for _, row := range rows {
		switch row.Key {
		case types.DarkModeKey:
			on, err := strconv.ParseBool(row.Value)
			if err != nil {
				logrus.Warnf("Ignoring stored %s value %q", row.Key, row.Value)
				continue
			}
			ret.DarkMode = on
		case types.AccentColorKey:
			color, ok := types.ParseAccentColor(row.Value)
			if !ok {
				logrus.Warnf("Ignoring stored %s value %q", row.Key, row.Value)
			}
			ret.AccentColor = color
		}
	}

	return ret
}

func (s *PreferenceStore) SetDarkMode(ctx context.Context, on bool) error {
	return s.set(ctx, types.DarkModeKey, strconv.FormatBool(on))
}

func (s *PreferenceStore) SetAccentColor(ctx context.Context, color types.AccentColor) error {
	if !color.Valid() {
		return &types.ValidationError{Field: "accentColor", Message: "unknown accent color " + strconv.Quote(string(color))}
	}
	return s.set(ctx, types.AccentColorKey, string(color))
}

func (s *PreferenceStore) set(ctx context.Context, key, value string) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&preference{Key: key, Value: value}).Error
	if err != nil {
		return &types.PersistenceError{Op: "saving preference " + key, Err: err}
	}
	return nil
}
