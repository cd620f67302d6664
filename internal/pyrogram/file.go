package pyrogram

import (
	"fmt"
	"time"

	"github.com/nazar220160/TGConvertor/internal/database"
	"github.com/nazar220160/TGConvertor/internal/session"
)

type sessionRow struct {
	DCID     int    `gorm:"column:dc_id;primaryKey"`
	APIID    *int32 `gorm:"column:api_id"`
	TestMode bool   `gorm:"column:test_mode"`
	AuthKey  []byte `gorm:"column:auth_key"`
	Date     int64  `gorm:"column:date"`
	UserID   int64  `gorm:"column:user_id"`
	IsBot    bool   `gorm:"column:is_bot"`
}

func (sessionRow) TableName() string { return "sessions" }

// FromFile loads a session from a Pyrogram .session SQLite file. The file's
// schema must match the expected table and column sets exactly.
func FromFile(path string) (*session.Record, error) {
	db, err := database.OpenExisting(path)
	if err != nil {
		return nil, err
	}
	defer database.Close(db)

	if err := database.ValidateSchema(db, expectedTables); err != nil {
		return nil, err
	}

	var row sessionRow
	if err := db.Take(&row).Error; err != nil {
		return nil, session.Validationf("session file has no sessions row: %v", err)
	}

	opts := []session.Option{
		session.WithTestMode(row.TestMode),
		session.WithBot(row.IsBot),
	}
	if row.UserID != 0 {
		opts = append(opts, session.WithUserID(row.UserID))
	}
	if row.APIID != nil && *row.APIID != 0 {
		opts = append(opts, session.WithAPIID(*row.APIID))
	}
	return session.New(row.DCID, row.AuthKey, opts...)
}

// WriteFile creates a fresh Pyrogram .session file: full schema, one sessions
// row, schema-version stamp. The peers table stays empty; it is populated by
// live client use, not by conversion. An unset user id degrades to the zero
// sentinel this format uses.
func WriteFile(r *session.Record, path string) error {
	if len(r.AuthKey) != session.AuthKeySize {
		return session.Validationf("auth_key must be %d bytes, got %d",
			session.AuthKeySize, len(r.AuthKey))
	}

	return database.WriteAtomic(path, func(tmp string) error {
		db, err := database.Open(tmp)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.ExecAll(db, schemaDDL); err != nil {
			return err
		}

		row := sessionRow{
			DCID:     r.DCID,
			APIID:    r.APIID,
			TestMode: r.TestMode,
			AuthKey:  r.AuthKey,
			Date:     time.Now().Unix(),
			UserID:   r.UserIDOrZero(),
			IsBot:    r.IsBot,
		}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to write sessions row: %w", err)
		}
		if err := db.Exec("INSERT INTO version (number) VALUES (?)", schemaVersion).Error; err != nil {
			return fmt.Errorf("failed to stamp schema version: %w", err)
		}
		return nil
	})
}
