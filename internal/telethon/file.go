package telethon

import (
	"fmt"
	"strconv"

	"github.com/nazar220160/TGConvertor/internal/database"
	"github.com/nazar220160/TGConvertor/internal/session"
)

type sessionRow struct {
	DCID          int    `gorm:"column:dc_id;primaryKey"`
	ServerAddress string `gorm:"column:server_address"`
	Port          int    `gorm:"column:port"`
	AuthKey       []byte `gorm:"column:auth_key"`
	TakeoutID     *int64 `gorm:"column:takeout_id"`
}

func (sessionRow) TableName() string { return "sessions" }

type entityRow struct {
	ID    int64  `gorm:"column:id"`
	Phone *int64 `gorm:"column:phone"`
}

func (entityRow) TableName() string { return "entities" }

// FromFile loads a session from a Telethon .session SQLite file. The core
// sessions table has no user identity; a best-effort user id and phone come
// from the entities cache, whose emptiness is normal rather than an error.
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
		session.WithEndpoint(row.ServerAddress, row.Port),
	}
	if row.TakeoutID != nil {
		opts = append(opts, session.WithTakeoutID(*row.TakeoutID))
	}

	var entities []entityRow
	if err := db.Where("id != 0").Limit(1).Find(&entities).Error; err == nil && len(entities) > 0 {
		opts = append(opts, session.WithUserID(entities[0].ID))
		if entities[0].Phone != nil {
			opts = append(opts, session.WithPhone(strconv.FormatInt(*entities[0].Phone, 10)))
		}
	}

	return session.New(row.DCID, row.AuthKey, opts...)
}

// WriteFile creates a fresh Telethon .session file. Only the fields the core
// sessions table defines are written; entities, sent_files and update_state
// stay empty because live client use populates them, not conversion. A
// missing endpoint is resolved from the static per-DC defaults first.
func WriteFile(r *session.Record, path string) error {
	if len(r.AuthKey) != session.AuthKeySize {
		return session.Validationf("auth_key must be %d bytes, got %d",
			session.AuthKeySize, len(r.AuthKey))
	}
	addr, port, err := endpoint(r)
	if err != nil {
		return err
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

		if err := db.Exec("INSERT INTO version (version) VALUES (?)", schemaVersion).Error; err != nil {
			return fmt.Errorf("failed to stamp schema version: %w", err)
		}
		row := sessionRow{
			DCID:          r.DCID,
			ServerAddress: addr,
			Port:          port,
			AuthKey:       r.AuthKey,
			TakeoutID:     r.TakeoutID,
		}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to write sessions row: %w", err)
		}
		return nil
	})
}
