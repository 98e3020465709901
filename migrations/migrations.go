// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"
	"spamcheck-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			// Accounts created before the directory sync rule existed get
			// their mirrored entry here.
			ID: "001_backfill_global_contacts",
			Migrate: func(tx *gorm.DB) error {
				var users []models.User
				if err := tx.Find(&users).Error; err != nil {
					return fmt.Errorf("failed to fetch users: %w", err)
				}
				for i := range users {
					if err := models.SyncGlobalContact(tx, &users[i]); err != nil {
						return fmt.Errorf("failed to sync contact for user %d: %w", users[i].ID, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
	}
}

func Run(conn *gorm.DB) error {
	return gormigrate.New(conn, gormigrate.DefaultOptions, List()).Migrate()
}
