package system

import (
	"fmt"

	"github.com/avwray/lifedeck/internal/cli"
)

type MigrateCmd struct{}

type migrator interface {
	Migrate() (int, error)
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	m, ok := ctx.Store.(migrator)
	if !ok {
		return fmt.Errorf("storage backend does not support migrations")
	}

	count, err := m.Migrate()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("Successfully applied %d migration(s).\n", count)
	}

	return nil
}
