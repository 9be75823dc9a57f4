package seed

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/repo"
	"github.com/Skotchmaster/restaurant/pkg/logging"
)

//go:embed menu.yaml
var DefaultMenu []byte

type File struct {
	MenuItems []models.MenuItem `yaml:"menu_items"`
}

type Indexer interface {
	Index(ctx context.Context, item models.MenuItem) error
}

type Result struct {
	Created int
	Skipped int
	Indexed int
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse menu: %w", err)
	}
	for i, it := range f.MenuItems {
		if strings.TrimSpace(it.Name) == "" {
			return nil, fmt.Errorf("parse menu: item %d has no name", i)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("parse menu: %q has a negative price", it.Name)
		}
	}
	return &f, nil
}

// Run inserts every menu item whose name is not in the database yet. When an
// indexer is given every item in the file is (re)indexed.
func Run(ctx context.Context, r *repo.GormRepo, idx Indexer, data []byte) (*Result, error) {
	l := logging.FromContext(ctx).With("component", "seed")

	f, err := Parse(data)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, it := range f.MenuItems {
		item := it
		item.ID = 0
		created, err := r.EnsureMenuItem(ctx, &item)
		if err != nil {
			return res, fmt.Errorf("seed %q: %w", it.Name, err)
		}
		if created {
			res.Created++
		} else {
			res.Skipped++
		}

		if idx != nil {
			if err := idx.Index(ctx, item); err != nil {
				l.Warn("seed_index_failed", "menu_item_id", item.ID, "error", err)
				continue
			}
			res.Indexed++
		}
	}

	l.Info("seed_success", "created", res.Created, "skipped", res.Skipped, "indexed", res.Indexed)
	return res, nil
}
