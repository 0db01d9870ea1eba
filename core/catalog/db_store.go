package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"backpack-manager/core/database"
	"backpack-manager/core/steamapi"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

const catalogTable = "catalog_items"

// ErrSchemaDrift is returned when the catalog table exists but lacks expected columns.
var ErrSchemaDrift = errors.New("catalog table schema drift")

// catalogRow is one schema entry in the catalog_items table.
type catalogRow struct {
	Defindex    int       `gorm:"column:defindex;primaryKey;autoIncrement:false"`
	Position    int       `gorm:"column:position;index"`
	Name        string    `gorm:"column:name"`
	ItemName    string    `gorm:"column:item_name"`
	ProperName  bool      `gorm:"column:proper_name"`
	ItemSlot    string    `gorm:"column:item_slot"`
	ItemQuality int       `gorm:"column:item_quality"`
	Classes     string    `gorm:"column:classes"`
	FetchedAt   time.Time `gorm:"column:fetched_at"`
}

func (catalogRow) TableName() string {
	return catalogTable
}

var catalogColumns = []string{
	"defindex", "position", "name", "item_name", "proper_name",
	"item_slot", "item_quality", "classes", "fetched_at",
}

// DBStore caches the snapshot in the catalog_items table, one row per schema entry.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a store on the given connection.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// Load reads every row in catalog order. A missing or empty table is a cache miss.
func (s *DBStore) Load(ctx context.Context) (*Snapshot, error) {
	cols, err := database.GetTableColumns(s.db.WithContext(ctx), catalogTable)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, ErrNotCached
	}

	present := lo.SliceToMap(cols, func(c database.ColumnInfo) (string, struct{}) { return c.Field, struct{}{} })
	missing := lo.Filter(catalogColumns, func(name string, _ int) bool {
		_, ok := present[name]
		return !ok
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrSchemaDrift, strings.Join(missing, ", "))
	}

	var rows []catalogRow
	if err := s.db.WithContext(ctx).Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", catalogTable, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotCached
	}

	snap := &Snapshot{
		Items:     make([]steamapi.SchemaItem, len(rows)),
		FetchedAt: rows[0].FetchedAt,
	}
	for i, r := range rows {
		snap.Items[i] = r.toSchemaItem()
	}
	return snap, nil
}

// Save replaces the table contents in one transaction, creating the table if needed.
func (s *DBStore) Save(ctx context.Context, snap *Snapshot) error {
	rows := make([]catalogRow, 0, len(snap.Items))
	seen := make(map[int]struct{}, len(snap.Items))
	for _, item := range snap.Items {
		if _, ok := seen[item.Defindex]; ok {
			continue
		}
		seen[item.Defindex] = struct{}{}
		rows = append(rows, newCatalogRow(item, len(rows), snap.FetchedAt))
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(&catalogRow{}); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", catalogTable, err)
		}
		if err := tx.Where("1 = 1").Delete(&catalogRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", catalogTable, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 200).Error; err != nil {
			return fmt.Errorf("failed to insert into %s: %w", catalogTable, err)
		}
		return nil
	})
}

// Clear drops the table.
func (s *DBStore) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Migrator().DropTable(&catalogRow{}); err != nil {
		return fmt.Errorf("failed to drop %s: %w", catalogTable, err)
	}
	return nil
}

func newCatalogRow(item steamapi.SchemaItem, position int, fetchedAt time.Time) catalogRow {
	return catalogRow{
		Defindex:    item.Defindex,
		Position:    position,
		Name:        item.Name,
		ItemName:    item.ItemName,
		ProperName:  item.ProperName,
		ItemSlot:    item.ItemSlot,
		ItemQuality: item.ItemQuality,
		Classes:     strings.Join(item.UsedByClasses, ","),
		FetchedAt:   fetchedAt,
	}
}

func (r catalogRow) toSchemaItem() steamapi.SchemaItem {
	var classes []string
	if r.Classes != "" {
		classes = strings.Split(r.Classes, ",")
	}
	return steamapi.SchemaItem{
		Name:          r.Name,
		Defindex:      r.Defindex,
		ItemName:      r.ItemName,
		ProperName:    r.ProperName,
		ItemSlot:      r.ItemSlot,
		ItemQuality:   r.ItemQuality,
		UsedByClasses: classes,
	}
}
