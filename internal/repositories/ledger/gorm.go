package ledger

import (
	"context"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	"github.com/KirkDiggler/swn-ship-api/internal/pkg/clock"
)

// EntryModel is the GORM row for a ledger entry
type EntryModel struct {
	ID           string    `gorm:"primaryKey;size:64"`
	ShipID       string    `gorm:"index:idx_ledger_ship_created,priority:1;size:64;not null"`
	Kind         string    `gorm:"size:32;not null"`
	Amount       int64     `gorm:"not null"`
	BalanceAfter int64     `gorm:"not null"`
	GameDate     string    `gorm:"size:10"`
	Note         string    `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"index:idx_ledger_ship_created,priority:2;not null"`
}

// TableName sets the table name for GORM
func (EntryModel) TableName() string {
	return "ledger_entries"
}

// OpenSQLite opens (creating if needed) a SQLite ledger database and
// migrates its schema. Use ":memory:" for a throwaway database.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open ledger database")
	}

	if err := db.AutoMigrate(&EntryModel{}); err != nil {
		return nil, errors.Wrapf(err, "failed to migrate ledger database")
	}

	return db, nil
}

// GormConfig contains configuration for the GORM ledger repository
type GormConfig struct {
	DB    *gorm.DB
	Clock clock.Clock
}

// Validate validates the GormConfig
func (cfg *GormConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

type gormRepository struct {
	db    *gorm.DB
	clock clock.Clock
}

// NewGorm creates a new GORM-backed ledger repository
func NewGorm(cfg *GormConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &gormRepository{db: cfg.DB, clock: c}, nil
}

var _ Repository = (*gormRepository)(nil)

func (r *gormRepository) Record(ctx context.Context, input RecordInput) (*RecordOutput, error) {
	e := input.Entry
	if e == nil {
		return nil, errors.InvalidArgument("entry cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", e.ID, vb)
	errors.ValidateRequired("ship_id", e.ShipID, vb)
	errors.ValidateEnum("kind", string(e.Kind), []string{
		string(KindPayment), string(KindMaintenance), string(KindRefuel), string(KindResupply),
	}, vb)
	errors.ValidateNonNegative("amount", e.Amount, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	stored := *e
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.clock.Now()
	}

	model := toModel(&stored)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("ledger entry %s already exists", stored.ID)
		}
		return nil, errors.Wrapf(err, "failed to record ledger entry")
	}

	return &RecordOutput{Entry: &stored}, nil
}

func (r *gormRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.ShipID == "" {
		return nil, errors.InvalidArgument("ship ID cannot be empty")
	}

	query := r.db.WithContext(ctx).Where("ship_id = ?", input.ShipID)
	if input.Kind != "" {
		query = query.Where("kind = ?", string(input.Kind))
	}
	query = query.Order("created_at DESC").Order("id DESC")
	if input.Limit > 0 {
		query = query.Limit(input.Limit)
	}

	var models []EntryModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list ledger entries")
	}

	out := &ListOutput{Entries: make([]*Entry, len(models))}
	for i := range models {
		out.Entries[i] = fromModel(&models[i])
		out.Total += models[i].Amount
	}

	return out, nil
}

func toModel(e *Entry) *EntryModel {
	return &EntryModel{
		ID:           e.ID,
		ShipID:       e.ShipID,
		Kind:         string(e.Kind),
		Amount:       e.Amount,
		BalanceAfter: e.BalanceAfter,
		GameDate:     e.GameDate,
		Note:         e.Note,
		CreatedAt:    e.CreatedAt,
	}
}

func fromModel(m *EntryModel) *Entry {
	return &Entry{
		ID:           m.ID,
		ShipID:       m.ShipID,
		Kind:         Kind(m.Kind),
		Amount:       m.Amount,
		BalanceAfter: m.BalanceAfter,
		GameDate:     m.GameDate,
		Note:         m.Note,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite reports constraint failures as plain text
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
