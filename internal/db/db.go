package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound error = errors.New("record not found")

// PostgresDB is a thin gorm wrapper over the notification store.
type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &PostgresDB{
		DB: gormDB,
	}, nil
}

func (p *PostgresDB) MigrateTable(tbl ...any) error {
	if err := p.DB.AutoMigrate(tbl...); err != nil {
		return fmt.Errorf("migrate table: %w", err)
	}
	return nil
}

// SaveToTable inserts records, a pointer to a slice of models.
func (p *PostgresDB) SaveToTable(ctx context.Context, records any) error {
	slice, err := recordSlice(records)
	if err != nil {
		return err
	}
	if slice.Len() == 0 {
		return nil
	}

	if err := p.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

// SeedTable inserts records only when their table is still empty.
func (p *PostgresDB) SeedTable(ctx context.Context, records any) error {
	slice, err := recordSlice(records)
	if err != nil {
		return err
	}
	if slice.Len() == 0 {
		return nil
	}

	var count int64
	model := slice.Index(0).Addr().Interface()
	if err := p.DB.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := p.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

func (p *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	err := p.DB.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", column), value).
		First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetAllOrderedBy loads every row whose column is one of value into entity,
// sorted by the order clause when one is given.
func (p *PostgresDB) GetAllOrderedBy(ctx context.Context, column string, value any, order string, entity any) error {
	query := p.DB.WithContext(ctx).
		Where(fmt.Sprintf("%s IN ?", column), value)
	if order != "" {
		query = query.Order(order)
	}
	if err := query.Find(entity).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", column, err)
	}
	return nil
}

func recordSlice(records any) (reflect.Value, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return reflect.Value{}, fmt.Errorf("records type must be pointer to a slice: %T", records)
	}
	return v.Elem(), nil
}
