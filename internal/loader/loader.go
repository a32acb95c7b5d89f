// Package loader reads the router and switch tables from their sources and
// falls back to the built-in defaults when a source cannot be used.
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"netupdate/internal/codec"
	"netupdate/internal/domain"
	"netupdate/internal/repository"
	"netupdate/internal/repository/sqlite"

	"go.uber.org/zap"
)

// SQLitePrefix marks a source string as an inventory database path
const SQLitePrefix = "sqlite:"

// ErrSourceUnavailable wraps every reason a source could not be read
var ErrSourceUnavailable = errors.New("device source unavailable")

// Result describes how one class table was obtained
type Result struct {
	Class    domain.DeviceClass
	Source   string
	Table    *domain.DeviceTable
	FellBack bool
	Err      error
}

// Loader reads device sources
type Loader struct {
	logger     *zap.Logger
	openSQLite func(path string) (repository.DeviceSource, error)
}

// New creates a loader
func New(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		logger: logger,
		openSQLite: func(path string) (repository.DeviceSource, error) {
			return sqlite.Open(path)
		},
	}
}

// LoadInventory loads both tables, falling back per class
func (l *Loader) LoadInventory(ctx context.Context, routers, switches string) (*domain.Inventory, []Result) {
	r := l.Load(ctx, domain.ClassRouter, routers)
	s := l.Load(ctx, domain.ClassSwitch, switches)
	return domain.NewInventory(r.Table, s.Table), []Result{r, s}
}

// Load reads the table for class from source. It never fails: when the
// source is unusable the built-in defaults are returned and the result is
// marked FellBack with the cause in Err.
func (l *Loader) Load(ctx context.Context, class domain.DeviceClass, source string) Result {
	table, err := l.LoadStrict(ctx, class, source)
	if err != nil {
		l.logger.Warn("using default device data",
			zap.String("class", string(class)),
			zap.String("source", source),
			zap.Error(err))
		return Result{
			Class:    class,
			Source:   source,
			Table:    domain.Defaults(class),
			FellBack: true,
			Err:      err,
		}
	}

	l.logger.Debug("loaded devices",
		zap.String("class", string(class)),
		zap.String("source", source),
		zap.Int("count", table.Len()))
	return Result{Class: class, Source: source, Table: table}
}

// LoadStrict reads the table for class from source without falling back.
// Every error wraps ErrSourceUnavailable.
func (l *Loader) LoadStrict(ctx context.Context, class domain.DeviceClass, source string) (*domain.DeviceTable, error) {
	var (
		table *domain.DeviceTable
		err   error
	)

	switch {
	case strings.TrimSpace(source) == "":
		err = errors.New("no source configured")
	case strings.HasPrefix(source, SQLitePrefix):
		table, err = l.loadSQLite(ctx, class, strings.TrimPrefix(source, SQLitePrefix))
	default:
		table, err = loadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrSourceUnavailable, class.Plural(), source, err)
	}

	return normalize(table), nil
}

func loadFile(path string) (*domain.DeviceTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return codec.ForPath(path).Parse(f)
}

func (l *Loader) loadSQLite(ctx context.Context, class domain.DeviceClass, path string) (*domain.DeviceTable, error) {
	src, err := l.openSQLite(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if repo, ok := src.(*sqlite.Repository); ok {
		if counts, err := repo.CountDevices(ctx); err == nil {
			l.logger.Debug("inventory database opened",
				zap.String("path", repo.Path()),
				zap.Int("routers", counts[domain.ClassRouter]),
				zap.Int("switches", counts[domain.ClassSwitch]))
		}
	}

	return src.LoadDevices(ctx, class)
}

// normalize lowercases keys; a later duplicate overwrites an earlier one
func normalize(in *domain.DeviceTable) *domain.DeviceTable {
	out := domain.NewDeviceTable()
	in.Each(func(name, ip string) {
		out.Set(domain.NormalizeName(name), ip)
	})
	return out
}
