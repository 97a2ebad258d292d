package pipeline

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"fooddash/pkg/frame"
	"fooddash/pkg/restaurant"
)

// ReadFunc reads a raw frame from a file.
type ReadFunc func(path string) (*frame.Frame, error)

// Loaded is the result of one load: a working dataset for filtering and a
// separate snapshot for platform-wide metrics.
type Loaded struct {
	Dataset  restaurant.Dataset
	Snapshot restaurant.Dataset
	Report   Report
	Cached   bool
}

type cacheEntry struct {
	ds     restaurant.Dataset
	report Report
}

// Loader memoizes load-and-clean per file version. A version is identified
// by path, size and modification time, so editing the file forces a reload.
type Loader struct {
	cache   *lru.Cache[string, cacheEntry]
	read    ReadFunc
	cleaner *Cleaner
	log     *zap.Logger
}

// NewLoader returns a loader that keeps up to size cleaned datasets and
// reads CSV files with sep unless another reader is supplied.
func NewLoader(size int, sep rune, read ReadFunc, opts ...Option) (*Loader, error) {
	cache, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, errors.Wrap(err, "loader cache")
	}
	if read == nil {
		read = func(path string) (*frame.Frame, error) { return frame.LoadCSV(path, sep) }
	}
	c := NewCleaner(opts...)
	return &Loader{cache: cache, read: read, cleaner: c, log: c.log}, nil
}

// Load returns the cleaned dataset for path, running the pipeline only when
// this version of the file has not been cleaned before.
func (l *Loader) Load(path string) (*Loaded, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "stat dataset")
	}
	key := fmt.Sprintf("%s|%d|%d", path, st.Size(), st.ModTime().UnixNano())

	if e, ok := l.cache.Get(key); ok {
		l.log.Debug("dataset cache hit", zap.String("path", path))
		return &Loaded{Dataset: e.ds.Clone(), Snapshot: e.ds.Clone(), Report: e.report, Cached: true}, nil
	}

	raw, err := l.read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	ds, rep, err := l.cleaner.Clean(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "clean %s", path)
	}
	l.cache.Add(key, cacheEntry{ds: ds, report: rep})
	return &Loaded{Dataset: ds.Clone(), Snapshot: ds.Clone(), Report: rep}, nil
}

// Purge empties the cache.
func (l *Loader) Purge() { l.cache.Purge() }
