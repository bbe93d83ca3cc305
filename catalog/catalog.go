// Package catalog builds the sorted list of rom headers found by a source,
// along with the list of roms that could not be read or decoded.
package catalog

import (
	"context"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"gbcat/gbrom"
	"gbcat/log"
	"gbcat/source"
)

// Entry is a decoded rom header and where it comes from.
type Entry struct {
	gbrom.Header
	SourceName string // file or archive member name
	Category   string // first directory below the scan root
}

// DisplayName returns the source name without its extension.
func (e Entry) DisplayName() string {
	return strings.TrimSuffix(e.SourceName, filepath.Ext(e.SourceName))
}

// Failure is a rom that could not be read or decoded.
type Failure struct {
	SourceName string
	Category   string
	Err        error
}

func (f Failure) Error() string {
	return f.SourceName + ": " + f.Err.Error()
}

func (f Failure) Unwrap() error { return f.Err }

// Catalog holds the entries and failures, both sorted by source name, case
// insensitively. Items with equal names keep the order in which they were
// provided.
type Catalog struct {
	Entries  []Entry
	Failures []Failure
}

type result struct {
	entry Entry
	fail  *Failure
}

func parse(it source.Item) result {
	if it.Err != nil {
		return result{fail: &Failure{SourceName: it.Name, Category: it.Category, Err: it.Err}}
	}

	hdr, err := gbrom.Parse(it.Data)
	if err != nil {
		log.ModCatalog.WithField("category", it.Category).Debugf("failed to parse %s: %v", it.Name, err)
		return result{fail: &Failure{SourceName: it.Name, Category: it.Category, Err: err}}
	}

	log.ModCatalog.WithField("category", it.Category).Debugf("parsed %s: %q", it.Name, hdr.Title)
	return result{entry: Entry{Header: hdr, SourceName: it.Name, Category: it.Category}}
}

// Build parses all items sequentially.
func Build(items []source.Item) *Catalog {
	results := make([]*result, len(items))
	for i, it := range items {
		res := parse(it)
		results[i] = &res
	}
	return assemble(results)
}

// Collect parses the items provided by p on up to workers goroutines
// (runtime.NumCPU() if workers <= 0). Scanning stops at the first error from
// p or when ctx is done, that error is returned along with the catalog of
// the items parsed so far.
func Collect(ctx context.Context, p source.Provider, workers int) (*Catalog, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var g errgroup.Group
	g.SetLimit(workers)

	// Indexed by encounter order, each slot is only written by its goroutine.
	var results []*result
	err := p.Scan(ctx, func(it source.Item) error {
		res := new(result)
		results = append(results, res)
		g.Go(func() error {
			*res = parse(it)
			return nil
		})
		return nil
	})
	g.Wait()

	cat := assemble(results)
	log.ModCatalog.Infof("cataloged %d roms, %d failures", len(cat.Entries), len(cat.Failures))
	return cat, err
}

func assemble(results []*result) *Catalog {
	cat := &Catalog{}
	for _, res := range results {
		if res.fail != nil {
			cat.Failures = append(cat.Failures, *res.fail)
		} else {
			cat.Entries = append(cat.Entries, res.entry)
		}
	}

	sortByName(cat.Entries, func(e Entry) string { return e.SourceName })
	sortByName(cat.Failures, func(f Failure) string { return f.SourceName })
	return cat
}

func sortByName[T any](s []T, name func(T) string) {
	slices.SortStableFunc(s, func(a, b T) int {
		return strings.Compare(strings.ToLower(name(a)), strings.ToLower(name(b)))
	})
}
