// Package pipeline runs a full resolution pass over the roster.
package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
	"go.trai.ch/teammap/internal/engine/query"
	"go.trai.ch/teammap/internal/engine/reconcile"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const noLocality = "No locality"

// Options configures a single run.
type Options struct {
	RosterPath        string
	DatasetPath       string
	Concurrency       int
	ExcludedCountries []string
}

// Report summarizes a successful run.
type Report struct {
	// Members is the number of members written to the dataset.
	Members int
	// Cached counts members whose previous entry was reused.
	Cached int
	// Resolved counts members looked up through the resolver.
	Resolved int
	// Evicted counts previous entries without a matching member.
	Evicted int
}

// Driver sequences LOAD_CACHE, LOAD_ROSTER, FILTER, HASH_AND_ORDER, RECONCILE,
// RESOLVE and PERSIST.
type Driver struct {
	store     ports.DatasetStore
	roster    ports.RosterLoader
	hasher    ports.IdentityHasher
	countries ports.CountryCodes
	resolver  ports.LocationResolver
	logger    ports.Logger
}

// NewDriver creates a new Driver.
func NewDriver(
	store ports.DatasetStore,
	roster ports.RosterLoader,
	hasher ports.IdentityHasher,
	countries ports.CountryCodes,
	resolver ports.LocationResolver,
	logger ports.Logger,
) *Driver {
	return &Driver{
		store:     store,
		roster:    roster,
		hasher:    hasher,
		countries: countries,
		resolver:  resolver,
		logger:    logger,
	}
}

// Run performs one pass. The dataset is only written when every member resolved.
func (d *Driver) Run(ctx context.Context, opts Options) (Report, error) {
	previous := d.loadCache(opts.DatasetPath)

	members, err := d.roster.Load(opts.RosterPath)
	if err != nil {
		return Report{}, err
	}

	members = d.filter(members, opts.ExcludedCountries)
	domain.SortByStartDate(members)

	res := reconcile.Reconcile(previous, members)
	if len(res.Evicted) > 0 {
		d.logger.Info("Going to remove " + strings.Join(reconcile.Names(res.Evicted), ", "))
	}

	team, cached, err := d.resolveAll(ctx, members, res.Retained, opts.Concurrency)
	if err != nil {
		return Report{}, err
	}
	d.logger.Info("Found a location for all team members")

	dataset := domain.Dataset{Version: domain.DatasetVersion, Team: team}
	if err := d.store.Save(opts.DatasetPath, dataset); err != nil {
		return Report{}, err
	}

	return Report{
		Members:  len(team),
		Cached:   cached,
		Resolved: len(team) - cached,
		Evicted:  len(res.Evicted),
	}, nil
}

// loadCache returns the previous entries. A missing, unreadable or stale
// dataset is reported and treated as empty.
func (d *Driver) loadCache(path string) []domain.CacheEntry {
	dataset, err := d.store.Load(path)
	if err != nil {
		d.logger.Warn(fmt.Sprintf("Could not load existing dataset %s: %v", path, err))
		return nil
	}
	if dataset == nil {
		d.logger.Info(fmt.Sprintf("Could not load existing dataset %s, starting from an empty one", path))
		return nil
	}
	return dataset.Team
}

// filter drops placeholders and members in excluded countries, normalizes
// localities and assigns identity keys.
func (d *Driver) filter(members []domain.Member, excludedCountries []string) []domain.Member {
	excluded := mapset.NewSet[string]()
	for _, code := range excludedCountries {
		excluded.Add(strings.ToUpper(code))
	}

	kept := make([]domain.Member, 0, len(members))
	for _, m := range members {
		if m.IsPlaceholder() {
			continue
		}
		if excluded.Contains(d.countries.Code(m.Country)) {
			continue
		}
		m.Key = d.hasher.Create(m)
		m.Locality = query.NormalizeLocality(m.Locality)
		kept = append(kept, m)
	}
	return kept
}

// resolveAll fills the team in roster order using at most limit workers.
func (d *Driver) resolveAll(
	ctx context.Context,
	members []domain.Member,
	retained map[domain.IdentityKey]domain.CacheEntry,
	limit int,
) ([]domain.CacheEntry, int, error) {
	team := make([]domain.CacheEntry, len(members))
	var cached atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i, m := range members {
		g.Go(func() error {
			// A failed member cancels the group; the rest are skipped.
			if gctx.Err() != nil {
				return nil
			}

			entry, hit, err := d.resolveMember(gctx, m, retained)
			if err != nil {
				return err
			}
			if hit {
				cached.Add(1)
			}
			team[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return team, int(cached.Load()), nil
}

func (d *Driver) resolveMember(
	ctx context.Context,
	m domain.Member,
	retained map[domain.IdentityKey]domain.CacheEntry,
) (domain.CacheEntry, bool, error) {
	key := d.hasher.Shorten(m.Key)

	if entry, ok := retained[key]; ok {
		d.logger.Info("Cached result for " + m.Name)
		return entry, true, nil
	}

	locality := m.Locality
	if locality == "" {
		locality = noLocality
	}
	d.logger.Info(fmt.Sprintf("Searching location for %s: %s in %s", m.Name, locality, m.Country))

	loc, err := d.resolver.Resolve(ctx, m.Locality, m.Country)
	if err != nil {
		return domain.CacheEntry{}, false, zerr.With(zerr.Wrap(err, domain.ErrMemberResolutionFailed.Error()), "member", m.Name)
	}

	d.logger.Info(fmt.Sprintf("%s; %s, %s: %s - %s", m.Name, locality, m.Country, formatCoordinates(loc.Location), loc.Country))

	return domain.NewCacheEntry(key, m, loc), false, nil
}

func formatCoordinates(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lat(), 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng(), 'f', -1, 64)
}
