package catalog

import (
	"fmt"
	"log/slog"

	"github.com/gravitrone/dex/internal/api"
)

// Gateway is the remote data source for the catalog.
type Gateway interface {
	DetailFetcher
	ListEntries() ([]EntryRef, error)
	ListTags() ([]string, error)
}

// APIGateway adapts the HTTP client to the catalog's data model and logs
// every failed call.
type APIGateway struct {
	client *api.Client
	limit  int
	logger *slog.Logger
}

// NewAPIGateway wraps client. limit caps the size of the entry index; zero
// uses api.DefaultEntryLimit. A nil logger falls back to slog.Default().
func NewAPIGateway(client *api.Client, limit int, logger *slog.Logger) *APIGateway {
	if limit <= 0 {
		limit = api.DefaultEntryLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &APIGateway{client: client, limit: limit, logger: logger}
}

// ListEntries fetches the entry index.
func (g *APIGateway) ListEntries() ([]EntryRef, error) {
	items, err := g.client.ListCreatures(g.limit)
	if err != nil {
		g.logger.Error("list entries failed", "error", err)
		return nil, fmt.Errorf("list entries: %w", err)
	}
	out := make([]EntryRef, 0, len(items))
	for _, item := range items {
		out = append(out, EntryRef{Name: item.Name, Handle: item.URL})
	}
	g.logger.Debug("entries loaded", "count", len(out))
	return out, nil
}

// ListTags fetches the tag vocabulary.
func (g *APIGateway) ListTags() ([]string, error) {
	items, err := g.client.ListTypes()
	if err != nil {
		g.logger.Error("list tags failed", "error", err)
		return nil, fmt.Errorf("list tags: %w", err)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out, nil
}

// FetchDetail fetches and converts one entry's detail.
func (g *APIGateway) FetchDetail(handle string) (*EntryDetail, error) {
	creature, err := g.client.GetCreature(handle)
	if err != nil {
		return nil, fmt.Errorf("fetch detail: %w", err)
	}
	return DetailFromCreature(creature), nil
}

// FetchByName fetches one entry's detail by name, bypassing the index.
func (g *APIGateway) FetchByName(name string) (*EntryDetail, error) {
	creature, err := g.client.GetCreatureByName(name)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", name, err)
	}
	return DetailFromCreature(creature), nil
}

// DetailFromCreature maps the API record onto EntryDetail. Tags and
// attributes keep API slot order with duplicates removed.
func DetailFromCreature(c *api.Creature) *EntryDetail {
	if c == nil {
		return nil
	}
	d := &EntryDetail{
		ID:     c.ID,
		Name:   c.Name,
		Height: c.Height,
		Weight: c.Weight,
	}
	if c.BaseExperience != nil {
		d.BaseExperience = *c.BaseExperience
	}
	if c.Sprites.FrontDefault != nil {
		d.ImageRef = *c.Sprites.FrontDefault
	}
	for _, t := range c.Types {
		d.Tags = appendUnique(d.Tags, t.Type.Name)
	}
	for _, a := range c.Abilities {
		d.Attributes = appendUnique(d.Attributes, a.Ability.Name)
	}
	for _, s := range c.Stats {
		d.Stats = append(d.Stats, Stat{Name: s.Stat.Name, Value: s.BaseStat})
	}
	return d
}

func appendUnique(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
