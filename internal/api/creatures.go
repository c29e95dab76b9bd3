package api

import (
	"fmt"
	"net/url"
	"strings"
)

// --- Creature Methods ---

// ListCreatures returns the index of creatures with their detail URLs.
func (c *Client) ListCreatures(limit int) ([]NamedResource, error) {
	params := QueryParams{}
	if limit > 0 {
		params["limit"] = fmt.Sprintf("%d", limit)
	}
	target := buildQuery("/pokemon", params)
	data, err := c.do("list creatures", target)
	if err != nil {
		return nil, err
	}
	return decodeList("list creatures", c.resolve(target), data)
}

// ListTypes returns the type vocabulary used to tag creatures.
func (c *Client) ListTypes() ([]NamedResource, error) {
	data, err := c.do("list types", "/type")
	if err != nil {
		return nil, err
	}
	return decodeList("list types", c.resolve("/type"), data)
}

// GetCreature fetches a creature by its detail URL or API path.
func (c *Client) GetCreature(handle string) (*Creature, error) {
	data, err := c.do("get creature", handle)
	if err != nil {
		return nil, err
	}
	return decodeOne[Creature]("get creature", c.resolve(handle), data)
}

// GetCreatureByName fetches a creature by name or numeric id. Names are
// matched case-insensitively.
func (c *Client) GetCreatureByName(name string) (*Creature, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, &NetworkError{Op: "get creature", URL: c.resolve("/pokemon/"), Err: fmt.Errorf("name is required")}
	}
	return c.GetCreature("/pokemon/" + url.PathEscape(key))
}
