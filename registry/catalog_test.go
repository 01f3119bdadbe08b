package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
[[hubs]]
id = "notes"
label = "Notes"
target = "/notes"

  [[hubs.items]]
  id = "recent"
  label = "Recent"
  target = "/notes/recent"

  [[hubs.actions]]
  id = "new-note"
  label = "New note"

[[hubs]]
id = "tasks"
label = "Tasks"
target = "/tasks"

[[hubs]]
id = "archive"
label = "Archive"
target = "/archive"
disabled = true
`

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	hubs := c.ActiveHubs()
	require.Len(t, hubs, 2)
	require.Equal(t, "notes", hubs[0].ID)
	require.Equal(t, "tasks", hubs[1].ID)

	items := c.SubItems("notes")
	require.Len(t, items, 1)
	require.Equal(t, "/notes/recent", items[0].Target)

	actions := c.QuickActions("notes")
	require.Len(t, actions, 1)
	require.Equal(t, "new-note", actions[0].ID)

	require.Empty(t, c.SubItems("archive"))
	require.Empty(t, c.QuickActions("tasks"))
}

func TestParseCatalogRejectsBadIDs(t *testing.T) {
	_, err := ParseCatalog([]byte("[[hubs]]\nlabel = \"x\"\n"))
	require.Error(t, err)

	_, err = ParseCatalog([]byte("[[hubs]]\nid = \"a\"\n[[hubs]]\nid = \"a\"\n"))
	require.ErrorContains(t, err, "duplicate")
}

func TestSetDisabledAndLookup(t *testing.T) {
	c := NewCatalog(HubEntry{Hub: Hub{ID: "a"}}, HubEntry{Hub: Hub{ID: "b"}})
	_, ok := Lookup(c, "b")
	require.True(t, ok)

	require.NoError(t, c.SetDisabled("b", true))
	_, ok = Lookup(c, "b")
	require.False(t, ok)

	require.ErrorIs(t, c.SetDisabled("zzz", true), ErrHubNotFound)
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := NewCatalog(HubEntry{Hub: Hub{ID: "a"}, Items: []Item{{ID: "x"}}})
	items := c.SubItems("a")
	items[0].ID = "mutated"
	require.Equal(t, "x", c.SubItems("a")[0].ID)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hubs.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.ActiveHubs(), 2)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
