package devserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingyamilmolinar/reverbfx/internal/config"
	"github.com/ingyamilmolinar/reverbfx/internal/log"
)

func TestWatchMatch(t *testing.T) {
	patterns := config.Default().Dev.Watch
	cases := []struct {
		rel  string
		want bool
	}{
		{"index.html", true},
		{"css/site.css", true},
		{filepath.Join("a", "b", "c.js"), true},
		{"main.wasm", true},
		{"notes.txt", false},
		{"index.html.swp", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, watchMatch(c.rel, patterns), c.rel)
	}
}

func TestWatcherReportsMatchingChanges(t *testing.T) {
	root := t.TempDir()
	w, err := newWatcher(root, []string{"**/*.css"}, log.Discard())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan string, 8)
	go w.run(ctx, func(rel string) { changed <- rel })

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "style.css"), []byte("a{}"), 0o644))

	select {
	case rel := <-changed:
		assert.Equal(t, "style.css", rel)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
	select {
	case rel := <-changed:
		t.Fatalf("unexpected change %s", rel)
	case <-time.After(3 * settle):
	}
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	w, err := newWatcher(root, []string{"**/*.css"}, log.Discard())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan string, 8)
	go w.run(ctx, func(rel string) { changed <- rel })

	sub := filepath.Join(root, "css")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// The new directory is registered asynchronously; keep writing until seen.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(3 * settle)
	defer tick.Stop()
	for {
		select {
		case rel := <-changed:
			assert.Equal(t, "css/site.css", rel)
			return
		case <-tick.C:
			require.NoError(t, os.WriteFile(filepath.Join(sub, "site.css"), []byte("a{}"), 0o644))
		case <-deadline:
			t.Fatal("change in new directory not reported")
		}
	}
}
