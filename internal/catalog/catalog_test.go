package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nfrund/sevahub/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	ctx := context.Background()
	src := Static()

	apps, err := src.Applications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, domain.StatusAccepted, apps[1].Status)

	recs, err := src.Recommendations(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	posted, err := src.PostedOpportunities(ctx)
	require.NoError(t, err)
	assert.Len(t, posted, 3)

	applicants, err := src.Applicants(ctx)
	require.NoError(t, err)
	assert.Len(t, applicants, 3)
}

func TestStatic_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	src := Static()

	applicants, _ := src.Applicants(ctx)
	applicants[0].Name = "Changed"
	applicants[0].Skills[0] = "Changed"

	again, _ := src.Applicants(ctx)
	assert.Equal(t, "Rahul Verma", again[0].Name)
	assert.Equal(t, "Teaching", again[0].Skills[0])
}

func TestSummarize(t *testing.T) {
	posted, _ := Static().PostedOpportunities(context.Background())
	assert.Equal(t, Summary{Posted: 3, Applicants: 25, Accepted: 5, Pending: 17}, Summarize(posted))
	assert.Equal(t, Summary{}, Summarize(nil))
}

func writeCatalog(t *testing.T, fs afero.Fs, path string, d Data) {
	t.Helper()
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, path, raw, 0o644))
}

func TestFileSource(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	path := "/srv/catalog.json"

	writeCatalog(t, fs, path, Data{
		Applicants: []domain.Applicant{{ID: 9, Name: "Meera Shah", Status: domain.StatusPending}},
	})

	src, err := NewFileSource(fs, path)
	require.NoError(t, err)

	applicants, err := src.Applicants(ctx)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, "Meera Shah", applicants[0].Name)

	apps, err := src.Applications(ctx)
	require.NoError(t, err)
	assert.Empty(t, apps)

	t.Run("reload picks up new content", func(t *testing.T) {
		writeCatalog(t, fs, path, Data{
			PostedOpportunities: []domain.PostedOpportunity{{ID: 1, Title: "Food Drive", Applicants: 4}},
		})
		require.NoError(t, src.Reload())

		posted, _ := src.PostedOpportunities(ctx)
		require.Len(t, posted, 1)
		assert.Equal(t, "Food Drive", posted[0].Title)
	})

	t.Run("broken file keeps previous data", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, path, []byte("{not json"), 0o644))
		assert.Error(t, src.Reload())

		posted, _ := src.PostedOpportunities(ctx)
		assert.Len(t, posted, 1)
	})
}

func TestNewFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(afero.NewMemMapFs(), "/nope.json")
	assert.Error(t, err)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	fs := afero.NewOsFs()

	writeCatalog(t, fs, path, Data{Recommendations: []domain.Recommendation{{ID: 1, Title: "Old"}}})
	src, err := NewFileSource(fs, path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, Watch(ctx, src))

	raw, err := json.Marshal(Data{Recommendations: []domain.Recommendation{{ID: 2, Title: "New"}}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	assert.Eventually(t, func() bool {
		recs, _ := src.Recommendations(context.Background())
		return len(recs) == 1 && recs[0].Title == "New"
	}, 3*time.Second, 20*time.Millisecond)
}
