package ghost

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "laps"))
	best := &BestLap{
		TimeMs: 65432,
		Samples: []LapSample{
			{ElapsedMs: 0, X: 375.25, Y: -42.3125, Angle: 0.1122334455667788},
			{ElapsedMs: 30, X: 380.1, Y: -41.7, Angle: -3.0999999999999996},
			{ElapsedMs: 61, X: 1e-7, Y: -123456.789, Angle: 3.141592653589793},
		},
	}

	require.NoError(t, s.Save("seed-42-feature-0", best))
	assert.FileExists(t, s.Path("seed-42-feature-0"))

	got, err := s.Load("seed-42-feature-0")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(best, got))

	// Last writer wins
	faster := &BestLap{TimeMs: 60000, Samples: best.Samples[:1]}
	require.NoError(t, s.Save("seed-42-feature-0", faster))
	got, err = s.Load("seed-42-feature-0")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(faster, got))

	entries, err := os.ReadDir(filepath.Dir(s.Path("x")))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileStore_Missing(t *testing.T) {
	s := NewFileStore(t.TempDir())
	_, err := s.Load("seed-1-feature-1")
	assert.ErrorIs(t, err, ErrNoBestLap)
}

func TestFileStore_Malformed(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	require.NoError(t, os.WriteFile(s.Path("broken"), []byte("time_ms = [[[ nope"), 0o644))
	_, err := s.Load("broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoBestLap)
	assert.Contains(t, err.Error(), "decode best lap broken")

	require.NoError(t, os.WriteFile(s.Path("empty"), []byte("time_ms = 0\n"), 0o644))
	_, err = s.Load("empty")
	assert.ErrorIs(t, err, ErrNoBestLap)
}

func TestFileStore_RejectsInvalidSave(t *testing.T) {
	s := NewFileStore(t.TempDir())
	assert.ErrorIs(t, s.Save("x", nil), ErrNoBestLap)
	assert.ErrorIs(t, s.Save("x", &BestLap{TimeMs: 1000}), ErrNoBestLap)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Load("a")
	assert.ErrorIs(t, err, ErrNoBestLap)

	best := threeSampleLap()
	require.NoError(t, s.Save("a", best))
	got, err := s.Load("a")
	require.NoError(t, err)
	assert.Same(t, best, got)
}
