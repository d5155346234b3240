// @lixen: #focus{ghost[persistence],io[toml]}
package ghost

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// ErrNoBestLap is returned when a track has no usable best lap
var ErrNoBestLap = errors.New("no best lap recorded")

// Store persists one best lap per track identifier, last writer wins
type Store interface {
	Load(trackID string) (*BestLap, error)
	Save(trackID string, best *BestLap) error
}

// FileStore keeps each best lap in <dir>/<trackID>.toml
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir, the directory is created on first save
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the file backing trackID
func (s *FileStore) Path(trackID string) string {
	return filepath.Join(s.dir, trackID+".toml")
}

// Load reads and decodes the best lap for trackID
func (s *FileStore) Load(trackID string) (*BestLap, error) {
	data, err := os.ReadFile(s.Path(trackID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoBestLap
		}
		return nil, fmt.Errorf("read best lap %s: %w", trackID, err)
	}

	var best BestLap
	if err := toml.Unmarshal(data, &best); err != nil {
		return nil, fmt.Errorf("decode best lap %s: %w", trackID, err)
	}
	if !best.Valid() {
		return nil, fmt.Errorf("best lap %s: %w", trackID, ErrNoBestLap)
	}
	return &best, nil
}

// Save encodes best and replaces the track file atomically
func (s *FileStore) Save(trackID string, best *BestLap) error {
	if !best.Valid() {
		return fmt.Errorf("save best lap %s: %w", trackID, ErrNoBestLap)
	}

	data, err := toml.Marshal(best)
	if err != nil {
		return fmt.Errorf("encode best lap %s: %w", trackID, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, trackID+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write best lap %s: %w", trackID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close best lap %s: %w", trackID, err)
	}
	if err := os.Rename(tmpName, s.Path(trackID)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace best lap %s: %w", trackID, err)
	}
	return nil
}

// MemoryStore keeps best laps in memory, used when persistence is disabled
type MemoryStore struct {
	mu   sync.Mutex
	laps map[string]*BestLap
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{laps: make(map[string]*BestLap)}
}

func (s *MemoryStore) Load(trackID string) (*BestLap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	best, ok := s.laps[trackID]
	if !ok {
		return nil, ErrNoBestLap
	}
	return best, nil
}

func (s *MemoryStore) Save(trackID string, best *BestLap) error {
	if !best.Valid() {
		return fmt.Errorf("save best lap %s: %w", trackID, ErrNoBestLap)
	}
	s.mu.Lock()
	s.laps[trackID] = best
	s.mu.Unlock()
	return nil
}
