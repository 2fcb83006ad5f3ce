package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

var (
	// ErrNoSave is returned when there is nothing to load
	ErrNoSave = errors.New("no saved game")
	// ErrCorrupt is returned when a save cannot be decoded
	ErrCorrupt = errors.New("corrupt saved game")
)

// DefaultFileName is the save file created inside the save directory
const DefaultFileName = "wumpus.sav"

// Store persists a single save slot
type Store interface {
	Save(ctx context.Context, snap *Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
}

// FileStore keeps the snapshot as zstd-compressed JSON on disk
type FileStore struct {
	path    string
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewFileStore creates a store writing to dir/DefaultFileName
func NewFileStore(dir string) (*FileStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create compressor: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create decompressor: %w", err)
	}
	return &FileStore{
		path:    filepath.Join(dir, DefaultFileName),
		encoder: encoder,
		decoder: decoder,
	}, nil
}

// Path returns the save file location
func (fs *FileStore) Path() string {
	return fs.path
}

// Save writes the snapshot, replacing any previous save
func (fs *FileStore) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	data = fs.encoder.EncodeAll(data, nil)

	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("failed to replace save: %w", err)
	}

	slog.DebugContext(ctx, "game saved", "path", fs.path, "slot_id", snap.SlotID, "bytes", len(data))
	return nil
}

// Load reads the snapshot back
func (fs *FileStore) Load(ctx context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	raw, err := fs.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: decompression failed: %v", ErrCorrupt, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	slog.DebugContext(ctx, "game loaded", "path", fs.path, "slot_id", snap.SlotID)
	return &snap, nil
}

// MemoryStore keeps the snapshot in memory
type MemoryStore struct {
	data []byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save stores a copy of the snapshot
func (ms *MemoryStore) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	ms.data = data
	return nil
}

// Load returns a copy of the stored snapshot
func (ms *MemoryStore) Load(ctx context.Context) (*Snapshot, error) {
	if ms.data == nil {
		return nil, ErrNoSave
	}
	var snap Snapshot
	if err := json.Unmarshal(ms.data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &snap, nil
}
