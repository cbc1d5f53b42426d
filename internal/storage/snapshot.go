package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ErrNoSnapshot is returned by Load when the snapshot file does not exist.
var ErrNoSnapshot = errors.New("storage: no snapshot")

// Codec encodes and decodes snapshot values.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type yamlCodec struct{}

func (yamlCodec) Name() string                       { return "yaml" }
func (yamlCodec) Marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// msgpackCodec reuses the json struct tags so snapshot types carry one naming scheme.
type msgpackCodec struct{}

func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (msgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

// CodecFor picks a codec from a file extension. YAML is the default.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jsonCodec{}
	case ".msgpack", ".mp":
		return msgpackCodec{}
	default:
		return yamlCodec{}
	}
}

// SnapshotFile persists a single value to a file.
type SnapshotFile struct {
	path  string
	codec Codec
}

// OpenSnapshot prepares a snapshot file at path, expanding ~.
// The file itself is not touched until Load or Save.
func OpenSnapshot(path string) (*SnapshotFile, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &SnapshotFile{path: expanded, codec: CodecFor(expanded)}, nil
}

// Path returns the resolved file path.
func (f *SnapshotFile) Path() string {
	return f.path
}

// Codec returns the codec in use.
func (f *SnapshotFile) Codec() Codec {
	return f.codec
}

// Load decodes the file into v.
func (f *SnapshotFile) Load(v any) error {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNoSnapshot
	}
	if err != nil {
		return fmt.Errorf("storage: cannot read snapshot %s: %w", f.path, err)
	}
	if err := f.codec.Unmarshal(data, v); err != nil {
		return fmt.Errorf("storage: cannot decode %s snapshot %s: %w", f.codec.Name(), f.path, err)
	}
	return nil
}

// Save encodes v and replaces the file atomically.
func (f *SnapshotFile) Save(v any) error {
	data, err := f.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: cannot encode %s snapshot: %w", f.codec.Name(), err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write snapshot: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("storage: cannot replace snapshot %s: %w", f.path, err)
	}
	return nil
}

// Remove deletes the snapshot file. A missing file is not an error.
func (f *SnapshotFile) Remove() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot remove snapshot %s: %w", f.path, err)
	}
	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
