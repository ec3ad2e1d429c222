package testbed

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Artifact format changes
const artifactSchemaVersion uint16 = 1

// Artifact is the testbed's serialized AST stand-in: enough state to
// reconstruct a unit without reparsing.
type Artifact struct {
	Schema uint16
	Path   string
	Source []byte
}

// WriteArtifact serializes an artifact for source to path. Tests use it
// to produce AST-file fixtures.
func WriteArtifact(path, sourcePath string, source []byte) error {
	data, err := msgpack.Marshal(&Artifact{
		Schema: artifactSchemaVersion,
		Path:   sourcePath,
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func readArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a Artifact
	if err := msgpack.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if a.Schema != artifactSchemaVersion {
		return nil, fmt.Errorf("artifact schema %d, want %d", a.Schema, artifactSchemaVersion)
	}
	return &a, nil
}
