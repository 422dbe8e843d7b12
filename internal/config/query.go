package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cxm940188/kafka-ui/internal/query"
)

const SupportedSchema = "v1"

// LoadQueryFile parses a query YAML, validates schema_version, and returns the
// parsed file and an absolute path to the source config (if set). Relative
// paths inside the file resolve against its directory.
func LoadQueryFile(path string) (query.File, string, error) {
	var f query.File
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, "", err
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, "", err
	}
	if f.SchemaVersion == "" {
		f.SchemaVersion = SupportedSchema
	}
	if f.SchemaVersion != SupportedSchema {
		return f, "", fmt.Errorf("query schema_version %q not supported (want %q)", f.SchemaVersion, SupportedSchema)
	}
	if f.Source.Kind != "" && f.Source.Kind != "kafka" {
		return f, "", fmt.Errorf("source kind %q not supported", f.Source.Kind)
	}
	if f.Tail.Topic == "" && f.Tail.Resume == "" {
		return f, "", fmt.Errorf("%s: tail.topic or tail.resume is required", path)
	}
	if len(f.Sinks) == 0 {
		f.Sinks = []string{"stdout"}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return f, "", err
	}
	dir := filepath.Dir(abs)
	confPath := resolve(dir, f.Source.Config)
	f.SinkConfigs.Kafka.Config = resolve(dir, f.SinkConfigs.Kafka.Config)
	if f.CursorStore.Driver == "badger" {
		f.CursorStore.Path = resolve(dir, f.CursorStore.Path)
	}
	return f, confPath, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
