// Shared helpers for worktop CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/worktop/internal/kv"
	"github.com/mesh-intelligence/worktop/internal/store"
	"github.com/mesh-intelligence/worktop/pkg/types"
)

// attachStore resolves the data directory, opens the configured backend,
// and runs pending schema migrations. The caller must defer Close on the
// returned store.
func attachStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: configBackend,
		DataDir: dataDir,
	}
	if cfg.Backend == "" {
		cfg.Backend = defaultBackend
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var backing kv.Store
	switch cfg.Backend {
	case types.BackendMemory:
		backing = kv.NewMemory()
	default:
		backing, err = kv.OpenSQLite(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open backend: %w", err)
		}
	}

	s := store.New(backing, store.WithLogger(newLogger()))
	if err := s.Open(); err != nil {
		backing.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

// newLogger builds the CLI logger: debug output with --verbose, silent
// otherwise so command output stays clean.
func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// printResult writes v as indented JSON when --json is set, otherwise
// falls back to the supplied human-readable line.
func printResult(v any, human string) error {
	if !flagJSON {
		fmt.Println(human)
		return nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printList writes items as indented JSON when --json is set, otherwise
// one line per item via the format function.
func printList[T any](items []T, format func(T) string) error {
	if flagJSON {
		out, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	if len(items) == 0 {
		fmt.Println("(none)")
		return nil
	}
	for _, item := range items {
		fmt.Println(format(item))
	}
	return nil
}

// optString returns a pointer to the flag value if the flag was changed,
// nil otherwise. Update operations merge only the supplied fields.
func optString(changed bool, value string) *string {
	if !changed {
		return nil
	}
	return &value
}

// optBool is optString for boolean flags.
func optBool(changed bool, value bool) *bool {
	if !changed {
		return nil
	}
	return &value
}
