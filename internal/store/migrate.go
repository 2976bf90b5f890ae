package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/worktop/internal/kv"
	"github.com/mesh-intelligence/worktop/pkg/types"
)

// currentSchemaVersion is the schema generation this build writes.
const currentSchemaVersion = 2

// Schema history:
//
//	v0  original release: requests, inProgressItems, reports only, records
//	    may lack divisionId/clientId, reports may lack category
//	v1  backfills divisionId/clientId (null) and report category, adds the
//	    clients, documents, dashboardLinks, and controlItems collections
//	v2  renames the clientId foreign key to projectId everywhere and the
//	    clients collection to projects
//
// Migration operates on raw JSON records so field-presence checks are exact:
// re-running a step against already-migrated data changes nothing, and an
// interrupted run resumes safely because collections are written back before
// the version marker advances.
func (s *Store) migrate() error {
	version := s.schemaVersion()

	if version < 1 {
		if err := s.migrateToV1(); err != nil {
			return fmt.Errorf("migrating schema to v1: %w", err)
		}
	}
	if version < 2 {
		if err := s.migrateToV2(); err != nil {
			return fmt.Errorf("migrating schema to v2: %w", err)
		}
	}
	return nil
}

// schemaVersion returns the persisted schema version. A missing or corrupt
// marker reads as 0, the pre-versioning generation.
func (s *Store) schemaVersion() int {
	raw, err := s.backing.Get(keySchemaVersion)
	if err != nil {
		return 0
	}
	version, err := strconv.Atoi(string(raw))
	if err != nil {
		s.log.Warn("schema version marker is corrupt, assuming v0", zap.Error(err))
		return 0
	}
	return version
}

// writeSchemaVersion advances the persisted version marker. Called only
// after every collection touched by the step has been written back.
func (s *Store) writeSchemaVersion(version int) error {
	return s.backing.Set(keySchemaVersion, []byte(strconv.Itoa(version)))
}

// migrateToV1 backfills the v1 fields onto existing records and creates the
// collections introduced in v1.
func (s *Store) migrateToV1() error {
	for _, key := range []string{keyRequests, keyInProgressItems, keyReports} {
		records, present := s.readRawCollection(key)
		if !present {
			continue
		}

		for _, rec := range records {
			if _, ok := rec["divisionId"]; !ok {
				rec["divisionId"] = nil
			}
			// The v1 generation still called the foreign key clientId;
			// the rename to projectId is v2's job. A record that already
			// carries either spelling is left alone.
			if _, hasLegacy := rec["clientId"]; !hasLegacy {
				if _, hasCurrent := rec["projectId"]; !hasCurrent {
					rec["clientId"] = nil
				}
			}
			if key == keyReports {
				if _, ok := rec["category"]; !ok {
					rec["category"] = types.CategoryRecurring
				}
			}
		}

		if err := s.writeRawCollection(key, records); err != nil {
			return err
		}
	}

	// Collections introduced in v1 start empty if absent.
	for _, key := range []string{keyClientsLegacy, keyDocuments, keyDashboardLinks, keyControlItems} {
		if err := s.ensureCollection(key); err != nil {
			return err
		}
	}

	return s.writeSchemaVersion(1)
}

// migrateToV2 renames the clientId foreign key to projectId in every
// collection that has it, and the clients collection to projects. The
// renames are terminology only; no record content changes.
func (s *Store) migrateToV2() error {
	for _, key := range []string{
		keyRequests, keyInProgressItems, keyReports,
		keyDocuments, keyDashboardLinks, keyControlItems,
	} {
		records, present := s.readRawCollection(key)
		if !present {
			continue
		}

		changed := false
		for _, rec := range records {
			value, ok := rec["clientId"]
			if !ok {
				continue
			}
			if _, already := rec["projectId"]; !already {
				rec["projectId"] = value
			}
			delete(rec, "clientId")
			changed = true
		}
		if changed {
			if err := s.writeRawCollection(key, records); err != nil {
				return err
			}
		}
	}

	if err := s.renameClientsCollection(); err != nil {
		return err
	}

	return s.writeSchemaVersion(2)
}

// renameClientsCollection moves the legacy clients collection to the
// projects key. When the projects key already holds non-empty data the
// target wins and the legacy records are discarded without merging;
// this mirrors the historical upgrade behavior.
func (s *Store) renameClientsCollection() error {
	legacy, err := s.backing.Get(keyClientsLegacy)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return s.ensureCollection(keyProjects)
		}
		return fmt.Errorf("reading legacy clients collection: %w", err)
	}

	target, present := s.readRawCollection(keyProjects)
	if !present || len(target) == 0 {
		if err := s.backing.Set(keyProjects, legacy); err != nil {
			return fmt.Errorf("renaming clients collection: %w", err)
		}
	} else {
		s.log.Warn("projects collection already populated, discarding legacy clients records",
			zap.Int("legacyBytes", len(legacy)))
	}

	return s.backing.Delete(keyClientsLegacy)
}

// ensureCollection initializes key with an empty array if it is absent.
func (s *Store) ensureCollection(key string) error {
	_, err := s.backing.Get(key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, kv.ErrKeyNotFound) {
		return fmt.Errorf("checking %s: %w", key, err)
	}
	if err := s.backing.Set(key, []byte("[]")); err != nil {
		return fmt.Errorf("initializing %s: %w", key, err)
	}
	return nil
}

// readRawCollection decodes a collection as raw records for migration.
// The second return value is false when the key is absent or the content
// cannot be parsed; migration skips such collections rather than guessing.
func (s *Store) readRawCollection(key string) ([]map[string]any, bool) {
	raw, err := s.backing.Get(key)
	if err != nil {
		return nil, false
	}
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.Warn("collection is corrupt, skipping migration for it",
			zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return records, true
}

// writeRawCollection persists raw migration records back under key.
func (s *Store) writeRawCollection(key string, records []map[string]any) error {
	if records == nil {
		records = []map[string]any{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.backing.Set(key, data); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}
