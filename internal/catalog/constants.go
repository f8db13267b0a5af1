package catalog

import "time"

// ==================== Configuration File Names ====================

// Seed file and schema names
const (
	ClassesFileName   = "classes.json"
	ItemsFileName     = "items.json"
	ClassesSchemaName = "classes.schema.json"
	ItemsSchemaName   = "items.schema.json"
)

// ==================== Cache ====================

// CacheSchemaVersion invalidates cached entries when the cached shape changes
const CacheSchemaVersion = "1.0"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)

// Cache keys
const (
	cacheKeyAllItems   = "items:all"
	cacheKeyAllClasses = "classes:all"
	cacheKeyItemFmt    = "item:%d"
	cacheKeyTypeFmt    = "items:type:%s"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadSeedFileFailed = "failed to read seed file %s: %w"
	ErrMsgParseSeedFailed    = "failed to parse seed file %s: %w"
	ErrMsgSchemaFailed       = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgSeedNil           = "seed is nil"
	ErrMsgNoClassesDefined  = "no classes defined"
	ErrMsgNoItemsDefined    = "no items defined"
	ErrFmtEntryEmptyName    = "%w: %s entry at index %d has empty name"
	ErrFmtEmptyType         = "%w: item '%s' has empty type"
	ErrFmtInvalidSlot       = "%w: item '%s' has unknown equip slot '%s'"
	ErrFmtNegativeField     = "%w: %s '%s' has negative %s"
	ErrFmtNonPositiveHealth = "%w: class '%s' needs positive starting health and sanity"
	ErrFmtContainerCapacity = "%w: container item '%s' needs a positive capacity"
)

// Database operation error messages
const (
	ErrMsgCheckFileChangeFailed = "failed to check if %s changed: %w"
	ErrMsgListExistingFailed    = "failed to list existing definitions: %w"
	ErrMsgInsertClassFailed     = "failed to insert class '%s': %w"
	ErrMsgInsertItemFailed      = "failed to insert item '%s': %w"
	ErrMsgCountStashesFailed    = "failed to count stashes: %w"
	ErrMsgCreateStashFailed     = "failed to create default stash: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgSeedUnchanged        = "Seed file unchanged, skipping sync"
	LogMsgSyncCompleted        = "Catalog sync completed"
	LogMsgInsertedClass        = "Inserted class"
	LogMsgInsertedItem         = "Inserted item definition"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
	LogMsgDefaultStashCreated  = "Created default stash"
	LogMsgCacheInvalidated     = "Catalog cache invalidated"
)
