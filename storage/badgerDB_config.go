package storage

// BadgerDBConfig holds tuning options for the embedded database.
type BadgerDBConfig struct {
	// DataDir is the directory for database files.
	DataDir string

	// DisableLogging silences Badger's internal logger.
	DisableLogging bool

	// InMemory runs the database without touching disk. Used in tests.
	InMemory bool

	// SyncWrites flushes every write to disk before acknowledging it.
	SyncWrites bool

	// GCInterval is the value-log GC period in seconds. Zero disables GC.
	GCInterval int64
}

// DefaultConfig returns the production configuration for a data directory.
func DefaultConfig(dataDir string) BadgerDBConfig {
	return BadgerDBConfig{
		DataDir:        dataDir,
		DisableLogging: true,
		InMemory:       false,
		SyncWrites:     true,
		GCInterval:     3600,
	}
}

// InMemoryConfig returns a disk-less configuration for tests.
func InMemoryConfig() BadgerDBConfig {
	return BadgerDBConfig{
		DisableLogging: true,
		InMemory:       true,
		GCInterval:     0,
	}
}
