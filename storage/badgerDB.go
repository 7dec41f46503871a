package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v3"
)

// Storage is the generic persistence surface the repositories build on.
// Get returns (nil, nil) for missing keys; repositories translate that
// into their domain not-found errors.
type Storage interface {
	Put(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
	GetByPrefix(prefix string) (map[string][]byte, error)
	DeleteByPrefix(prefix string) error
	PutObject(key string, obj interface{}) error
	GetObject(key string, obj interface{}) error

	Close() error
	RunGC() error
}

// DBMetrics counts storage operations since the instance opened.
type DBMetrics struct {
	PutCount    int64
	GetCount    int64
	DeleteCount int64
	PrefixCount int64
	Errors      int64
}

// DBStorage is a BadgerDB-backed Storage.
type DBStorage struct {
	db      *badger.DB
	mu      sync.Mutex
	config  BadgerDBConfig
	metrics DBMetrics
}

var (
	// Map of dbPath -> DBStorage so callers share one handle per dir.
	instances   = make(map[string]*DBStorage)
	mu          sync.RWMutex
	inMemorySeq int64
)

// GetStorage returns the shared DB instance for a data directory.
func GetStorage(dataDir string) (*DBStorage, error) {
	return GetStorageWithConfig(DefaultConfig(dataDir))
}

// GetStorageWithConfig returns a DB instance with custom configuration.
func GetStorageWithConfig(config BadgerDBConfig) (*DBStorage, error) {
	dbPath := filepath.Join(config.DataDir, "badgerdb")
	if config.InMemory {
		// Each in-memory request gets its own instance.
		dbPath = fmt.Sprintf("inmemory-%d", atomic.AddInt64(&inMemorySeq, 1))
	}

	mu.RLock()
	instance, exists := instances[dbPath]
	mu.RUnlock()

	if exists {
		return instance, nil
	}

	mu.Lock()
	defer mu.Unlock()

	// Check again in case another goroutine created it while we waited.
	instance, exists = instances[dbPath]
	if exists {
		return instance, nil
	}

	instance, err := newDBStorage(dbPath, config)
	if err != nil {
		return nil, err
	}

	instances[dbPath] = instance

	if config.GCInterval > 0 {
		go instance.startGCRoutine(time.Duration(config.GCInterval) * time.Second)
	}

	return instance, nil
}

func newDBStorage(dbPath string, config BadgerDBConfig) (*DBStorage, error) {
	var opts badger.Options
	if config.InMemory {
		// Badger rejects a Dir in disk-less mode.
		opts = badger.DefaultOptions("")
		opts.InMemory = true
	} else {
		opts = badger.DefaultOptions(dbPath)
		opts.SyncWrites = config.SyncWrites
	}
	if config.DisableLogging {
		opts.Logger = nil
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %v", err)
	}

	return &DBStorage{
		db:     db,
		config: config,
	}, nil
}

func (s *DBStorage) startGCRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := s.RunGC(); err != nil && err != badger.ErrNoRewrite {
			log.Printf("BadgerDB GC failed: %v", err)
		}
	}
}

// Close closes the database handle.
func (s *DBStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CloseAll closes every open instance. Used on shutdown.
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()

	for _, instance := range instances {
		if err := instance.Close(); err != nil {
			log.Printf("BadgerDB close failed: %v", err)
		}
	}
	instances = make(map[string]*DBStorage)
}

// Put stores a key-value pair.
func (s *DBStorage) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	atomic.AddInt64(&s.metrics.PutCount, 1)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	return s.logged("put", key, err)
}

// Get retrieves a value by key, or (nil, nil) when the key is absent.
func (s *DBStorage) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	atomic.AddInt64(&s.metrics.GetCount, 1)
	var valCopy []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			valCopy = append([]byte{}, val...)
			return nil
		})
	})
	if err != nil {
		return nil, s.logged("get", key, fmt.Errorf("failed to get value: %v", err))
	}
	return valCopy, nil
}

// Delete removes a key-value pair.
func (s *DBStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	atomic.AddInt64(&s.metrics.DeleteCount, 1)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	return s.logged("delete", key, err)
}

// GetByPrefix retrieves all key-value pairs under a prefix.
func (s *DBStorage) GetByPrefix(prefix string) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	atomic.AddInt64(&s.metrics.PrefixCount, 1)
	result := make(map[string][]byte)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			k := item.KeyCopy(nil)
			err := item.Value(func(v []byte) error {
				result[string(k)] = append([]byte{}, v...)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.logged("prefix", prefix, fmt.Errorf("failed to get values by prefix: %v", err))
	}
	return result, nil
}

// DeleteByPrefix deletes all key-value pairs under a prefix.
func (s *DBStorage) DeleteByPrefix(prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.logged("delete-prefix", prefix, s.deleteByPrefix(prefix))
}

// PutObject serializes and stores an object.
func (s *DBStorage) PutObject(key string, obj interface{}) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal object: %v", err)
	}
	return s.Put(key, data)
}

// GetObject retrieves and deserializes an object. Missing keys surface
// as an error; callers that need a sentinel should use Get directly.
func (s *DBStorage) GetObject(key string, obj interface{}) error {
	data, err := s.Get(key)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("key not found: %s", key)
	}
	if err := json.Unmarshal(data, obj); err != nil {
		return fmt.Errorf("failed to unmarshal object: %v", err)
	}
	return nil
}

// RunGC compacts value logs with at least 50% reclaimable space.
func (s *DBStorage) RunGC() error {
	return s.db.RunValueLogGC(0.5)
}

// Metrics returns a snapshot of the operation counters.
func (s *DBStorage) Metrics() DBMetrics {
	return DBMetrics{
		PutCount:    atomic.LoadInt64(&s.metrics.PutCount),
		GetCount:    atomic.LoadInt64(&s.metrics.GetCount),
		DeleteCount: atomic.LoadInt64(&s.metrics.DeleteCount),
		PrefixCount: atomic.LoadInt64(&s.metrics.PrefixCount),
		Errors:      atomic.LoadInt64(&s.metrics.Errors),
	}
}

func (s *DBStorage) logged(op, key string, err error) error {
	if err != nil {
		log.Printf("BadgerDB %s operation failed for key %s: %v", op, key, err)
		atomic.AddInt64(&s.metrics.Errors, 1)
	}
	return err
}

func (s *DBStorage) deleteByPrefix(prefix string) error {
	keysToDelete := [][]byte{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			keysToDelete = append(keysToDelete, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to collect keys for deletion: %v", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		for _, key := range keysToDelete {
			if err := txn.Delete(key); err != nil {
				return fmt.Errorf("failed to delete key: %v", err)
			}
		}
		return nil
	})
}
