package persistence

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tpfand/tpfand/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketTransitions = "transitions"
)

// Record is a journal entry for a single profile transition.
type Record struct {
	Sequence  uint64    `json:"sequence"`
	Time      time.Time `json:"time"`
	FromLevel int       `json:"fromLevel"`
	ToLevel   int       `json:"toLevel"`
	Value     int       `json:"value"`
	Cause     string    `json:"cause"`
}

type Persistence interface {
	Init() error

	// AppendTransition stores record and drops the oldest records beyond the retention.
	AppendTransition(record Record) (err error)
	// LoadTransitions returns up to limit of the most recent records, oldest first.
	// A limit <= 0 returns all records.
	LoadTransitions(limit int) ([]Record, error)
	DeleteTransitions() (err error)
}

type persistence struct {
	dbPath    string
	retention int
}

func NewPersistence(dbPath string, retention int) Persistence {
	p := &persistence{
		dbPath:    dbPath,
		retention: retention,
	}
	return p
}

func (p persistence) Init() (err error) {
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		ui.Info("Creating directory for db: %s", parentDir)
		err = os.MkdirAll(parentDir, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p persistence) openPersistence() (db *bolt.DB, err error) {
	db, err = bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: 10 * time.Second})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func (p persistence) AppendTransition(record Record) (err error) {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketTransitions))
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}

		record.Sequence, err = b.NextSequence()
		if err != nil {
			return err
		}
		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		err = b.Put(sequenceKey(record.Sequence), data)
		if err != nil {
			return err
		}

		return p.prune(b)
	})
}

// prune removes the oldest records until at most retention records are left.
func (p persistence) prune(b *bolt.Bucket) error {
	if p.retention <= 0 {
		return nil
	}

	c := b.Cursor()
	count := 0
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		count++
	}

	excess := count - p.retention
	for k, _ := c.First(); k != nil && excess > 0; k, _ = c.First() {
		err := c.Delete()
		if err != nil {
			return err
		}
		excess--
	}
	return nil
}

func (p persistence) LoadTransitions(limit int) ([]Record, error) {
	db, err := p.openPersistence()
	if err != nil {
		return nil, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	var records []Record
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketTransitions))
		if b == nil {
			return nil
		}

		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(records) >= limit {
				break
			}
			var record Record
			err := json.Unmarshal(v, &record)
			if err != nil {
				ui.Warning("Skipping unreadable transition record %d: %v", binary.BigEndian.Uint64(k), err)
				continue
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// collected newest first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (p persistence) DeleteTransitions() error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(BucketTransitions)) == nil {
			// nothing recorded yet
			return nil
		}
		return tx.DeleteBucket([]byte(BucketTransitions))
	})
}

func sequenceKey(sequence uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, sequence)
	return key
}
