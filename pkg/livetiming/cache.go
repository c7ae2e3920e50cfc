package livetiming

import (
	"database/sql"
	"log"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

const DefaultCacheDb = "./f1-cache.db"

// Cache stores raw timing API responses keyed by URL so a repeated
// comparison is served without another upstream round trip. It is
// internal to the client; callers never see it.
type Cache struct {
	db *sql.DB
	mu sync.Mutex
}

func NewCache(dbName string) (*Cache, error) {
	if dbName == "" {
		dbName = DefaultCacheDb
	}
	db, err := sql.Open("sqlite3", dbName)
	if err != nil {
		log.Printf("error opening cache database: %s\n", err)
		return nil, err
	}

	_, err = db.Exec(buildCreateResponsesTable())
	if err != nil {
		log.Printf("error init cache database: %s\n", err)
		return nil, err
	}

	return &Cache{
		db: db,
		mu: sync.Mutex{},
	}, nil
}

func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.db.Close()
}

func (c *Cache) Get(url string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var body []byte
	err := c.db.QueryRow(buildSelectResponse(), url).Scan(&body)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("error reading cache database: %s\n", err)
		}
		return nil, false
	}
	return body, true
}

func (c *Cache) Put(url string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(buildUpsertResponse(), url, body)
	if err != nil {
		log.Printf("error updating cache database: %s\n", err)
	}
	return err
}
