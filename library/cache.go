package library

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

const schema = `
create table if not exists tracks (
	path         text primary key,
	title        text not null,
	artist       text not null,
	album        text not null,
	track_number integer not null,
	disc_number  integer not null,
	bitrate      integer not null,
	duration     integer not null,
	has_artwork  boolean not null,
	size         integer not null,
	mtime        integer not null
);`

// Cache keeps probed track data in sqlite so re-opening an album does not re-read
// every file. Entries are stale once the file size or modification time changes.
type Cache struct {
	db *sqlx.DB
}

func OpenCache(path string) (*Cache, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open track cache")
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create track cache schema")
	}

	return &Cache{db: db}, nil
}

func (c *Cache) Lookup(path string, size, mtime int64) (types.Track, bool, error) {
	query := `
	  select path, title, artist, album, track_number, disc_number,
	         bitrate, duration, has_artwork, size, mtime
	  from tracks where path = ?;
	  `

	var track types.Track
	err := c.db.Get(&track, query, path)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Track{}, false, nil
	}
	if err != nil {
		return types.Track{}, false, errors.Wrap(err, "lookup track")
	}

	if track.Size != size || track.ModTime != mtime {
		return types.Track{}, false, nil
	}

	return track, true, nil
}

func (c *Cache) Store(track types.Track) error {
	query := `
	  insert or replace into tracks (path, title, artist, album, track_number, disc_number,
	                                 bitrate, duration, has_artwork, size, mtime)
	  values (:path, :title, :artist, :album, :track_number, :disc_number,
	          :bitrate, :duration, :has_artwork, :size, :mtime);
	  `

	if _, err := c.db.NamedExec(query, track); err != nil {
		return errors.Wrap(err, "store track")
	}

	return nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}
