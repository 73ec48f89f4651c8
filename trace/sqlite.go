package trace

import (
	"database/sql"
	"fmt"
	"os"

	// Registers the sqlite3 driver used by database/sql.Open below.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// SQLiteRecorder buffers Events and periodically batches them into a
// SQLite database, the way the teacher's SQLiteTraceWriter batches
// tasks into its trace table.
type SQLiteRecorder struct {
	db        *sql.DB
	statement *sql.Stmt

	dbName    string
	buffered  []Event
	batchSize int
}

// NewSQLiteRecorder creates a SQLiteRecorder writing to path+".sqlite3"
// (a random name is chosen if path is empty) and registers an atexit
// flush.
func NewSQLiteRecorder(path string) *SQLiteRecorder {
	r := &SQLiteRecorder{dbName: path, batchSize: 10000}

	r.open()
	r.createTable()
	r.prepareStatement()

	atexit.Register(func() { r.Flush() })

	return r
}

func (r *SQLiteRecorder) open() {
	if r.dbName == "" {
		r.dbName = "ocular_trace_" + xid.New().String()
	}

	filename := r.dbName + ".sqlite3"

	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	r.db = db
}

func (r *SQLiteRecorder) createTable() {
	r.mustExecute(`
		create table trace
		(
			time   float        not null,
			pos    varchar(100) not null,
			net    varchar(200) default '',
			detail varchar(500) default ''
		);
	`)

	r.mustExecute(`create index trace_pos_index on trace (pos);`)
	r.mustExecute(`create index trace_net_index on trace (net);`)
}

func (r *SQLiteRecorder) prepareStatement() {
	stmt, err := r.db.Prepare(`INSERT INTO trace VALUES (?, ?, ?, ?)`)
	if err != nil {
		panic(err)
	}

	r.statement = stmt
}

// Record implements Recorder.
func (r *SQLiteRecorder) Record(e Event) {
	r.buffered = append(r.buffered, e)

	if len(r.buffered) >= r.batchSize {
		r.Flush()
	}
}

// Flush writes every buffered event to the database in one transaction.
func (r *SQLiteRecorder) Flush() {
	if len(r.buffered) == 0 {
		return
	}

	r.mustExecute("BEGIN TRANSACTION")

	for _, e := range r.buffered {
		_, err := r.statement.Exec(float64(e.Time.UnixNano())/1e9, e.Pos, e.Net, e.Detail)
		if err != nil {
			panic(err)
		}
	}

	r.mustExecute("COMMIT TRANSACTION")

	r.buffered = nil
}

// Close flushes and releases the underlying database connection.
func (r *SQLiteRecorder) Close() error {
	r.Flush()
	return r.db.Close()
}

func (r *SQLiteRecorder) mustExecute(query string) {
	if _, err := r.db.Exec(query); err != nil {
		panic(fmt.Errorf("trace: exec %q: %w", query, err))
	}
}
