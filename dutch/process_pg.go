package dutch

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"
)

type pgLoadProcessor struct {
	collector matchCollector
	dsn       string

	rows []Match
}

func (lp *pgLoadProcessor) process(path string) error {
	matches, err := lp.collector.matches(path)
	if err != nil {
		return err
	}
	lp.rows = append(lp.rows, matches...)
	return nil
}

func (lp *pgLoadProcessor) end() error {
	db, err := sql.Open("postgres", lp.dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(`create table if not exists dutch_strings (
		file text not null,
		line integer not null,
		literal text not null
	)`); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`insert into dutch_strings (file, line, literal) values ($1, $2, $3)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	for _, r := range lp.rows {
		if _, err := stmt.Exec(r.File, r.Line, r.Text); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := stmt.Close(); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("loaded %d rows into dutch_strings\n", len(lp.rows))
	return nil
}
