package dutch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"cloud.google.com/go/bigquery"
	"github.com/iancoleman/strcase"
)

type bqMatchRow struct {
	File   string
	Line   int
	Text   string
	Length int
}

type bqUploadProcessor struct {
	collector matchCollector
	project   string
	dataset   string
	table     string

	rows []bqMatchRow
}

func (lp *bqUploadProcessor) process(path string) error {
	matches, err := lp.collector.matches(path)
	if err != nil {
		return err
	}
	for _, m := range matches {
		lp.rows = append(lp.rows, bqMatchRow{
			File:   path,
			Line:   m.Line,
			Text:   m.Text,
			Length: utf8.RuneCountInString(m.Text),
		})
	}
	return nil
}

func (lp *bqUploadProcessor) end() error {
	// set GOOGLE_APPLICATION_CREDENTIALS to json containing service account key.

	if len(lp.rows) == 0 {
		log.Printf("no rows. not uploading to bigquery")
		return nil
	}

	ctx := context.Background()

	log.Printf("starting bigquery upload\n")
	client, err := bigquery.NewClient(ctx, lp.project)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := deleteAndRecreateBQ(ctx, client, lp.dataset, lp.table, bqMatchRow{}); err != nil {
		return err
	}

	ins := client.Dataset(lp.dataset).Table(lp.table).Inserter()
	if err := ins.Put(ctx, lp.rows); err != nil {
		return err
	}
	log.Printf("uploaded %d rows to %s.%s\n", len(lp.rows), lp.dataset, lp.table)
	return nil
}

// bqTableName derives a legal table name from the source root directory.
func bqTableName(sourceRoot string) string {
	base := strcase.ToSnake(filepath.Base(filepath.Clean(sourceRoot)))
	return base + "_dutch_strings"
}

func deleteAndRecreateBQ(ctx context.Context, client *bigquery.Client, dsName string, tableName string, example interface{}) error {
	tab := client.Dataset(dsName).Table(tableName)

	_, err := tab.Metadata(ctx)
	if err != nil {
		if !strings.Contains(err.Error(), "notFound") {
			return err
		}
		log.Printf("about to create table %s\n", tableName)
		s, err := bigquery.InferSchema(example)
		if err != nil {
			return err
		}
		if err := tab.Create(ctx, &bigquery.TableMetadata{
			Schema: s,
		}); err != nil {
			return err
		}
	} else {
		log.Printf("about to clear table %s\n", tableName)
		q := client.Query(fmt.Sprintf("DELETE FROM %s.%s where 1=1", dsName, tableName))
		q.UseLegacySQL = false
		j, err := q.Run(ctx)
		if err != nil {
			return err
		}
		status, err := j.Wait(ctx)
		if err != nil {
			return err
		}
		if status.State != bigquery.Done {
			return fmt.Errorf("unexpected job state clearing table %s", tableName)
		}
		log.Printf("cleared table %s\n", tableName)
	}

	return nil
}
