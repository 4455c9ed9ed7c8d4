package dutch

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extract scans one bundle file for likely user-facing string literals and
// writes a "Line <n>: <text>" record per match to out. The input file being
// unreadable is fatal; decode errors and unterminated quotes are not.
func Extract(input string, encName string, cfg Config, out io.Writer) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := decodeReader(encName, f)
	if err != nil {
		return err
	}

	mw := newMatchWriter(out)
	if err := Scan(r, cfg, mw.write); err != nil {
		return err
	}
	return mw.flush()
}

// Stats walks the bundle tree and prints a per-file table of literal counts
// and filter outcomes to out.
func Stats(sourceRoot, ext, encName string, cfg Config, out io.Writer) error {
	if _, err := encodingByName(encName); err != nil {
		return err
	}

	sp := &statsProcessor{encName: encName, cfg: cfg}
	if err := walkSource(sourceRoot, ext, sp); err != nil {
		return err
	}
	return sp.print(out)
}

// LengthsImage walks the bundle tree and saves a histogram of matched literal
// lengths to outfile.
func LengthsImage(sourceRoot, ext, encName string, cfg Config, cacheDB, outfile string) error {
	if _, err := encodingByName(encName); err != nil {
		return err
	}

	cache, err := openCacheIfSet(cacheDB)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.close()
	}

	lp := &lengthsImageProcessor{
		collector: matchCollector{encName: encName, cfg: cfg, cache: cache},
		outfile:   outfile,
	}
	if err := walkSource(sourceRoot, ext, lp); err != nil {
		return err
	}
	return lp.end()
}

// BQUpload walks the bundle tree and uploads all match records to a BigQuery
// table named after the source root.
func BQUpload(sourceRoot, ext, encName string, cfg Config, cacheDB, project, dataset string) error {
	if _, err := encodingByName(encName); err != nil {
		return err
	}

	cache, err := openCacheIfSet(cacheDB)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.close()
	}

	lp := &bqUploadProcessor{
		collector: matchCollector{encName: encName, cfg: cfg, cache: cache},
		project:   project,
		dataset:   dataset,
		table:     bqTableName(sourceRoot),
	}
	if err := walkSource(sourceRoot, ext, lp); err != nil {
		return err
	}
	return lp.end()
}

// PGLoad walks the bundle tree and inserts all match records into the
// dutch_strings table of the database at dsn.
func PGLoad(sourceRoot, ext, encName string, cfg Config, cacheDB, dsn string) error {
	if _, err := encodingByName(encName); err != nil {
		return err
	}

	cache, err := openCacheIfSet(cacheDB)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.close()
	}

	lp := &pgLoadProcessor{
		collector: matchCollector{encName: encName, cfg: cfg, cache: cache},
		dsn:       dsn,
	}
	if err := walkSource(sourceRoot, ext, lp); err != nil {
		return err
	}
	return lp.end()
}

func openCacheIfSet(cacheDB string) (*matchCache, error) {
	if cacheDB == "" {
		return nil, nil
	}
	return openMatchCache(cacheDB)
}

func walkSource(sourceRoot, ext string, proc fileProcessor) error {
	return filepath.Walk(sourceRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			switch info.Name() {
			case ".git", "node_modules":
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ext) {
			return proc.process(path)
		}
		return nil
	})
}

type fileProcessor interface {
	process(path string) error
}
