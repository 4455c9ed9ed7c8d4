package dutch

import (
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

type fileStats struct {
	path          string
	literals      int
	emitted       int
	tooShort      int
	noPunctuation int
	identifiers   int
}

type statsProcessor struct {
	encName string
	cfg     Config

	files []fileStats
}

func (sp *statsProcessor) process(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := decodeReader(sp.encName, f)
	if err != nil {
		return err
	}

	fs := fileStats{path: path}
	err = scanClassified(r, sp.cfg, func(lineno int, text string, v verdict) error {
		fs.literals++
		switch v {
		case accepted:
			fs.emitted++
		case tooShort:
			fs.tooShort++
		case noPunctuation:
			fs.noPunctuation++
		case identifierShaped:
			fs.identifiers++
		}
		return nil
	})
	if err != nil {
		return err
	}

	sp.files = append(sp.files, fs)
	return nil
}

func (sp *statsProcessor) print(out io.Writer) error {
	sort.Slice(sp.files, func(i, j int) bool { return sp.files[i].path < sp.files[j].path })

	var total fileStats
	tw := tablewriter.NewWriter(out)
	tw.Header([]string{"file", "literals", "emitted", "too short", "no punctuation", "identifier shaped"})
	for _, fs := range sp.files {
		tw.Append(statsRow(fs.path, fs))
		total.literals += fs.literals
		total.emitted += fs.emitted
		total.tooShort += fs.tooShort
		total.noPunctuation += fs.noPunctuation
		total.identifiers += fs.identifiers
	}
	tw.Append(statsRow("total", total))
	tw.Render()
	return nil
}

func statsRow(name string, fs fileStats) []string {
	return []string{
		name,
		strconv.Itoa(fs.literals),
		strconv.Itoa(fs.emitted),
		strconv.Itoa(fs.tooShort),
		strconv.Itoa(fs.noPunctuation),
		strconv.Itoa(fs.identifiers),
	}
}
