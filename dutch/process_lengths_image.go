package dutch

import (
	"fmt"
	"log"
	"unicode/utf8"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type lengthsImageProcessor struct {
	collector matchCollector
	outfile   string

	lengths plotter.Values
}

func (lp *lengthsImageProcessor) process(path string) error {
	matches, err := lp.collector.matches(path)
	if err != nil {
		return err
	}
	for _, m := range matches {
		lp.lengths = append(lp.lengths, float64(utf8.RuneCountInString(m.Text)))
	}
	return nil
}

func (lp *lengthsImageProcessor) end() error {
	if len(lp.lengths) == 0 {
		return fmt.Errorf("no matches found, nothing to plot")
	}

	p := plot.New()
	p.Title.Text = "User-facing string lengths"
	p.X.Label.Text = "Length\n(characters)"
	p.Y.Label.Text = "Matches"

	h, err := plotter.NewHist(lp.lengths, 40)
	if err != nil {
		return err
	}
	p.Add(h)

	if err := p.Save(30*vg.Centimeter, 15*vg.Centimeter, lp.outfile); err != nil {
		return err
	}
	log.Printf("saved output to '%s'\n", lp.outfile)
	return nil
}
