package design

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/goUtil/textUtil"
	"github.com/liserjrqlxue/libIM"
)

// Write prints the design as tsv: a header row, then one row per sample.
func (d *Design) Write(w io.Writer) error {
	if _, err := fmt.Fprintln(w, strings.Join(d.Title(), "\t")); err != nil {
		return err
	}
	for _, key := range d.Samples {
		if _, err := fmt.Fprintln(w, strings.Join(d.Row(key), "\t")); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a design tsv written by Write. Sample keys are rebuilt from the
// upstream file names.
func Load(path string) (*Design, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	var inputInfo, title = textUtil.File2MapArray(path, "\t", nil)
	var design = newDesign(true)
	for _, col := range title {
		if col == DownstreamFile {
			design.Single = false
		}
	}
	for _, item := range inputInfo {
		var fq1 = item[UpstreamFile]
		if fq1 == "" {
			return nil, fmt.Errorf("%s: sample %q without %s", path, item[SampleID], UpstreamFile)
		}
		design.add(filepath.Base(fq1), libIM.Info{
			SampleID: item[SampleID],
			Fq1:      fq1,
			Fq2:      item[DownstreamFile],
		})
	}
	return design, nil
}
