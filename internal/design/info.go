// Package design builds the sample design table of the wes mapping
// pipeline from a directory of fastq files.
package design

import (
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/libIM"
)

// manifest columns
const (
	SampleID       = "Sample_id"
	UpstreamFile   = "Upstream_file"
	DownstreamFile = "Downstream_file"
)

// Design is the ordered sample table.
type Design struct {
	Single bool
	// Samples lists SampleMap keys (first fastq base name) in order
	Samples   []string
	SampleMap map[string]libIM.Info
	// Unpaired is the trailing fastq dropped in paired mode, if any
	Unpaired string
}

func newDesign(single bool) *Design {
	return &Design{
		Single:    single,
		SampleMap: make(map[string]libIM.Info),
	}
}

func (d *Design) add(key string, info libIM.Info) {
	if _, ok := d.SampleMap[key]; !ok {
		d.Samples = append(d.Samples, key)
	}
	d.SampleMap[key] = info
}

// Len is the number of samples.
func (d *Design) Len() int {
	return len(d.Samples)
}

// Title returns the header row.
func (d *Design) Title() []string {
	if d.Single {
		return []string{SampleID, UpstreamFile}
	}
	return []string{SampleID, UpstreamFile, DownstreamFile}
}

// Row returns the cells of one sample in Title order.
func (d *Design) Row(key string) []string {
	var info = d.SampleMap[key]
	if d.Single {
		return []string{info.SampleID, info.Fq1}
	}
	return []string{info.SampleID, info.Fq1, info.Fq2}
}

// Stem strips the last extension: "a.R1.fq" -> "a.R1", "a.fq.gz" -> "a.fq".
// A dot file keeps its name: ".fq" -> ".fq".
func Stem(name string) string {
	name = filepath.Base(name)
	var ext = filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}
