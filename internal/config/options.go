// Package config builds config.yaml for the wes mapping pipeline.
package config

// Options is every command line value of prepareConfig. Values are passed
// through as given; the pipeline validates them.
type Options struct {
	Fasta    string
	KnownVCF []string

	Design      string
	Workdir     string
	Threads     int
	Singularity string
	// ColdStorage is nil when no mount point was given
	ColdStorage      []string
	NoQualityControl bool

	CopyExtra               string
	BwaIndexExtra           string
	BwaMapExtra             string
	PicardSortSamExtra      string
	PicardGroupExtra        string
	PicardSequenceDictExtra string
	SamtoolsFixmateExtra    string
	SamtoolsFaidxExtra      string
	PicardDedupExtra        string
	PicardIsizeExtra        string
	GatkBqsrExtra           string
	PicardSummaryExtra      string
	SamtoolsView            string
	SamtoolsSortMemory      string
}

const (
	DefaultDesign      = "design.tsv"
	DefaultWorkdir     = "."
	DefaultThreads     = 1
	DefaultSingularity = "docker://continuumio/miniconda3:4.4.10"
	// NoColdStorage is written as cold_storage when no mount point is given.
	NoColdStorage = "None"

	DefaultCopyExtra               = "--verbose"
	DefaultBwaIndexExtra           = ""
	DefaultBwaMapExtra             = "-T 20 -M"
	DefaultPicardSortSamExtra      = ""
	DefaultPicardGroupExtra        = "RGLB=standard RGPL=illumina RGPU={sample} RGSM={sample}"
	DefaultPicardSequenceDictExtra = "GENOME_ASSEMBLY=GRCH38 SPECIES=HSA URI=https://www.gencodegenes.org/human/"
	DefaultSamtoolsFixmateExtra    = "-c -m"
	DefaultSamtoolsFaidxExtra      = ""
	DefaultPicardDedupExtra        = "REMOVE_DUPLICATES=true"
	DefaultPicardIsizeExtra        = "METRIC_ACCUMULATION_LEVEL=SAMPLE"
	DefaultGatkBqsrExtra           = "--verbosity DEBUG"
	DefaultPicardSummaryExtra      = ""
	DefaultSamtoolsView            = "-b -h -F 12"
	DefaultSamtoolsSortMemory      = "8"
)

// DefaultOptions returns the defaults for everything but the positional
// fasta and known vcf paths.
func DefaultOptions() Options {
	return Options{
		Design:      DefaultDesign,
		Workdir:     DefaultWorkdir,
		Threads:     DefaultThreads,
		Singularity: DefaultSingularity,

		CopyExtra:               DefaultCopyExtra,
		BwaIndexExtra:           DefaultBwaIndexExtra,
		BwaMapExtra:             DefaultBwaMapExtra,
		PicardSortSamExtra:      DefaultPicardSortSamExtra,
		PicardGroupExtra:        DefaultPicardGroupExtra,
		PicardSequenceDictExtra: DefaultPicardSequenceDictExtra,
		SamtoolsFixmateExtra:    DefaultSamtoolsFixmateExtra,
		SamtoolsFaidxExtra:      DefaultSamtoolsFaidxExtra,
		PicardDedupExtra:        DefaultPicardDedupExtra,
		PicardIsizeExtra:        DefaultPicardIsizeExtra,
		GatkBqsrExtra:           DefaultGatkBqsrExtra,
		PicardSummaryExtra:      DefaultPicardSummaryExtra,
		SamtoolsView:            DefaultSamtoolsView,
		SamtoolsSortMemory:      DefaultSamtoolsSortMemory,
	}
}
