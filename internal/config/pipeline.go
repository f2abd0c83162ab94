package config

import (
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// FileName is the config file written into the working directory.
const FileName = "config.yaml"

// PipelineConfig is the document written to config.yaml. Fields are
// declared in key order so it serializes like the equivalent sorted map.
type PipelineConfig struct {
	ColdStorage            ColdStorage `yaml:"cold_storage"`
	Design                 string      `yaml:"design"`
	Params                 Params      `yaml:"params"`
	Ref                    Ref         `yaml:"ref"`
	SingularityDockerImage string      `yaml:"singularity_docker_image"`
	Threads                int         `yaml:"threads"`
	Workdir                string      `yaml:"workdir"`
	Workflow               Workflow    `yaml:"workflow"`
}

// ColdStorage lists cold storage mount points. An empty list is written as
// the scalar NoColdStorage, which reads back as nil.
type ColdStorage []string

func (c ColdStorage) MarshalYAML() (interface{}, error) {
	if len(c) == 0 {
		return NoColdStorage, nil
	}
	return []string(c), nil
}

func (c *ColdStorage) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		if s == NoColdStorage || s == "" {
			*c = nil
		} else {
			*c = ColdStorage{s}
		}
		return nil
	}
	var list []string
	if err := unmarshal(&list); err != nil {
		return err
	}
	*c = list
	return nil
}

type Ref struct {
	Fasta string   `yaml:"fasta"`
	Known []string `yaml:"known"`
}

type Workflow struct {
	Fastqc         bool `yaml:"fastqc"`
	MappingQuality bool `yaml:"mapping_quality"`
	Multiqc        bool `yaml:"multiqc"`
}

// Params are free form argument strings, one per pipeline tool.
type Params struct {
	BwaIndexExtra           string `yaml:"bwa_index_extra"`
	BwaMapExtra             string `yaml:"bwa_map_extra"`
	CopyExtra               string `yaml:"copy_extra"`
	GatkBqsrExtra           string `yaml:"gatk_bqsr_extra"`
	PicardDedupExtra        string `yaml:"picard_dedup_extra"`
	PicardGroupExtra        string `yaml:"picard_group_extra"`
	PicardIsizeExtra        string `yaml:"picard_isize_extra"`
	PicardSequenceDictExtra string `yaml:"picard_sequence_dict_extra"`
	PicardSortSamExtra      string `yaml:"picard_sort_sam_extra"`
	PicardSummaryExtra      string `yaml:"picard_summary_extra"`
	SamtoolsFaidxExtra      string `yaml:"samtools_faidx_extra"`
	SamtoolsFixmateExtra    string `yaml:"samtools_fixmate_extra"`
	SamtoolsSortMemory      string `yaml:"samtools_sort_memory"`
	SamtoolsView            string `yaml:"samtools_view"`
}

// NewPipelineConfig nests the flat options. All three quality control
// steps follow --no-quality-control.
func NewPipelineConfig(opt Options) PipelineConfig {
	var qc = !opt.NoQualityControl
	var coldStorage ColdStorage
	if len(opt.ColdStorage) > 0 {
		coldStorage = append(coldStorage, opt.ColdStorage...)
	}
	return PipelineConfig{
		ColdStorage:            coldStorage,
		Design:                 opt.Design,
		SingularityDockerImage: opt.Singularity,
		Threads:                opt.Threads,
		Workdir:                opt.Workdir,
		Ref: Ref{
			Fasta: opt.Fasta,
			Known: append([]string(nil), opt.KnownVCF...),
		},
		Workflow: Workflow{
			Fastqc:         qc,
			MappingQuality: qc,
			Multiqc:        qc,
		},
		Params: Params{
			BwaIndexExtra:           opt.BwaIndexExtra,
			BwaMapExtra:             opt.BwaMapExtra,
			CopyExtra:               opt.CopyExtra,
			GatkBqsrExtra:           opt.GatkBqsrExtra,
			PicardDedupExtra:        opt.PicardDedupExtra,
			PicardGroupExtra:        opt.PicardGroupExtra,
			PicardIsizeExtra:        opt.PicardIsizeExtra,
			PicardSequenceDictExtra: opt.PicardSequenceDictExtra,
			PicardSortSamExtra:      opt.PicardSortSamExtra,
			PicardSummaryExtra:      opt.PicardSummaryExtra,
			SamtoolsFaidxExtra:      opt.SamtoolsFaidxExtra,
			SamtoolsFixmateExtra:    opt.SamtoolsFixmateExtra,
			SamtoolsSortMemory:      opt.SamtoolsSortMemory,
			SamtoolsView:            opt.SamtoolsView,
		},
	}
}

// Marshal renders v as block style yaml, sequences flush with their key:
//
//	bar: bar-value
//	foo:
//	- foo-list-1
func Marshal(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal reads a document written by Marshal into v.
func Unmarshal(data []byte, v interface{}) error {
	return yaml.Unmarshal(data, v)
}

// Path is the config file location for workdir.
func Path(workdir string) string {
	return filepath.Join(workdir, FileName)
}
