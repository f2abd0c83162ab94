package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	var opt = DefaultOptions()
	opt.Fasta = "/path/to/fasta.fa"
	opt.KnownVCF = []string{"/path/to/known.vcf"}
	return opt
}

func TestDefaultOptions(t *testing.T) {
	var opt = DefaultOptions()
	assert.Equal(t, "design.tsv", opt.Design)
	assert.Equal(t, ".", opt.Workdir)
	assert.Equal(t, 1, opt.Threads)
	assert.Equal(t, "docker://continuumio/miniconda3:4.4.10", opt.Singularity)
	assert.Nil(t, opt.ColdStorage)
	assert.False(t, opt.NoQualityControl)
	assert.Equal(t, "--verbose", opt.CopyExtra)
	assert.Equal(t, "-T 20 -M", opt.BwaMapExtra)
	assert.Equal(t, "RGLB=standard RGPL=illumina RGPU={sample} RGSM={sample}", opt.PicardGroupExtra)
	assert.Equal(t, "GENOME_ASSEMBLY=GRCH38 SPECIES=HSA URI=https://www.gencodegenes.org/human/", opt.PicardSequenceDictExtra)
	assert.Equal(t, "-c -m", opt.SamtoolsFixmateExtra)
	assert.Equal(t, "REMOVE_DUPLICATES=true", opt.PicardDedupExtra)
	assert.Equal(t, "METRIC_ACCUMULATION_LEVEL=SAMPLE", opt.PicardIsizeExtra)
	assert.Equal(t, "--verbosity DEBUG", opt.GatkBqsrExtra)
	assert.Equal(t, "-b -h -F 12", opt.SamtoolsView)
	assert.Equal(t, "8", opt.SamtoolsSortMemory)
	assert.Empty(t, opt.BwaIndexExtra)
	assert.Empty(t, opt.PicardSortSamExtra)
	assert.Empty(t, opt.SamtoolsFaidxExtra)
	assert.Empty(t, opt.PicardSummaryExtra)
}

func TestNewPipelineConfig(t *testing.T) {
	var cfg = NewPipelineConfig(testOptions())
	assert.Equal(t, PipelineConfig{
		ColdStorage:            nil,
		Design:                 "design.tsv",
		SingularityDockerImage: "docker://continuumio/miniconda3:4.4.10",
		Threads:                1,
		Workdir:                ".",
		Ref: Ref{
			Fasta: "/path/to/fasta.fa",
			Known: []string{"/path/to/known.vcf"},
		},
		Workflow: Workflow{Fastqc: true, MappingQuality: true, Multiqc: true},
		Params: Params{
			BwaIndexExtra:           "",
			BwaMapExtra:             "-T 20 -M",
			CopyExtra:               "--verbose",
			GatkBqsrExtra:           "--verbosity DEBUG",
			PicardDedupExtra:        "REMOVE_DUPLICATES=true",
			PicardGroupExtra:        "RGLB=standard RGPL=illumina RGPU={sample} RGSM={sample}",
			PicardIsizeExtra:        "METRIC_ACCUMULATION_LEVEL=SAMPLE",
			PicardSequenceDictExtra: "GENOME_ASSEMBLY=GRCH38 SPECIES=HSA URI=https://www.gencodegenes.org/human/",
			PicardSortSamExtra:      "",
			PicardSummaryExtra:      "",
			SamtoolsFaidxExtra:      "",
			SamtoolsFixmateExtra:    "-c -m",
			SamtoolsSortMemory:      "8",
			SamtoolsView:            "-b -h -F 12",
		},
	}, cfg)
}

func TestQualityControl(t *testing.T) {
	var opt = testOptions()
	opt.NoQualityControl = true
	assert.Equal(t, Workflow{}, NewPipelineConfig(opt).Workflow)

	opt.NoQualityControl = false
	assert.Equal(t, Workflow{Fastqc: true, MappingQuality: true, Multiqc: true}, NewPipelineConfig(opt).Workflow)
}

func TestPassThrough(t *testing.T) {
	var opt = testOptions()
	opt.Threads = -4
	opt.Fasta = "does/not/exist.fa"
	var cfg = NewPipelineConfig(opt)
	assert.Equal(t, -4, cfg.Threads)
	assert.Equal(t, "does/not/exist.fa", cfg.Ref.Fasta)
}

func TestMarshalMap(t *testing.T) {
	data, err := Marshal(map[string]interface{}{
		"bar": "bar-value",
		"foo": []string{"foo-list-1", "foo-list-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "bar: bar-value\nfoo:\n- foo-list-1\n- foo-list-2\n", string(data))
}

func TestMarshalPipelineConfig(t *testing.T) {
	data, err := Marshal(NewPipelineConfig(testOptions()))
	require.NoError(t, err)
	var text = string(data)
	for _, line := range []string{
		"cold_storage: None\n",
		"design: design.tsv\n",
		"params:\n  bwa_index_extra: \"\"\n  bwa_map_extra: -T 20 -M\n  copy_extra: --verbose\n",
		"  samtools_sort_memory: \"8\"\n  samtools_view: -b -h -F 12\n",
		"ref:\n  fasta: /path/to/fasta.fa\n  known:\n  - /path/to/known.vcf\n",
		"singularity_docker_image: docker://continuumio/miniconda3:4.4.10\nthreads: 1\nworkdir: .\n",
		"workflow:\n  fastqc: true\n  mapping_quality: true\n  multiqc: true\n",
		"  picard_sequence_dict_extra: GENOME_ASSEMBLY=GRCH38 SPECIES=HSA URI=https://www.gencodegenes.org/human/\n",
	} {
		assert.Contains(t, text, line)
	}
}

func TestMarshalPure(t *testing.T) {
	var opt = testOptions()
	opt.ColdStorage = []string{"/mnt/cold1", "/mnt/cold2"}
	first, err := Marshal(NewPipelineConfig(opt))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Marshal(NewPipelineConfig(opt))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRoundTrip(t *testing.T) {
	var withColdStorage = testOptions()
	withColdStorage.ColdStorage = []string{"/mnt/cold1", "/mnt/cold2"}
	withColdStorage.NoQualityControl = true
	withColdStorage.KnownVCF = []string{"/a.vcf", "/b.vcf.gz"}

	for _, opt := range []Options{testOptions(), withColdStorage} {
		var cfg = NewPipelineConfig(opt)
		data, err := Marshal(cfg)
		require.NoError(t, err)

		var back PipelineConfig
		require.NoError(t, Unmarshal(data, &back))
		assert.Equal(t, cfg, back)
	}

	data, err := Marshal(NewPipelineConfig(withColdStorage))
	require.NoError(t, err)
	assert.Contains(t, string(data), "cold_storage:\n- /mnt/cold1\n- /mnt/cold2\n")
}

func TestRoundTripGeneric(t *testing.T) {
	var doc = map[string]interface{}{
		"bar": "bar-value",
		"foo": []interface{}{"foo-list-1", "foo-list-2"},
	}
	data, err := Marshal(doc)
	require.NoError(t, err)
	var back map[string]interface{}
	require.NoError(t, Unmarshal(data, &back))
	assert.Equal(t, doc, back)
}

func TestPath(t *testing.T) {
	assert.Equal(t, "config.yaml", Path("."))
	assert.Equal(t, filepath.Join("/data/run1", "config.yaml"), Path("/data/run1"))
}
