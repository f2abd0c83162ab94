package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/liserjrqlxue/wesPrepare/internal/cli"
	"github.com/liserjrqlxue/wesPrepare/internal/config"
	"github.com/liserjrqlxue/wesPrepare/internal/logger"
)

const name = "prepareConfig"

// flags read through the environment layer
var envFlags = []string{
	"design",
	"workdir",
	"threads",
	"singularity",
	"no-quality-control",
	"copy-extra",
	"bwa-index-extra",
	"bwa-map-extra",
	"picard-sort-sam-extra",
	"picard-group-extra",
	"picard-sequence-dict-extra",
	"samtools-fixmate-extra",
	"samtools-faidx-extra",
	"picard-dedup-extra",
	"picard-isize-extra",
	"gatk-bqsr-extra",
	"picard-summary-extra",
	"samtools-view",
	"samtools-sort-memory",
}

func newCommand(stderr io.Writer) *cobra.Command {
	var debug, quiet bool
	var cmd = &cobra.Command{
		Use:   name + " fasta known_vcf [known_vcf...]",
		Short: "Prepare the configuration file of the wes mapping pipeline",
		Long: `Prepare the configuration file used by the wes mapping pipeline.

The command line is turned into a yaml file, <workdir>/config.yaml, that the
pipeline reads. Values are not checked: please check the prepared
configuration file!`,
		Example: `  # whole pipeline
  prepareConfig /path/to/genome.fa /path/to/dbsnp.vcf.gz
  # no quality controls
  prepareConfig /path/to/genome.fa /path/to/dbsnp.vcf.gz --no-quality-control
  # whole pipeline, verbose
  prepareConfig /path/to/genome.fa /path/to/dbsnp.vcf.gz --debug`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var log = logger.New(name, stderr, debug, quiet)
			defer log.Catch(&err)

			env, err := cli.NewEnv(cmd.Flags(), envFlags...)
			if err != nil {
				log.Errorf("%v", err)
				return err
			}
			coldStorage, err := cmd.Flags().GetStringArray("cold-storage")
			if err != nil {
				log.Errorf("%v", err)
				return err
			}
			var opt = parseOptions(env, args, coldStorage)

			log.Debugf("Preparing configuration")
			if err = run(opt, log); err != nil {
				log.Exception(err)
			}
			return err
		},
	}

	var flags = cmd.Flags()
	addFlags(flags)
	flags.BoolVar(&debug, "debug", false, "Set logging in debug mode")
	flags.BoolVar(&quiet, "quiet", false, "Turn off logging behaviour")
	cmd.MarkFlagsMutuallyExclusive("debug", "quiet")
	flags.SortFlags = false
	return cmd
}

func addFlags(flags *pflag.FlagSet) {
	flags.StringP("design", "d", config.DefaultDesign, "Path to the design file")
	flags.StringP("workdir", "w", config.DefaultWorkdir, "Path to raw data directory")
	flags.IntP("threads", "t", config.DefaultThreads, "Maximum number of threads used")
	flags.StringP("singularity", "s", config.DefaultSingularity, "Name of the docker/singularity image")
	flags.StringArray("cold-storage", nil, "Path to cold storage mount points, repeat for several (default "+config.NoColdStorage+")")
	flags.Bool("no-quality-control", false, "Do not perform any additional quality controls")

	flags.String("copy-extra", config.DefaultCopyExtra, "Extra parameters for bash copy")
	flags.String("bwa-index-extra", config.DefaultBwaIndexExtra, "Extra parameters for bwa index")
	flags.String("bwa-map-extra", config.DefaultBwaMapExtra, "Extra parameters for bwa mem")
	flags.String("picard-sort-sam-extra", config.DefaultPicardSortSamExtra, "Extra parameters for picard sort sam")
	flags.String("picard-group-extra", config.DefaultPicardGroupExtra, "Extra parameters for picard read groups")
	flags.String("picard-sequence-dict-extra", config.DefaultPicardSequenceDictExtra, "Extra parameters for picard create sequence dictionary")
	flags.String("samtools-fixmate-extra", config.DefaultSamtoolsFixmateExtra, "Extra parameters for samtools fixmate")
	flags.String("samtools-faidx-extra", config.DefaultSamtoolsFaidxExtra, "Extra parameters for samtools fasta indexation")
	flags.String("picard-dedup-extra", config.DefaultPicardDedupExtra, "Extra parameters for picard deduplicate")
	flags.String("picard-isize-extra", config.DefaultPicardIsizeExtra, "Extra parameters for picard insert size stats")
	flags.String("gatk-bqsr-extra", config.DefaultGatkBqsrExtra, "Extra parameters for GATK BQSR")
	flags.String("picard-summary-extra", config.DefaultPicardSummaryExtra, "Extra parameters for picard summary")
	flags.String("samtools-view", config.DefaultSamtoolsView, "Extra parameters for samtools view")
	flags.String("samtools-sort-memory", config.DefaultSamtoolsSortMemory, "Amount of memory (G) allocated for samtools sort")
}

func parseOptions(env *viper.Viper, args, coldStorage []string) config.Options {
	var opt = config.Options{
		Fasta:    args[0],
		KnownVCF: append([]string(nil), args[1:]...),

		Design:           env.GetString("design"),
		Workdir:          env.GetString("workdir"),
		Threads:          env.GetInt("threads"),
		Singularity:      env.GetString("singularity"),
		NoQualityControl: env.GetBool("no-quality-control"),

		CopyExtra:               env.GetString("copy-extra"),
		BwaIndexExtra:           env.GetString("bwa-index-extra"),
		BwaMapExtra:             env.GetString("bwa-map-extra"),
		PicardSortSamExtra:      env.GetString("picard-sort-sam-extra"),
		PicardGroupExtra:        env.GetString("picard-group-extra"),
		PicardSequenceDictExtra: env.GetString("picard-sequence-dict-extra"),
		SamtoolsFixmateExtra:    env.GetString("samtools-fixmate-extra"),
		SamtoolsFaidxExtra:      env.GetString("samtools-faidx-extra"),
		PicardDedupExtra:        env.GetString("picard-dedup-extra"),
		PicardIsizeExtra:        env.GetString("picard-isize-extra"),
		GatkBqsrExtra:           env.GetString("gatk-bqsr-extra"),
		PicardSummaryExtra:      env.GetString("picard-summary-extra"),
		SamtoolsView:            env.GetString("samtools-view"),
		SamtoolsSortMemory:      env.GetString("samtools-sort-memory"),
	}
	if len(coldStorage) > 0 {
		opt.ColdStorage = append([]string(nil), coldStorage...)
	}
	return opt
}

func main() {
	cli.LoadDotenv()
	os.Exit(cli.Execute(newCommand(os.Stderr), os.Args[1:], os.Stderr))
}
