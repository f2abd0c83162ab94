package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/wesPrepare/internal/cli"
	"github.com/liserjrqlxue/wesPrepare/internal/logger"
)

const name = "prepareDesign"

// Options of one prepareDesign run.
type Options struct {
	Path      string
	Single    bool
	Recursive bool
	Output    string
}

func newCommand(stderr io.Writer) *cobra.Command {
	var debug, quiet bool
	var cmd = &cobra.Command{
		Use:   name + " path",
		Short: "Prepare the design file of the wes mapping pipeline",
		Long: `Prepare the list of fastq files processed by the wes mapping pipeline.

All fastq files (.fq, .fq.gz, .fastq, .fastq.gz) of the given directory are
listed and sorted. Mates of a pair usually follow each other in alphabetical
order, so by default the sorted files are paired two by two. The design is
written as a tsv file with the columns Sample_id, Upstream_file and, for
paired reads, Downstream_file.`,
		Example: `  # paired-end library
  prepareDesign ../tests/reads
  # single ended reads
  prepareDesign ../tests/reads --single
  # search in sub-directories
  prepareDesign ../tests --recursive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var log = logger.New(name, stderr, debug, quiet)
			defer log.Catch(&err)

			env, err := cli.NewEnv(cmd.Flags(), "single", "recursive", "output")
			if err != nil {
				log.Errorf("%v", err)
				return err
			}
			var opt = Options{
				Path:      args[0],
				Single:    env.GetBool("single"),
				Recursive: env.GetBool("recursive"),
				Output:    env.GetString("output"),
			}

			log.Debugf("Preparing design")
			if err = run(opt, log); err != nil {
				log.Exception(err)
			}
			return err
		},
	}

	var flags = cmd.Flags()
	flags.BoolP("single", "s", false, "The samples are single ended reads, not pair ended")
	flags.BoolP("recursive", "r", false, "Recursively search in sub-directories for fastq files")
	flags.StringP("output", "o", "design.tsv", "Path to output file")
	flags.BoolVarP(&debug, "debug", "d", false, "Set logging in debug mode")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Turn off logging behaviour")
	cmd.MarkFlagsMutuallyExclusive("debug", "quiet")
	flags.SortFlags = false
	return cmd
}

func main() {
	cli.LoadDotenv()
	os.Exit(cli.Execute(newCommand(os.Stderr), os.Args[1:], os.Stderr))
}
