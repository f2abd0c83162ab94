package main

import (
	"os"

	"github.com/dustin/go-humanize"
	simple_util "github.com/liserjrqlxue/simple-util"

	"github.com/liserjrqlxue/wesPrepare/internal/design"
	"github.com/liserjrqlxue/wesPrepare/internal/logger"
)

func run(opt Options, log *logger.Logger) error {
	fqList, err := design.Collect(opt.Path, opt.Recursive)
	if err != nil {
		return err
	}
	if log.Enabled(logger.DEBUG) {
		logFqList(fqList, log)
	}

	if opt.Single {
		log.Debugf("Single-ended design")
	} else {
		log.Debugf("Pair-ended design")
	}
	info, err := design.Classify(fqList, opt.Single)
	if err != nil {
		return err
	}
	if info.Unpaired != "" {
		log.Warnf("odd number of fastq files, skip %s without mate", info.Unpaired)
	}
	for _, key := range info.Samples {
		log.Debugf("%s\t%+v", key, info.SampleMap[key])
	}

	if err = createDesign(opt.Output, info); err != nil {
		return err
	}
	log.Infof("%d samples written to %s", info.Len(), opt.Output)

	if log.Enabled(logger.DEBUG) {
		saved, err := design.Load(opt.Output)
		if err != nil {
			return err
		}
		log.Debugf("%s: %d samples, columns %v", opt.Output, saved.Len(), saved.Title())
	}
	return nil
}

func logFqList(fqList []string, log *logger.Logger) {
	var total uint64
	for _, fq := range fqList {
		fi, err := os.Stat(fq)
		if err != nil {
			log.Debugf("%s", fq)
			continue
		}
		total += uint64(fi.Size())
		log.Debugf("%s\t%s", fq, humanize.Bytes(uint64(fi.Size())))
	}
	log.Debugf("%d fastq files, %s", len(fqList), humanize.Bytes(total))
}

func createDesign(fileName string, info *design.Design) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer simple_util.DeferClose(file)

	simple_util.CheckErr(info.Write(file))
	return nil
}
