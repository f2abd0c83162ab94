package main

import (
	"fmt"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"github.com/liserjrqlxue/wesPrepare/internal/config"
	"github.com/liserjrqlxue/wesPrepare/internal/logger"
)

func run(opt config.Options, log *logger.Logger) error {
	log.Debugf("Building configuration file:")
	var cfg = config.NewPipelineConfig(opt)
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var output = config.Path(opt.Workdir)
	log.Debugf("Saving results to %s", output)
	createConfig(output, data)
	log.Infof("configuration written to %s", output)
	return nil
}

func createConfig(fileName string, data []byte) {
	var file = osUtil.Create(fileName)
	defer simpleUtil.DeferClose(file)

	simpleUtil.HandleError(file.Write(data))
}
