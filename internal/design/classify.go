package design

import (
	"fmt"
	"path/filepath"

	"github.com/liserjrqlxue/libIM"
)

// Classify groups sorted fastq paths into samples.
//
// In single mode every file is a sample. Otherwise files are taken two by
// two, fq[0] with fq[1], fq[2] with fq[3] and so on; mates are expected to
// sort next to each other and this is not checked. With an odd number of
// files the last one is left out and recorded in Design.Unpaired.
func Classify(fqList []string, single bool) (*Design, error) {
	var design = newDesign(single)
	if single {
		for _, fq := range fqList {
			fq1, err := filepath.Abs(fq)
			if err != nil {
				return nil, fmt.Errorf("resolve %s: %w", fq, err)
			}
			design.add(filepath.Base(fq), libIM.Info{
				SampleID: Stem(fq),
				Fq1:      fq1,
			})
		}
		return design, nil
	}

	for i := 0; i+1 < len(fqList); i += 2 {
		fq1, err := filepath.Abs(fqList[i])
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", fqList[i], err)
		}
		fq2, err := filepath.Abs(fqList[i+1])
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", fqList[i+1], err)
		}
		design.add(filepath.Base(fqList[i]), libIM.Info{
			SampleID: Stem(fqList[i]),
			Fq1:      fq1,
			Fq2:      fq2,
		})
	}
	if len(fqList)%2 == 1 {
		design.Unpaired = fqList[len(fqList)-1]
	}
	return design, nil
}
