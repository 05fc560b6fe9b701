// Command probe-bench runs a full Probe pass over each given file under a
// CPU profiler, for benchmarking the registry's concurrent dispatch.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	binprobe "github.com/waxmaker/binprobe"
)

func main() {
	f, err := os.Create("probe-bench.pprof")
	if err != nil {
		log.Println(err)
	}
	defer f.Close()
	err = pprof.StartCPUProfile(f)
	if err != nil {
		log.Println(err)
	}
	defer pprof.StopCPUProfile()

	flag.Parse()
	for _, filePath := range flag.Args() {
		if err := probeFile(filePath); err != nil {
			log.Println(err)
		}
	}
}

func probeFile(filePath string) error {
	blob, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	_, err = binprobe.Probe(blob, binprobe.Options{OriginalFilename: filePath})
	return err
}
