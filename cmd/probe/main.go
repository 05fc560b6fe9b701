// Command probe runs every registered codec against a file and prints a
// ranked report of which one most plausibly explains its content.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	binprobe "github.com/waxmaker/binprobe"
)

func main() {
	jsonOut := flag.Bool("json", false, "emit the report as JSON")
	outputDir := flag.String("output-dir", "", "directory to persist successful decode payloads into")
	originalFilename := flag.String("original-filename", "", "filename to use as the stem for persisted payloads")
	startOffset := flag.Int64("start-offset", 0, "byte offset into the file to begin probing at")
	length := flag.Int64("length", -1, "number of bytes to probe, starting at start-offset (-1 means to EOF)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: probe [flags] <path>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	blob, err := readBlob(path, *startOffset, *length)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	opts := binprobe.Options{
		OutputDir:        *outputDir,
		OriginalFilename: *originalFilename,
	}
	if opts.OriginalFilename == "" {
		opts.OriginalFilename = path
	}

	report, err := binprobe.Probe(blob, opts)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	report.FilePath = path

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Println(err)
			os.Exit(1)
		}
		return
	}

	printReport(report)
}

func readBlob(path string, startOffset, length int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if startOffset > 0 {
		if _, err := f.Seek(startOffset, 0); err != nil {
			return nil, err
		}
	}

	if length < 0 {
		return io.ReadAll(f)
	}
	buf, err := io.ReadAll(io.LimitReader(f, length))
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func printReport(report *binprobe.Report) {
	fmt.Printf("%s (%d bytes)\n", report.FilePath, report.FileSize)
	fmt.Printf("%d codecs tested, %d succeeded, %d failed\n", report.TotalTests, report.SuccessCount, report.FailedCount)
	if report.BestMethod != "" {
		fmt.Printf("best match: %s (ratio=%.2f confidence=%.2f)\n", report.BestMethod, report.BestRatio, report.BestConfidence)
	} else {
		fmt.Println("no plausible codec found")
	}
	for _, o := range report.Results {
		status := "fail"
		if o.Success {
			status = "ok"
		}
		fmt.Printf("  %-20s %-4s ratio=%.2f confidence=%.2f %s\n", o.Method, status, o.Ratio, o.Confidence, o.Error)
	}
}
