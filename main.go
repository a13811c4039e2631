package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alexoransky/sf2-contents/report"
	"github.com/alexoransky/sf2-contents/sf2"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file.sf2>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		logrus.Fatal(err)
	}
}

func run(path string) error {
	logrus.Infof("reading %s", path)
	f, err := sf2.ParseFile(path)
	if err != nil {
		return err
	}
	graph, err := f.Assemble()
	if err != nil {
		return err
	}

	// Render both documents before writing either, so a failed render
	// leaves nothing behind.
	md := report.Markdown(graph, filepath.Base(path))
	xlsx, err := report.Spreadsheet(graph)
	if err != nil {
		return err
	}

	mdPath := withExt(path, ".md")
	xlsxPath := withExt(path, ".xlsx")

	logrus.Infof("writing %s", mdPath)
	if err := os.WriteFile(mdPath, md, 0o644); err != nil {
		return err
	}
	logrus.Infof("writing %s", xlsxPath)
	if err := os.WriteFile(xlsxPath, xlsx, 0o644); err != nil {
		os.Remove(mdPath) // the outputs are a pair: both or neither
		return err
	}
	logrus.Info("done")
	return nil
}

func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
