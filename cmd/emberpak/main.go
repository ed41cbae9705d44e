package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ember3d/ember/utility/epak"
)

var (
	outFile = flag.String("o", "out.epak", "archive file to create")
	author  = flag.String("author", "", "author recorded in the archive header")
	version = flag.Int64("version", 1, "version recorded in the archive header")
)

// emberpak packs the files given on the command line into an epak
// archive. Directories are walked recursively, entry names are the
// slash-separated paths relative to each argument's parent directory.
func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatal("no input files given")
	}

	builder, err := epak.NewBuilder(epak.Header{
		Author:      *author,
		DateCreated: time.Now().Unix(),
		Version:     *version,
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, root := range flag.Args() {
		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return err
			}
			name, err := filepath.Rel(filepath.Dir(root), path)
			if err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			log.Infof("adding %s", name)
			return builder.Add(filepath.ToSlash(name), f)
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	out, err := os.Create(*outFile)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	written, err := builder.WriteTo(out)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("wrote %s (%d bytes)", *outFile, written)
}
