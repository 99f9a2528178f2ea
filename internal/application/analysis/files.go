package analysis

import (
	"io"
	"os"

	"github.com/turtacn/CiteGraph-Analytics/internal/config"
	"github.com/turtacn/CiteGraph-Analytics/pkg/errors"
)

// datasetFiles holds the opened input streams for one run.  Optional files
// with blank paths stay nil readers.
type datasetFiles struct {
	edges      io.Reader
	attributes io.Reader
	assignees  io.Reader

	open []*os.File
}

func (f *datasetFiles) Close() {
	for _, file := range f.open {
		file.Close()
	}
}

// openDatasetFiles opens every configured input.  The edge list is required;
// the attribute and assignee files are optional.  On any failure the files
// opened so far are closed.
func openDatasetFiles(cfg config.DatasetConfig) (*datasetFiles, error) {
	files := &datasetFiles{}

	openOne := func(path, what string) (io.Reader, error) {
		f, err := os.Open(path)
		if err != nil {
			files.Close()
			return nil, errors.Wrap(err, errors.ErrCodeDataSourceUnavailable, "opening "+what)
		}
		files.open = append(files.open, f)
		return f, nil
	}

	var err error
	if files.edges, err = openOne(cfg.EdgeListPath, "edge list"); err != nil {
		return nil, err
	}
	if cfg.AttributesPath != "" {
		if files.attributes, err = openOne(cfg.AttributesPath, "attribute table"); err != nil {
			return nil, err
		}
	}
	if cfg.AssigneesPath != "" {
		if files.assignees, err = openOne(cfg.AssigneesPath, "assignee names"); err != nil {
			return nil, err
		}
	}
	return files, nil
}
