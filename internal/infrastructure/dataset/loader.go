// Package dataset reads the NBER patent-data files the pipeline consumes:
// the citation edge list (cite75_99), the patent attribute table (apat63_99)
// and the assignee-name table (aconame).  Downloading and unpacking the
// archives is out of scope; the loader works from local, already-extracted
// files or any io.Reader.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/turtacn/CiteGraph-Analytics/internal/config"
	"github.com/turtacn/CiteGraph-Analytics/internal/domain/graph"
	"github.com/turtacn/CiteGraph-Analytics/internal/domain/patent"
	"github.com/turtacn/CiteGraph-Analytics/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CiteGraph-Analytics/pkg/errors"
	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

// Column layout of apat63_99: PATENT,GYEAR,GDATE,APPYEAR,COUNTRY,POSTATE,
// ASSIGNEE,ASSCODE,...  Only the three columns below are consumed.
const (
	attrColPatent   = 0
	attrColGYear    = 1
	attrColAssignee = 6
	attrMinColumns  = 7
)

// Loader reads the dataset files.  Malformed attribute and assignee rows are
// data-quality conditions: skipped with a debug log entry, never fatal.
// Malformed edge-list lines abort the load, because a broken edge silently
// changes every downstream score.
type Loader struct {
	log logging.Logger
}

// NewLoader returns a Loader logging through log.
func NewLoader(log logging.Logger) *Loader {
	return &Loader{log: log.Named("dataset")}
}

// ReadEdgeList builds the citation graph from a CITING,CITED text stream.
func (l *Loader) ReadEdgeList(r io.Reader) (*graph.CitationGraph, error) {
	b := graph.NewBuilder()
	if err := b.ReadEdgeList(r); err != nil {
		return nil, err
	}
	g := b.Finalize()
	l.log.Info("edge list loaded",
		logging.Int("nodes", g.Order()),
		logging.Int("edges", g.Size()))
	return g, nil
}

// isHeaderRecord reports whether a parsed CSV record is the column-name
// header row of one of the dataset files.
func isHeaderRecord(record []string) bool {
	if len(record) == 0 {
		return false
	}
	switch strings.ToUpper(strings.TrimSpace(record[0])) {
	case "PATENT", "ASSIGNEE", "CITING":
		return true
	}
	return false
}

// newCSVReader configures a csv.Reader for the dataset files: variable column
// counts across vintages and occasionally sloppy quoting both occur in the
// wild.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return cr
}

// ReadAttributes parses the apat63_99-layout attribute stream into records in
// file order.  Rows with too few columns or a non-numeric grant year are
// skipped and logged.  AssigneeName is left nil; JoinAssigneeNames fills it.
func (l *Loader) ReadAttributes(r io.Reader) ([]patent.Record, error) {
	cr := newCSVReader(r)

	var records []patent.Record
	skipped := 0
	lineno := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDataParseFailed, "reading attribute table")
		}
		lineno++
		if lineno == 1 && isHeaderRecord(row) {
			continue
		}

		rec, ok := l.parseAttributeRow(row, lineno)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	l.log.Info("attribute table loaded",
		logging.Int("rows", len(records)),
		logging.Int("skipped", skipped))
	return records, nil
}

func (l *Loader) parseAttributeRow(row []string, lineno int) (patent.Record, bool) {
	if len(row) < attrMinColumns {
		l.log.Debug("attribute row has too few columns",
			logging.Int("line", lineno),
			logging.Int("columns", len(row)))
		return patent.Record{}, false
	}

	id := common.PatentID(strings.TrimSpace(row[attrColPatent]))
	if id == "" {
		l.log.Debug("attribute row has empty patent id", logging.Int("line", lineno))
		return patent.Record{}, false
	}

	year, err := strconv.Atoi(strings.TrimSpace(row[attrColGYear]))
	if err != nil {
		l.log.Debug("attribute row has non-numeric grant year",
			logging.Int("line", lineno),
			logging.String("gyear", row[attrColGYear]))
		return patent.Record{}, false
	}

	// An empty assignee is a real dataset condition (unassigned patent),
	// not a malformed row.
	return patent.Record{
		PatentID:   id,
		GrantYear:  year,
		AssigneeID: common.AssigneeID(strings.TrimSpace(row[attrColAssignee])),
	}, true
}

// ReadAssigneeNames parses the aconame-layout ASSIGNEE,COMPNAME stream.
// A duplicate assignee id keeps its first name; malformed rows are skipped.
func (l *Loader) ReadAssigneeNames(r io.Reader) (map[common.AssigneeID]string, error) {
	cr := newCSVReader(r)

	names := make(map[common.AssigneeID]string)
	skipped := 0
	lineno := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDataParseFailed, "reading assignee names")
		}
		lineno++
		if lineno == 1 && isHeaderRecord(row) {
			continue
		}

		if len(row) < 2 {
			l.log.Debug("assignee row has too few columns", logging.Int("line", lineno))
			skipped++
			continue
		}
		id := common.AssigneeID(strings.TrimSpace(row[0]))
		name := strings.TrimSpace(row[1])
		if id == "" || name == "" {
			skipped++
			continue
		}
		if _, dup := names[id]; dup {
			continue
		}
		names[id] = name
	}

	l.log.Info("assignee names loaded",
		logging.Int("names", len(names)),
		logging.Int("skipped", skipped))
	return names, nil
}

// Load reads every configured file and returns the citation graph plus the
// fully joined attribute table.  The edge list is mandatory; the attribute
// and assignee files are optional and yield an empty table / unjoined names
// when their paths are blank.
func (l *Loader) Load(cfg config.DatasetConfig) (*graph.CitationGraph, *patent.AttributeTable, error) {
	f, err := os.Open(cfg.EdgeListPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrCodeDataSourceUnavailable, "opening edge list")
	}
	g, err := l.ReadEdgeList(f)
	f.Close()
	if err != nil {
		return nil, nil, err
	}

	var records []patent.Record
	if cfg.AttributesPath != "" {
		af, err := os.Open(cfg.AttributesPath)
		if err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrCodeDataSourceUnavailable, "opening attribute table")
		}
		records, err = l.ReadAttributes(af)
		af.Close()
		if err != nil {
			return nil, nil, err
		}
	}
	table := patent.NewAttributeTable(records)

	if cfg.AssigneesPath != "" {
		nf, err := os.Open(cfg.AssigneesPath)
		if err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrCodeDataSourceUnavailable, "opening assignee names")
		}
		names, err := l.ReadAssigneeNames(nf)
		nf.Close()
		if err != nil {
			return nil, nil, err
		}
		table.JoinAssigneeNames(names)
	}

	return g, table, nil
}
