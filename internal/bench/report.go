package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"
)

// Result holds the measurements of one scenario at one grid point
type Result struct {
	Scenario    string `yaml:"scenario"`
	Element     string `yaml:"element"`
	Size        int    `yaml:"size"`
	Iterations  int    `yaml:"iterations"`
	NsPerOp     int64  `yaml:"ns_per_op"`
	BytesPerOp  int64  `yaml:"bytes_per_op"`
	AllocsPerOp int64  `yaml:"allocs_per_op"`
}

// Report is the full outcome of a benchmark run
type Report struct {
	Version        string    `yaml:"version"`
	InlineCapacity int       `yaml:"inline_capacity"`
	GeneratedAt    time.Time `yaml:"generated_at"`
	Results        []Result  `yaml:"results"`
}

// WriteYAML encodes the report as YAML
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

// WriteTable renders the report as an aligned text table
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "SCENARIO\tELEMENT\tSIZE\tITERS\tNS/OP\tB/OP\tALLOCS/OP\n")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			res.Scenario, res.Element, res.Size,
			res.Iterations, res.NsPerOp, res.BytesPerOp, res.AllocsPerOp)
	}
	return tw.Flush()
}
