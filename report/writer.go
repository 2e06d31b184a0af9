package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/tspga/ga"
)

// DefaultPath is the log file name used when none is configured.
const DefaultPath = "log.txt"

// ErrCreate wraps failures to create the log file.
var ErrCreate = errors.New("report: cannot create log file")

// Writer renders ga.Observer events. Write errors are sticky: the first one
// is kept, later writes are skipped, and Flush/Close return it.
type Writer struct {
	w      *bufio.Writer
	closer io.Closer
	err    error
}

var _ ga.Observer = (*Writer)(nil)

// New returns a Writer rendering to w.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Create opens (truncating) the file at path and returns a Writer on it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreate, err)
	}
	rw := New(f)
	rw.closer = f

	return rw, nil
}

// Err returns the first write error, if any.
func (rw *Writer) Err() error { return rw.err }

// Flush writes buffered output.
func (rw *Writer) Flush() error {
	if rw.err != nil {
		return rw.err
	}
	rw.err = rw.w.Flush()
	return rw.err
}

// Close flushes and closes the underlying file when the Writer owns one.
func (rw *Writer) Close() error {
	err := rw.Flush()
	if rw.closer != nil {
		if cerr := rw.closer.Close(); err == nil {
			err = cerr
		}
		rw.closer = nil
	}

	return err
}

func (rw *Writer) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

// OnInitialPopulation implements ga.Observer.
func (rw *Writer) OnInitialPopulation(pop ga.Population) {
	rw.printf("INITIAL POPULATION:\n")
	rw.tours(pop)
}

// OnFitness implements ga.Observer.
func (rw *Writer) OnFitness(_ int, fitness []ga.FitnessEntry) {
	rw.fitness(fitness)
}

// OnSelection implements ga.Observer.
func (rw *Writer) OnSelection(_ int, pairs []ga.ParentPair) {
	rw.printf("SELECTED PAIRS:\n")
	for _, p := range pairs {
		rw.printf("(%d,%d)\n", p.A, p.B)
	}
}

// OnGeneration implements ga.Observer.
func (rw *Writer) OnGeneration(generation int, children ga.Population) {
	rw.printf("GENERATION: %d\n", generation)
	rw.tours(children)
}

// OnFinish implements ga.Observer.
func (rw *Writer) OnFinish(res ga.Result) {
	rw.fitness(res.Final)
	rw.printf("SOLUTION:\n")
	for _, name := range res.Names {
		rw.printf("%s\n", name)
	}
	rw.printf("DISTANCE: %s miles\n", FormatDistance(res.Distance))
}

func (rw *Writer) fitness(fitness []ga.FitnessEntry) {
	rw.printf("FITNESS:\n")
	for _, f := range fitness {
		rw.printf("%d:%s\n", f.Index, FormatDistance(f.Distance))
	}
}

func (rw *Writer) tours(pop ga.Population) {
	for _, t := range pop {
		rw.printf("%s\n", FormatTour(t))
	}
}

// FormatTour joins the indices of t with commas.
func FormatTour(t ga.Tour) string {
	buf := make([]byte, 0, len(t)*3)
	for i, v := range t {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}

	return string(buf)
}

// FormatDistance renders d with six significant digits, switching to
// exponent form for very large or small values.
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'g', 6, 64)
}
