package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/torus/internal/runner"
)

const (
	metadataFile   = "metadata.json"
	populationFile = "population.csv"
)

// Store keeps one directory per recorded run. Only run summaries and the
// population series are written; grid contents are never stored.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Height      int                `json:"height"`
	Width       int                `json:"width"`
	Probability float64            `json:"probability"`
	Seed        int64              `json:"seed"`
	Generations int                `json:"generations"`
	Metrics     map[string]float64 `json:"metrics"`
	Cycle       *runner.Cycle      `json:"cycle,omitempty"`
}

// Save writes the run under a fresh ID and returns it. population[i] is the
// living cell count of generation i.
func (s *Store) Save(meta RunMetadata, population []int) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("torus_%dx%d_%d", meta.Height, meta.Width, now.UnixNano())
	if meta.Timestamp.IsZero() {
		meta.Timestamp = now
	}
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	err = writeAll(metaFile, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, populationFile))
	if err != nil {
		return "", err
	}
	if err := writeAll(csvFile, func(w io.Writer) error { return writePopulation(w, population) }); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// writeAll runs fill against wc and closes it. A close error is returned
// when fill succeeded, since it can mean buffered data never reached disk.
func writeAll(wc io.WriteCloser, fill func(io.Writer) error) (err error) {
	defer func() {
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
	}()
	return fill(wc)
}

func writePopulation(out io.Writer, population []int) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"generation", "alive"}); err != nil {
		return err
	}
	for gen, alive := range population {
		if err := w.Write([]string{strconv.Itoa(gen), strconv.Itoa(alive)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadPopulation reads the population series of a run, indexed by generation.
func (s *Store) LoadPopulation(runID string) ([]int, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, populationFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []int{}, nil
	}

	population := make([]int, 0, len(records)-1)
	for i, record := range records[1:] {
		alive, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", populationFile, i+2, err)
		}
		population = append(population, alive)
	}

	return population, nil
}
