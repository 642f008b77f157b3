package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Slice is one category's share of a spending report.
type Slice struct {
	Label string
	Value decimal.Decimal
}

// PieRenderer renders category totals as a pie-chart PNG under Dir and
// returns the artifact's path.
type PieRenderer struct {
	Dir string
}

func NewPieRenderer(dir string) (*PieRenderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &PieRenderer{Dir: dir}, nil
}

// Render writes the chart for one user. Slice sizes use the magnitude of
// each total: expense categories carry negative sums but their share of
// spending is what the chart shows. Zero-valued slices are skipped.
func (r *PieRenderer) Render(name string, slices []Slice) (string, error) {
	values := make([]chart.Value, 0, len(slices))
	for _, slice := range slices {
		if slice.Value.IsZero() {
			continue
		}
		values = append(values, chart.Value{
			Label: slice.Label,
			Value: slice.Value.Abs().InexactFloat64(),
		})
	}
	if len(values) == 0 {
		return "", errors.New("nothing to chart")
	}

	pie := chart.PieChart{
		Title:  "Spending by category",
		Width:  512,
		Height: 512,
		Values: values,
	}

	artifactPath := filepath.Join(r.Dir, artifactName(name))
	f, err := os.Create(artifactPath)
	if err != nil {
		return "", fmt.Errorf("create artifact: %w", err)
	}
	defer f.Close()

	if err := pie.Render(chart.PNG, f); err != nil {
		os.Remove(artifactPath)
		return "", fmt.Errorf("render chart: %w", err)
	}

	return artifactPath, nil
}

// artifactName builds a unique, URL-safe file name from the sender identity.
func artifactName(name string) string {
	safe := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return r
		}
		return -1
	}, name)
	return fmt.Sprintf("report_%s_%s.png", safe, uuid.Must(uuid.NewV4()))
}
