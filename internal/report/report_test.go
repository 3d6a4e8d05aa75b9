package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFromCounts(t *testing.T) {
	tests := []struct {
		name          string
		matched       float64
		gold          float64
		system        float64
		wantPrecision float64
		wantRecall    float64
		wantF1        float64
	}{
		{
			name:          "perfect",
			matched:       3,
			gold:          3,
			system:        3,
			wantPrecision: 1,
			wantRecall:    1,
			wantF1:        1,
		},
		{
			name:          "missed gold span",
			matched:       1,
			gold:          2,
			system:        1,
			wantPrecision: 1,
			wantRecall:    0.5,
			wantF1:        2.0 / 3.0,
		},
		{
			name:          "partial credit",
			matched:       0.5,
			gold:          1,
			system:        1,
			wantPrecision: 0.5,
			wantRecall:    0.5,
			wantF1:        0.5,
		},
		{
			name:   "no system spans",
			gold:   2,
			wantF1: 0,
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromCounts(tt.matched, tt.gold, tt.system)
			assert.InDelta(t, tt.wantPrecision, got.Precision, 1e-12)
			assert.InDelta(t, tt.wantRecall, got.Recall, 1e-12)
			assert.InDelta(t, tt.wantF1, got.F1, 1e-12)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func sampleReport() Report {
	return Report{
		Similarity: "strict",
		Scheme:     "BILOU",
		Blocks:     1,
		Tokens:     4,
		Overall:    FromCounts(1, 2, 1),
		Types: []Row{
			{Name: "LOC", Metrics: FromCounts(0, 1, 0)},
			{Name: "PER", Metrics: FromCounts(1, 1, 1)},
		},
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	r := sampleReport()
	r.Types = nil
	require.NoError(t, Write(&buf, FormatText, r))
	assert.Equal(t, "P: 1\tR: 0.5\t F: 0.6666666666666666\n", buf.String())
}

func TestWrite_TextByType(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, sampleReport()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "LOC\tP: 0\tR: 0\t F: 0", lines[1])
	assert.Equal(t, "PER\tP: 1\tR: 1\t F: 1", lines[2])
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Precision")
	assert.Contains(t, out, "overall")
	assert.Contains(t, out, "PER")
	assert.Contains(t, out, "0.6667")
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleReport()))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleReport(), got)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleReport()))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "BILOU", got.Scheme)
	assert.InDelta(t, 0.5, got.Overall.Recall, 1e-12)
	assert.Len(t, got.Types, 2)
}

func TestWriteComparison(t *testing.T) {
	rows := []Row{
		{Name: "dice", Metrics: FromCounts(0.5, 1, 1)},
		{Name: "strict", Metrics: FromCounts(0, 1, 1)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteComparison(&buf, FormatText, rows))
	assert.Equal(t, "dice\tP: 0.5\tR: 0.5\t F: 0.5\nstrict\tP: 0\tR: 0\t F: 0\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteComparison(&buf, FormatTable, rows))
	assert.Contains(t, buf.String(), "Similarity")
	assert.Contains(t, buf.String(), "dice")
}
