package output

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/shiftroster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() domain.ScheduleResult {
	return domain.ScheduleResult{
		"AZAN": {
			Name:   "AZAN",
			Header: "1 AZAN",
			Shifts: map[int]domain.ShiftToken{
				26: {Code: "off", Kind: domain.ShiftStatus},
				27: {Code: "12A3", Kind: domain.ShiftComposite},
			},
		},
	}
}

func TestEncode_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleResult()))

	want := `{
  "AZAN": {
    "header": "1 AZAN",
    "shifts": {
      "26": "off",
      "27": "12A3"
    }
  }
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON_CreatesDirsAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	ctx := context.Background()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	require.NoError(t, WriteJSON(ctx, path, sampleResult()))

	got, err := ReadJSON(path)
	require.NoError(t, err)
	require.Contains(t, got, "AZAN")
	assert.Equal(t, "AZAN", got["AZAN"].Name)
	assert.Equal(t, "1 AZAN", got["AZAN"].Header)
	assert.Equal(t, "12A3", got["AZAN"].Shifts[27].Code)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteJSON_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "out.json")
	assert.ErrorIs(t, WriteJSON(ctx, path, sampleResult()), context.Canceled)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReadJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err := ReadJSON(path)
	assert.Error(t, err)
}
