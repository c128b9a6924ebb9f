package container

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/pain-gen/internal/config"
	"fjacquet/pain-gen/internal/logging"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(holidaysFile string) *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Holidays.File = holidaysFile
	cfg.Holidays.National = true
	cfg.Output.Directory = "."
	cfg.Output.FilePrefix = "pain001_"
	cfg.Output.Indent = 2
	return cfg
}

func TestNewContainer(t *testing.T) {
	_, err := NewContainer(nil)
	assert.EqualError(t, err, "configuration cannot be nil")

	_, err = NewContainerWithLogger(testConfig(""), nil)
	assert.Error(t, err)

	c, err := NewContainer(testConfig(filepath.Join(t.TempDir(), "none.yaml")))
	require.NoError(t, err)

	assert.NotNil(t, c.GetLogger())
	assert.NotNil(t, c.GetConfig())
	assert.NotNil(t, c.GetHolidayStore())
	assert.NotNil(t, c.GetLoader())
	assert.NotNil(t, c.GetGenerator())
}

func TestNewContainer_HolidayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.yaml")
	require.NoError(t, os.WriteFile(path, []byte("holidays:\n  IS:\n    - date: 2024-06-17\n"), 0o600))

	mock := logging.NewMockLogger()
	c, err := NewContainerWithLogger(testConfig(path), mock)
	require.NoError(t, err)

	cal, err := c.GetGenerator().Calendar("IS")
	require.NoError(t, err, "file-defined countries are known")
	assert.False(t, cal.IsBankingDay(mustDate(t, "2024-06-17")))
	assert.True(t, cal.IsBankingDay(mustDate(t, "2024-06-18")))

	entries := mock.Entries()
	require.NotEmpty(t, entries)
	var ids []interface{}
	for _, e := range entries {
		id, ok := e.Field(logging.FieldRunID)
		require.True(t, ok, "every entry carries the run id")
		ids = append(ids, id)
	}
	_, err = uuid.Parse(ids[0].(string))
	assert.NoError(t, err)
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestNewContainer_BadHolidayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.yaml")
	require.NoError(t, os.WriteFile(path, []byte("holidays:\n  SE:\n    - date: nope\n"), 0o600))

	_, err := NewContainerWithLogger(testConfig(path), logging.NewMockLogger())
	assert.Error(t, err)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
