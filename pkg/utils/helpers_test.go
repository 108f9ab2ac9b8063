package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDuration("3s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("-1s", time.Minute))
}

func TestNumeric(t *testing.T) {
	for _, v := range []interface{}{int(3), int64(3), float32(3), 3.0, uint8(3)} {
		got, err := Numeric(v)
		require.NoError(t, err, "%T", v)
		assert.Equal(t, 3.0, got, "%T", v)
	}

	for _, v := range []interface{}{"3", true, nil} {
		_, err := Numeric(v)
		assert.Error(t, err, "%T", v)
	}
}

func TestParseYears(t *testing.T) {
	years, err := ParseYears("2018, 2016,2017")
	require.NoError(t, err)
	assert.Equal(t, []int{2018, 2016, 2017}, years)

	years, err = ParseYears("")
	require.NoError(t, err)
	assert.NotNil(t, years)
	assert.Empty(t, years)

	_, err = ParseYears("2018,next")
	assert.Error(t, err)
	_, err = ParseYears("-1")
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger("DEBUG"))
	assert.Error(t, InitLogger("LOUD"))
}

func TestOutputManager(t *testing.T) {
	om := NewOutputManager(t.TempDir())

	path, err := om.WriteFile("abc", "../report.json", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(om.BaseOutputDir, "abc", "report.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}
