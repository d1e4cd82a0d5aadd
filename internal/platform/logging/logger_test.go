package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"jewelstore/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetup_Level(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(os.Stderr); logrus.SetLevel(logrus.InfoLevel) })

	closer, err := Setup(config.Logging{Level: "debug"})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	_, err = Setup(config.Logging{Level: "loud"})
	require.NoError(t, err)
	require.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestSetup_FileOutput(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(os.Stderr); logrus.SetLevel(logrus.InfoLevel) })

	path := filepath.Join(t.TempDir(), "logs", "jewelstore.log")
	closer, err := Setup(config.Logging{Level: "info", OutputFile: path})
	require.NoError(t, err)

	logrus.WithField("job", "ingest").Info("rates stored")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	require.Equal(t, "rates stored", entry["msg"])
	require.Equal(t, "ingest", entry["job"])
}
