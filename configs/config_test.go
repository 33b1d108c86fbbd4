package configs_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/unbasical/mockresponse/configs"
	"github.com/unbasical/mockresponse/internal/pkg/util"
)

func intPtr(i int) *int { return &i }

func TestLoadConfigFromFile(t *testing.T) {
	result, err := configs.FileConfigLoader{FilePath: "./testdata/config.yml"}.Load()
	if err != nil {
		t.Fatalf("Unexpected error while parsing config: %s", err)
	}

	want := &configs.Config{
		Logging: configs.LoggingConfig{Level: "debug", Format: "JSON"},
		Pool:    configs.PoolConfig{MaxIdle: intPtr(4)},
	}
	if !cmp.Equal(want, result) {
		t.Errorf("Config is not as expected! Diff: %s", cmp.Diff(want, result))
	}
	assert.Equal(t, 4, result.Pool.Idle())
}

func TestLoadConfigExpandsEnv(t *testing.T) {
	t.Setenv("MOCKRESPONSE_TEST_LOG_LEVEL", "WARN")
	result, err := configs.FileConfigLoader{FilePath: "./testdata/config_env.yml"}.Load()
	assert.NoError(t, err)
	assert.Equal(t, "WARN", result.Logging.Level)
	assert.Equal(t, configs.DefaultLogFormat, result.Logging.Format)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	result, err := configs.ByteConfigLoader{ConfigBytes: []byte("{}")}.Load()
	assert.NoError(t, err)
	assert.Equal(t, configs.Default(), result)
	assert.Equal(t, configs.DefaultMaxIdle, result.Pool.Idle())
}

func TestLoadConfigZeroIdle(t *testing.T) {
	result, err := configs.FileConfigLoader{FilePath: "./testdata/config_no_reuse.yml"}.Load()
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Pool.Idle())
}

func TestLoadNotExistingFile(t *testing.T) {
	_, err := configs.FileConfigLoader{FilePath: "./config-not-existing.yml"}.Load()
	assert.EqualError(t, err, "open ./config-not-existing.yml: no such file or directory")
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := configs.FileConfigLoader{}.Load()
	assert.EqualError(t, err, "FilePath must not be empty!")
}

func TestLoadNilBytes(t *testing.T) {
	_, err := configs.ByteConfigLoader{}.Load()
	assert.EqualError(t, err, "ConfigBytes must not be nil!")
}

func TestLoadInvalidLevel(t *testing.T) {
	_, err := configs.FileConfigLoader{FilePath: "./testdata/config_invalid_level.yml"}.Load()
	assert.EqualError(t, err, "Loaded invalid config: Unknown log level \"verbose\"! Must be one of [DEBUG, INFO, WARN, ERROR]")
}

func TestLoadNegativeIdle(t *testing.T) {
	_, err := configs.FileConfigLoader{FilePath: "./testdata/config_negative_idle.yml"}.Load()
	assert.EqualError(t, err, "Loaded invalid config: Pool max-idle must not be negative but was -1!")
}

func TestLoadMalformedYaml(t *testing.T) {
	_, err := configs.ByteConfigLoader{ConfigBytes: []byte("logging: [")}.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unable to parse config")
}

func TestConfigureLogging(t *testing.T) {
	origOut, origFormatter, origLevel := log.StandardLogger().Out, log.StandardLogger().Formatter, log.GetLevel()
	defer func() {
		log.SetOutput(origOut)
		log.SetFormatter(origFormatter)
		log.SetLevel(origLevel)
	}()

	var out bytes.Buffer
	configs.ConfigureLogging(configs.LoggingConfig{Level: "debug", Format: "json"}, &out)

	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, util.UTCFormatter{}, log.StandardLogger().Formatter)

	log.Debug("hello")
	assert.Contains(t, out.String(), `"msg":"hello"`)
}
