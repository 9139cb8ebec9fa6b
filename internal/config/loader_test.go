package config

import (
	"os"
	"path/filepath"
	"testing"

	"capex/internal/capability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content CapexConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, filename)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

func writeRaw(t *testing.T, dir, filename, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// isolate points user and project lookups into tempDir.
func isolate(t *testing.T, tempDir string) (userDir, projectDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	userDir = filepath.Join(tempDir, "home", userConfigDir)
	projectDir = filepath.Join(tempDir, "work", projectConfigDir)
	getUserConfigPath = func() (string, error) {
		return filepath.Join(userDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(projectDir, configFileName), nil
	}
	return userDir, projectDir
}

func modeOf(t *testing.T, cfg CapexConfig, kind string) ModuleMode {
	t.Helper()
	m, ok := cfg.Module(kind)
	require.True(t, ok, "module %s not configured", kind)
	return m.Mode
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolate(t, t.TempDir())

	loadedConfig, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), loadedConfig)
	assert.Equal(t, "info", loadedConfig.LogLevel)
	assert.Len(t, loadedConfig.Modules, len(capability.Kinds()))
	assert.Empty(t, loadedConfig.Registry.AllowOverwrite)
}

func TestGetDefaultConfig_Modes(t *testing.T) {
	cfg := GetDefaultConfig()

	for _, k := range capability.Kinds() {
		mode := modeOf(t, cfg, k.String())
		if k.Policy() == capability.PolicyTriggered {
			assert.Equal(t, ModuleModeLazy, mode, k.String())
		} else {
			assert.NotEqual(t, ModuleModeLazy, mode, k.String())
		}
	}
	assert.Equal(t, ModuleModeEager, modeOf(t, cfg, "core-language"))
	assert.Equal(t, ModuleModeAbsent, modeOf(t, cfg, "file-descriptor"))
	assert.Equal(t, ModuleModeAbsent, modeOf(t, cfg, "console-io"))
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_UserOverride(t *testing.T) {
	userDir, _ := isolate(t, t.TempDir())

	createTempConfigFile(t, userDir, configFileName, CapexConfig{
		LogLevel: "debug",
		Modules: []ModuleConfig{
			{Kind: "file-descriptor", Mode: ModuleModeEager},
		},
	})

	loadedConfig, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "debug", loadedConfig.LogLevel)
	assert.Equal(t, ModuleModeEager, modeOf(t, loadedConfig, "file-descriptor"))
	// Untouched defaults survive the merge
	assert.Equal(t, ModuleModeLazy, modeOf(t, loadedConfig, "network-socket"))
	assert.Len(t, loadedConfig.Modules, len(capability.Kinds()))
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	userDir, projectDir := isolate(t, t.TempDir())

	createTempConfigFile(t, userDir, configFileName, CapexConfig{
		LogLevel: "debug",
		Registry: RegistryConfig{AllowOverwrite: []string{"url"}},
		Modules:  []ModuleConfig{{Kind: "url", Mode: ModuleModeEager}},
	})
	createTempConfigFile(t, projectDir, configFileName, CapexConfig{
		Registry: RegistryConfig{AllowOverwrite: []string{"uri", "network"}},
		Modules:  []ModuleConfig{{Kind: "url", Mode: ModuleModeAbsent}},
	})

	loadedConfig, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "debug", loadedConfig.LogLevel, "project leaves user log level alone")
	assert.Equal(t, ModuleModeAbsent, modeOf(t, loadedConfig, "url"))
	assert.Equal(t, []string{"uri", "network"}, loadedConfig.Registry.AllowOverwrite)

	kinds, err := loadedConfig.OverwriteKinds()
	require.NoError(t, err)
	assert.Equal(t, []capability.Kind{capability.KindNetURI, capability.KindNet}, kinds)
}

func TestLoadConfig_ProjectTOML(t *testing.T) {
	_, projectDir := isolate(t, t.TempDir())

	writeRaw(t, projectDir, tomlFileName, `
logLevel = "warn"

[registry]
allowOverwrite = ["jar-file"]

[[modules]]
kind = "jar-file"
mode = "absent"
`)

	loadedConfig, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "warn", loadedConfig.LogLevel)
	assert.Equal(t, []string{"jar-file"}, loadedConfig.Registry.AllowOverwrite)
	assert.Equal(t, ModuleModeAbsent, modeOf(t, loadedConfig, "jar-file"))
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	tempDir := t.TempDir()
	_, projectDir := isolate(t, tempDir)

	createTempConfigFile(t, projectDir, configFileName, CapexConfig{
		Modules: []ModuleConfig{{Kind: "nio-buffer", Mode: ModuleModeLazy}},
	})
	explicit := writeRaw(t, filepath.Join(tempDir, "explicit"), "capex.yaml", `
modules:
  - kind: nio-buffer
    mode: eager
`)

	loadedConfig, err := LoadConfig(explicit)
	require.NoError(t, err)
	assert.Equal(t, ModuleModeEager, modeOf(t, loadedConfig, "nio-buffer"))
}

func TestLoadConfig_ExplicitPathMissing(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	_, err := LoadConfig(filepath.Join(tempDir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	_, projectDir := isolate(t, t.TempDir())
	writeRaw(t, projectDir, configFileName, "modules: [kind: {")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading project config")
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	_, projectDir := isolate(t, t.TempDir())
	writeRaw(t, projectDir, configFileName, "")

	loadedConfig, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)
}

func TestLoadConfig_InvalidContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown kind",
			content: "modules:\n  - kind: telepathy\n    mode: eager\n",
			wantErr: "unknown capability kind",
		},
		{
			name:    "unknown mode",
			content: "modules:\n  - kind: url\n    mode: sometimes\n",
			wantErr: `unknown mode "sometimes"`,
		},
		{
			name:    "unknown overwrite kind",
			content: "registry:\n  allowOverwrite: [nope]\n",
			wantErr: "registry.allowOverwrite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, projectDir := isolate(t, t.TempDir())
			writeRaw(t, projectDir, configFileName, tt.content)

			_, err := LoadConfig("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_DuplicateModule(t *testing.T) {
	cfg := CapexConfig{
		Modules: []ModuleConfig{
			{Kind: "url", Mode: ModuleModeEager},
			{Kind: "URL", Mode: ModuleModeLazy},
		},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate module for url")
}

func TestMergeConfigs_AppendsNewKinds(t *testing.T) {
	base := CapexConfig{
		LogLevel: "info",
		Modules:  []ModuleConfig{{Kind: "url", Mode: ModuleModeLazy}},
	}
	overlay := CapexConfig{
		Modules: []ModuleConfig{
			{Kind: "uri", Mode: ModuleModeEager},
			{Kind: " Url ", Mode: ModuleModeEager},
		},
	}

	merged := mergeConfigs(base, overlay)

	assert.Equal(t, "info", merged.LogLevel)
	require.Len(t, merged.Modules, 2)
	assert.Equal(t, ModuleModeEager, merged.Modules[0].Mode)
	assert.Equal(t, "uri", merged.Modules[1].Kind)
	// base is not modified
	assert.Equal(t, ModuleModeLazy, base.Modules[0].Mode)
}

func TestGetUserConfigDir(t *testing.T) {
	originalOsUserHomeDir := osUserHomeDir
	defer func() { osUserHomeDir = originalOsUserHomeDir }()
	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "capex"), dir)
}
