package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver provides robust path resolution for the spellserve binary
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  execDir,
		homeDir:        homeDir,
		configDir:      getConfigDir(homeDir),
	}

	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		execPath, execDir, pr.configDir)

	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "spellserve")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "spellserve")
		}
		return filepath.Join(homeDir, ".config", "spellserve")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "spellserve")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "spellserve")
	default:
		return filepath.Join(homeDir, ".spellserve")
	}
}

// ResolveWordList resolves a word list path, trying the path as given, then
// relative to the current directory, the executable, and the config dir.
func (pr *PathResolver) ResolveWordList(path string) (string, error) {
	if path == "" {
		return "", os.ErrNotExist
	}
	if filepath.IsAbs(path) {
		if FileExists(path) {
			return path, nil
		}
		return "", os.ErrNotExist
	}

	candidates := []string{path}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, path))
	}
	candidates = append(candidates,
		filepath.Join(pr.executableDir, path),
		filepath.Join(pr.configDir, path),
	)

	for _, candidate := range candidates {
		if FileExists(candidate) {
			log.Debugf("Resolved word list %s to %s", path, candidate)
			return candidate, nil
		}
	}
	return "", os.ErrNotExist
}

// GetConfigPath returns the full path for a config file.
// It ensures the config directory exists and handles read-only filesystems.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	configPath := filepath.Join(pr.configDir, filename)
	if pr.ensureConfigDir(pr.configDir) {
		return configPath, nil
	}

	// Fallback locations if config dir is not writable
	fallbackDirs := []string{
		filepath.Join(pr.homeDir, ".spellserve"),
		filepath.Join(os.TempDir(), "spellserve"),
		pr.executableDir,
	}

	for _, dir := range fallbackDirs {
		if pr.ensureConfigDir(dir) {
			path := filepath.Join(dir, filename)
			log.Warnf("Using fallback config location: %s", path)
			return path, nil
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath, nil
}

// ensureConfigDir creates the directory if it doesn't exist and tests writability
func (pr *PathResolver) ensureConfigDir(dir string) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Debugf("Cannot create config directory %s: %v", dir, err)
		return false
	}

	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		log.Debugf("Config directory %s is not writable: %v", dir, err)
		return false
	}
	os.Remove(testFile)
	return true
}

// GetExecutableDir returns the directory containing the executable
func (pr *PathResolver) GetExecutableDir() string {
	return pr.executableDir
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
