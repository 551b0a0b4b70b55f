package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	osWindows = "windows"
	osDarwin  = "darwin"
	osAndroid = "android"
	osIOS     = "ios"

	// AppID identifies the application to Fyne and to the mobile packagers.
	AppID = "ru.akarpov.omnis"
)

type dirKind struct {
	darwin  string
	xdgEnv  string
	xdgHome string
}

var (
	dataDirs   = dirKind{darwin: "Application Support", xdgEnv: "XDG_DATA_HOME", xdgHome: filepath.Join(".local", "share")}
	configDirs = dirKind{darwin: "Preferences", xdgEnv: "XDG_CONFIG_HOME", xdgHome: ".config"}
)

// GetDataDir returns the platform-specific data directory for Omnis
func GetDataDir() (string, error) {
	return appDir(runtime.GOOS, dataDirs)
}

// GetConfigDir returns the platform-specific configuration directory for Omnis
func GetConfigDir() (string, error) {
	return appDir(runtime.GOOS, configDirs)
}

func appDir(goos string, kind dirKind) (string, error) {
	switch goos {
	case osWindows:
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Omnis"), nil
		}
		return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming", "Omnis"), nil
	case osDarwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", kind.darwin, "Omnis"), nil
	case osAndroid:
		if androidData := os.Getenv("ANDROID_DATA"); androidData != "" {
			return filepath.Join(androidData, "data", AppID, "files"), nil
		}
		return "/data/data/" + AppID + "/files", nil
	default:
		if xdg := os.Getenv(kind.xdgEnv); xdg != "" {
			return filepath.Join(xdg, "omnis"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, kind.xdgHome, "omnis"), nil
	}
}

// IsMobile reports whether the binary was built for a phone target.
func IsMobile() bool {
	return runtime.GOOS == osAndroid || runtime.GOOS == osIOS
}
