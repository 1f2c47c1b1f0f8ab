package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// formatExt maps report format names to file extensions.
var formatExt = map[string]string{
	"text":     ".txt",
	"json":     ".json",
	"markdown": ".md",
}

// MakeOutputPath resolves the --output flag against the dump file name.
// An existing directory gets an auto-generated file placed inside it;
// any other path is used exactly as given.
func MakeOutputPath(userPath, format, source string) string {
	info, err := os.Stat(userPath)
	if err == nil && info.IsDir() {
		return filepath.Join(userPath, ReportFileName(format, source))
	}
	return userPath
}

// ReportFileName derives <dump>_<timestamp>.<ext> from the dump file name.
func ReportFileName(format, source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "sqlnav"
	}
	ts := time.Now().Format("20060102_150405")
	return base + "_" + ts + formatExt[format]
}
