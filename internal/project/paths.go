package project

import (
	"strings"
	"unicode"
)

// NormalizePath trims surrounding whitespace and quotes and converts
// backslashes to forward slashes. Windows drive letters survive as-is,
// so "C:\Photos\Trip" becomes "C:/Photos/Trip".
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.Trim(p, `"'`)
	return strings.ReplaceAll(p, `\`, "/")
}

// SanitizeProjectName replaces every whitespace rune with an underscore
// so the name is safe as a filename stem.
func SanitizeProjectName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)
}

// OutputFiles derives the final and preview video paths from the output
// directory and the project name.
func OutputFiles(outputDir, projectName string) (outputFile, previewFile string) {
	dir := strings.TrimRight(NormalizePath(outputDir), "/")
	stem := SanitizeProjectName(projectName)
	outputFile = dir + "/" + stem + ".mp4"
	previewFile = dir + "/" + stem + "_preview.mp4"
	return outputFile, previewFile
}
