package server

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/slidecraft/slidecraft/internal/api"
	"github.com/slidecraft/slidecraft/internal/project"
)

// validateDocument checks a posted document against this machine's
// filesystem. The builder already checks form completeness; this is the
// authoritative pass that confirms the referenced folders and files are
// really here.
func validateDocument(content string) api.ValidateResponse {
	var resp api.ValidateResponse

	var doc struct {
		Paths struct {
			ImagesDir  string `yaml:"images_dir"`
			AudioDir   string `yaml:"audio_dir"`
			OutputFile string `yaml:"output_file"`
		} `yaml:"paths"`
		SpecialImages struct {
			OpeningClosing string `yaml:"opening_closing"`
		} `yaml:"special_images"`
	}
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		resp.Errors = append(resp.Errors, fmt.Sprintf("document is not valid YAML: %v", err))
		return resp
	}

	imagesDir := checkDir(&resp, "images_dir", doc.Paths.ImagesDir)
	checkDir(&resp, "audio_dir", doc.Paths.AudioDir)

	if doc.Paths.OutputFile == "" {
		resp.Errors = append(resp.Errors, "output_file is not set")
	} else {
		outDir := filepath.Dir(filepath.FromSlash(doc.Paths.OutputFile))
		if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("output folder does not exist yet: %s", filepath.ToSlash(outDir)))
		}
	}

	checkSpecialImage(&resp, imagesDir, doc.SpecialImages.OpeningClosing)

	resp.Valid = len(resp.Errors) == 0
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	return resp
}

// checkDir verifies a directory value and returns the local form of the
// path, or "" when missing or invalid.
func checkDir(resp *api.ValidateResponse, field, value string) string {
	if value == "" {
		resp.Errors = append(resp.Errors, fmt.Sprintf("%s is not set", field))
		return ""
	}
	local := filepath.FromSlash(value)
	info, err := os.Stat(local)
	if err != nil || !info.IsDir() {
		resp.Errors = append(resp.Errors, fmt.Sprintf("%s does not exist: %s", field, value))
		return ""
	}
	return local
}

func checkSpecialImage(resp *api.ValidateResponse, imagesDir, name string) {
	if name == "" {
		resp.Errors = append(resp.Errors, "special opening/closing photo is not set")
		return
	}
	if !project.IsImageFile(name) {
		resp.Errors = append(resp.Errors, fmt.Sprintf("special photo %q is not an image file", name))
		return
	}
	if imagesDir == "" {
		// The images folder already failed; no point double-reporting
		return
	}
	if _, err := os.Stat(filepath.Join(imagesDir, name)); err != nil {
		resp.Errors = append(resp.Errors, fmt.Sprintf("special photo %q not found in images folder", name))
	}
}
