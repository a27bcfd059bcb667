package project

import (
	"fmt"
	"sort"
	"strings"
)

// PhotoStatus classifies the special photo field against the discovered
// image inventory.
type PhotoStatus int

const (
	// PhotoNeedsImagesDir means validation cannot run yet because the
	// images folder has not been listed.
	PhotoNeedsImagesDir PhotoStatus = iota
	// PhotoFound means the file name matches a listed image.
	PhotoFound
	// PhotoBadExtension means the name does not look like an image file.
	PhotoBadExtension
	// PhotoNotFound means the name looks like an image but is not in
	// the listed folder.
	PhotoNotFound
)

// imageExtensions lists the file extensions treated as images,
// lowercase with the leading dot.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
	".tiff": true,
	".webp": true,
}

// IsImageFile reports whether the name carries an image extension,
// case-insensitively.
func IsImageFile(name string) bool {
	lower := strings.ToLower(name)
	if i := strings.LastIndexByte(lower, '.'); i >= 0 {
		return imageExtensions[lower[i:]]
	}
	return false
}

// FileInventory holds the remote listing of the selected media folders.
// Images keep their listing order; Audio is sorted alphabetically so the
// first entry is the soundtrack candidate.
type FileInventory struct {
	Images []string
	Audio  []string
}

// NewFileInventory copies the listings, sorting the audio names.
func NewFileInventory(images, audio []string) FileInventory {
	inv := FileInventory{
		Images: append([]string(nil), images...),
		Audio:  append([]string(nil), audio...),
	}
	sort.Strings(inv.Audio)
	return inv
}

// ImageCount returns the number of listed images.
func (inv FileInventory) ImageCount() int { return len(inv.Images) }

// FirstAudio returns the alphabetically first audio file name, or "".
func (inv FileInventory) FirstAudio() string {
	if len(inv.Audio) == 0 {
		return ""
	}
	return inv.Audio[0]
}

// EstimatedDuration estimates total video length in seconds from the
// image count and the current timing settings.
func (inv FileInventory) EstimatedDuration(s FormState) float64 {
	return s.OpeningPart1Duration + s.OpeningPart2Duration +
		float64(len(inv.Images))*s.DurationPerImage +
		s.ClosingMinDuration
}

// ValidateField reports whether a required text value is filled in.
func ValidateField(value string) bool {
	return strings.TrimSpace(value) != ""
}

// WeightSumOK reports whether the three transition weight percentages
// add up to exactly 100.
func WeightSumOK(gentle, dynamic, artistic int) bool {
	return gentle+dynamic+artistic == 100
}

// CheckSpecialPhoto classifies the special photo name against the image
// inventory. Matching is by file name only and case-insensitive.
func CheckSpecialPhoto(name string, images []string) PhotoStatus {
	name = strings.TrimSpace(name)
	if images == nil {
		return PhotoNeedsImagesDir
	}
	if !IsImageFile(name) {
		return PhotoBadExtension
	}
	lower := strings.ToLower(name)
	for _, img := range images {
		if strings.ToLower(img) == lower {
			return PhotoFound
		}
	}
	return PhotoNotFound
}

// Validation is the aggregate result of checking a form snapshot.
type Validation struct {
	MissingFields []FieldSpec
	WeightsOK     bool
	PhotoStatus   PhotoStatus
	Problems      []string
}

// OK reports whether the document may be generated.
func (v Validation) OK() bool { return len(v.Problems) == 0 }

// InvalidTabs returns the set of tabs containing at least one empty
// required field or the weight-sum violation, for tab-header badges.
func (v Validation) InvalidTabs() map[Tab]bool {
	tabs := make(map[Tab]bool)
	for _, f := range v.MissingFields {
		tabs[f.Tab] = true
	}
	if !v.WeightsOK {
		tabs[TabStyle] = true
	}
	return tabs
}

// Validate checks the whole form. Only empty required fields and a bad
// weight sum land in Problems and block generation. The photo check is
// advisory: PhotoStatus drives the inline field note, but the file
// inventory is informational and the backend does the authoritative
// check at generation time.
func Validate(s FormState, inv FileInventory) Validation {
	var v Validation
	for _, f := range RequiredFields() {
		if !ValidateField(FieldValue(s, f.ID)) {
			v.MissingFields = append(v.MissingFields, f)
			v.Problems = append(v.Problems, fmt.Sprintf("%s is required", f.Label))
		}
	}

	v.WeightsOK = WeightSumOK(s.GentleWeight, s.DynamicWeight, s.ArtisticWeight)
	if !v.WeightsOK {
		sum := s.GentleWeight + s.DynamicWeight + s.ArtisticWeight
		v.Problems = append(v.Problems, fmt.Sprintf("transition weights must total 100%% (currently %d%%)", sum))
	}

	v.PhotoStatus = PhotoNeedsImagesDir
	if ValidateField(s.SpecialPhoto) {
		v.PhotoStatus = CheckSpecialPhoto(s.SpecialPhoto, inv.Images)
	}
	return v
}
