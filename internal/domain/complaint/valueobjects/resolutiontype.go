package valueobjects

import "fmt"

type ResolutionType string

const (
	ResolutionRepair         ResolutionType = "REPAIR"
	ResolutionGuidanceOnly   ResolutionType = "GUIDANCE_ONLY"
	ResolutionExternalVendor ResolutionType = "EXTERNAL_VENDOR"
)

var validResolutionTypes = map[ResolutionType]bool{
	ResolutionRepair:         true,
	ResolutionGuidanceOnly:   true,
	ResolutionExternalVendor: true,
}

func (r ResolutionType) String() string {
	return string(r)
}

func (r ResolutionType) IsValid() bool {
	return validResolutionTypes[r]
}

func NewResolutionType(s string) (ResolutionType, error) {
	r := ResolutionType(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid resolution type: %s", s)
	}
	return r, nil
}
