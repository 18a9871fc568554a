package domain

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// attributes maps lower-cased attribute names to the domain governing their values.
var attributes = make(map[string]*Domain)

func init() {
	register := func(name string, d *Domain) {
		name = strings.ToLower(name)
		if _, exists := attributes[name]; exists {
			panic("Duplicate attribute: " + name)
		}
		attributes[name] = d
	}

	register("first_run2", FirstRun)
	register("scaling_type", ScalingType)
	register("vrs", VariableShadingRateType)
	register("vrs_inner", VRSRatio)
	register("vrs_middle", VRSRatio)
	register("vrs_outer", VRSRatio)
	register("turbo", OnOff)
	register("override_resolution", OnOff)
	register("expert_menu", OnOff)
	register("overlay_show_clock", OnOff)
	register("overlay", OverlayType)
	register("motion_reprojection", DefaultOnOff)
	register("motion_reprojection_rate", MotionReprojectionRate)
	register("vrs_cull_mask", OnOff)
	register("post_process", OnOff)
	register("post_sunglasses", PostSunGlasses)
}

// Lookup returns the domain constraining attr. The name is matched case-insensitively.
func Lookup(attr string) (*Domain, bool) {
	d, ok := attributes[strings.ToLower(attr)]
	return d, ok
}

// Attributes returns every constrained attribute name, sorted.
func Attributes() []string {
	names := lo.Keys(attributes)
	sort.Strings(names)
	return names
}
