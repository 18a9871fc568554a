package domain

// Domains mirror the toolkit's own enums; codes are what the toolkit writes.
var (
	OnOff = newDomain("OnOff",
		Entry{"Off", 0},
		Entry{"On", 1},
	)

	DefaultOnOff = newDomain("DefaultOnOff",
		Entry{"Default", 0},
		Entry{"Off", 1},
		Entry{"On", 2},
	)

	ScalingType = newDomain("ScalingType",
		Entry{"Off", 0},
		Entry{"NIS", 1},
		Entry{"FSR", 2},
		Entry{"CAS", 3},
	)

	// FirstRun uses 8 for On, the toolkit stores a bit flag.
	FirstRun = newDomain("FirstRun",
		Entry{"Off", 0},
		Entry{"On", 8},
	)

	VariableShadingRateType = newDomain("VariableShadingRateType",
		Entry{"Off", 0},
		Entry{"Preset", 1},
		Entry{"Custom", 2},
	)

	VRSRatio = newDomain("VRSRatio",
		Entry{"x1", 0},
		Entry{"x1_2", 1},
		Entry{"x1_4", 2},
		Entry{"x1_8", 3},
		Entry{"x1_16", 4},
	)

	// MotionReprojectionRate starts at 1.
	MotionReprojectionRate = newDomain("MotionReprojectionRate",
		Entry{"Off", 1},
		Entry{"R_45Hz", 2},
		Entry{"R_30Hz", 3},
		Entry{"R_22Hz", 4},
	)

	PostSunGlasses = newDomain("PostSunGlasses",
		Entry{"Off", 0},
		Entry{"Light", 1},
		Entry{"Dark", 2},
		Entry{"Night", 3},
	)

	OverlayType = newDomain("OverlayType",
		Entry{"Off", 0},
		Entry{"FPS", 1},
		Entry{"Advanced", 2},
		Entry{"Developer", 3},
	)
)

// All lists every built-in domain.
func All() []*Domain {
	return []*Domain{
		OnOff,
		DefaultOnOff,
		ScalingType,
		FirstRun,
		VariableShadingRateType,
		VRSRatio,
		MotionReprojectionRate,
		PostSunGlasses,
		OverlayType,
	}
}
