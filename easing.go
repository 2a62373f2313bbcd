package glaze

import "github.com/tanema/gween/ease"

// EasingType selects one of the 19 easing curves. The set is closed;
// [Ease] dispatches through a fixed table of [ease.TweenFunc] values from
// the gween library, which implements the standard Penner formulas
// (bounce constants n1=7.5625, d1=2.75; back overshoot 1.70158).
type EasingType uint8

const (
	Linear EasingType = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce
)

// easingFuncs maps each EasingType to its gween easing function.
var easingFuncs = [...]ease.TweenFunc{
	Linear:           ease.Linear,
	EaseInQuad:       ease.InQuad,
	EaseOutQuad:      ease.OutQuad,
	EaseInOutQuad:    ease.InOutQuad,
	EaseInCubic:      ease.InCubic,
	EaseOutCubic:     ease.OutCubic,
	EaseInOutCubic:   ease.InOutCubic,
	EaseInExpo:       ease.InExpo,
	EaseOutExpo:      ease.OutExpo,
	EaseInOutExpo:    ease.InOutExpo,
	EaseInElastic:    ease.InElastic,
	EaseOutElastic:   ease.OutElastic,
	EaseInOutElastic: ease.InOutElastic,
	EaseInBack:       ease.InBack,
	EaseOutBack:      ease.OutBack,
	EaseInOutBack:    ease.InOutBack,
	EaseInBounce:     ease.InBounce,
	EaseOutBounce:    ease.OutBounce,
	EaseInOutBounce:  ease.InOutBounce,
}

// Func returns the easing function for this type. Unknown values fall
// back to linear.
func (e EasingType) Func() ease.TweenFunc {
	if int(e) < len(easingFuncs) {
		return easingFuncs[e]
	}
	return ease.Linear
}

// Ease maps normalized time t in [0, 1] (clamped) through the selected
// easing curve.
func Ease(easing EasingType, t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return float64(easing.Func()(float32(t), 0, 1, 1))
}
