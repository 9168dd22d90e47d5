package colour

// Role is a coarse hue bucket used to drive token naming.
type Role string

const (
	RoleRed    Role = "red"
	RoleOrange Role = "orange"
	RoleYellow Role = "yellow"
	RoleGreen  Role = "green"
	RoleCyan   Role = "cyan"
	RoleBlue   Role = "blue"
	RolePurple Role = "purple"
	RolePink   Role = "pink"
	RoleGray   Role = "gray"
)

// GraySaturation is the saturation below which a colour is treated as grey
// regardless of its hue.
const GraySaturation = 0.12

// hueBucket is a half-open hue range [From, To) in degrees.
type hueBucket struct {
	From, To float64
	Role     Role
}

// hueBuckets covers [0,360) without gaps or overlaps.
var hueBuckets = []hueBucket{
	{0, 20, RoleRed},
	{20, 45, RoleOrange},
	{45, 70, RoleYellow},
	{70, 165, RoleGreen},
	{165, 200, RoleCyan},
	{200, 260, RoleBlue},
	{260, 300, RolePurple},
	{300, 340, RolePink},
	{340, 360, RoleRed},
}

// Roles returns every role in hue order, grey last.
func Roles() []Role {
	return []Role{RoleRed, RoleOrange, RoleYellow, RoleGreen, RoleCyan, RoleBlue, RolePurple, RolePink, RoleGray}
}

// Classify maps normalised RGB components to a role.
func Classify(r, g, b float64) Role {
	return ClassifyHSL(ToHSL(r, g, b))
}

// ClassifyHSL maps an HSL colour to a role.
func ClassifyHSL(hsl HSL) Role {
	if hsl.S < GraySaturation {
		return RoleGray
	}
	for _, bucket := range hueBuckets {
		if hsl.H >= bucket.From && hsl.H < bucket.To {
			return bucket.Role
		}
	}
	// ToHSL never yields a hue outside [0,360).
	return RoleRed
}
