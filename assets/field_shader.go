//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Time float
var Frame int
var Pointer vec4 // current xy, previous zw, all zero when idle
var BrushRadius float
var BrushStrength float
var FieldDecay float
var TrailPersistence float
var StopDecay float

// Field layout, one texel per screen pixel:
//
//	r, g : velocity, stored biased as v*0.5+0.5
//	b    : trail intensity
//	a    : always 1 so premultiplied alpha never clamps rg
const velStep = 2.0 / 255.0
const advectStep = 6.0

func decodeVel(c vec4) vec2 {
	return c.rg*2.0 - 1.0
}

// out of bounds reads come back transparent black, which decodes
// to velocity (-1,-1), so clamp every sample into the source region
func sampleField(at vec2) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	return imageSrc0At(clamp(at, origin, origin+size-1.0))
}

func distToSegment(p, a, b vec2) float {
	ab := b - a
	ap := p - a
	t := clamp(dot(ap, ab)/max(dot(ab, ab), 0.0001), 0.0, 1.0)
	return length(ap - ab*t)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	// the buffers start cleared to transparent black, which would
	// decode to velocity (-1,-1), so the first frame after a cold
	// start writes an explicit zero field
	if Frame == 0 {
		return vec4(0.5, 0.5, 0.0, 1.0)
	}

	here := sampleField(srcPos)

	// pull the field along its own motion before decaying it
	carried := sampleField(srcPos - decodeVel(here)*advectStep)

	vel := decodeVel(carried) * FieldDecay
	trail := carried.b

	moving := length(Pointer) > 0.0001

	if moving {
		trail *= TrailPersistence
	} else {
		trail *= StopDecay
	}

	if moving {
		res := imageDstSize()

		// pointer coordinates arrive Y flipped
		pos := vec2(dstPos.x, res.y-dstPos.y)

		cur := Pointer.xy
		last := Pointer.zw

		d := distToSegment(pos, last, cur)
		splat := exp(-(d * d) / max(BrushRadius*BrushRadius, 0.0001))

		motion := cur - last
		motion = vec2(motion.x, -motion.y) // back into texture space

		vel += motion * 0.02 * splat * BrushStrength
		trail += splat * BrushStrength
	}

	// 8 bit texels can't hold the tail end of an exponential
	// decay, snap the residue to zero or it lingers forever
	if abs(vel.x) < velStep {
		vel.x = 0.0
	}
	if abs(vel.y) < velStep {
		vel.y = 0.0
	}
	if trail < velStep {
		trail = 0.0
	}

	vel = clamp(vel, vec2(-1.0), vec2(1.0))
	trail = clamp(trail, 0.0, 1.0)

	return vec4(vel*0.5+0.5, trail, 1.0)
}
