//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Time float
var DistortionAmount float
var ColorIntensity float
var Softness float
var Color0 vec4
var Color1 vec4
var Color2 vec4
var Color3 vec4

func decodeVel(c vec4) vec2 {
	return c.rg*2.0 - 1.0
}

// clamp reads into the source region, outside is transparent black
// which would decode to a hard velocity spike along the edges
func sampleField(at vec2) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	return imageSrc0At(clamp(at, origin, origin+size-1.0))
}

// four stop gradient, three equal segments
func gradient(t float) vec4 {
	segment := 1.0 / 3.0

	if t < segment {
		return mix(Color0, Color1, t/segment)
	}
	if t < 2.0*segment {
		return mix(Color1, Color2, (t-segment)/segment)
	}
	return mix(Color2, Color3, (t-2.0*segment)/segment)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	field := sampleField(srcPos)

	// refraction style lookup, the field bends its own sampling
	warped := sampleField(srcPos + decodeVel(field)*DistortionAmount)

	trail := warped.b
	wvel := decodeVel(warped)

	res := imageDstSize()
	uv := (dstPos.xy + wvel*DistortionAmount) / res

	// slow ambient drift so the gradient never sits still
	wave := sin(uv.x*2.4+Time*0.21)*0.5 + cos(uv.y*3.1-Time*0.17)*0.5
	base := uv.y*0.55 + uv.x*0.15 + wave*0.15 + 0.1

	t := clamp(base+trail*ColorIntensity, 0.0, 1.0)
	t = mix(t, smoothstep(0.0, 1.0, t), clamp(Softness, 0.0, 1.0))

	return gradient(t)
}
