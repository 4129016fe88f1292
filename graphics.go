package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

var TheGraphicsContext struct {
	BlendStack []eb.Blend
}

func init() {
	ctx := &TheGraphicsContext

	ctx.BlendStack = append(ctx.BlendStack, eb.Blend{})
}

func BeginBlend(blend eb.Blend) {
	ctx := &TheGraphicsContext

	ctx.BlendStack = append(ctx.BlendStack, blend)
}

func EndBlend() {
	ctx := &TheGraphicsContext

	ctx.BlendStack = ctx.BlendStack[0 : len(ctx.BlendStack)-1]
}

func CurrentBlend() eb.Blend {
	ctx := &TheGraphicsContext

	return ctx.BlendStack[len(ctx.BlendStack)-1]
}

type DrawRectShaderOptions struct {
	GeoM eb.GeoM

	ColorScale eb.ColorScale

	Uniforms map[string]any

	Images [4]*eb.Image
}

func DrawRectShader(
	dst *eb.Image,
	width, height int,
	shader *eb.Shader,
	options *DrawRectShaderOptions,
) {
	if options == nil {
		options = &DrawRectShaderOptions{}
	}
	op := &eb.DrawRectShaderOptions{}
	op.GeoM = options.GeoM
	op.ColorScale = options.ColorScale
	op.Blend = CurrentBlend()
	op.Uniforms = options.Uniforms
	op.Images = options.Images
	dst.DrawRectShader(width, height, shader, op)
}
