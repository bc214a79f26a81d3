package gfx

import "fmt"

// Stock GLSL 330 core sources. Every program sees the same vertex inputs:
// position (location 0), texcoord (1), color (2) and bgcolor (3), and the
// uniforms offset, tex, time and viewportSize.

// DefaultVS adds the surface offset and flips Y so that cell space grows
// downward on screen.
const DefaultVS = `#version 330 core
uniform vec2 offset;

layout(location = 0) in vec4 position;
layout(location = 1) in vec2 texcoord;
layout(location = 2) in vec4 color;
layout(location = 3) in vec4 bgcolor;

out vec2 vTexcoord;
out vec4 vColor;
out vec4 vBgColor;
out vec4 vPosition;

void main() {
	vTexcoord = texcoord;
	vColor = color;
	vBgColor = bgcolor;
	vPosition = vec4(position.x + offset.x, -position.y - offset.y, position.z, 1.0);
	gl_Position = vPosition;
}
`

// DefaultFS discards texels with alpha below 0.1 and draws the rest as is.
const DefaultFS = `#version 330 core
uniform sampler2D tex;

in vec2 vTexcoord;
out vec4 fragColor;

void main() {
	vec4 v = texture(tex, vTexcoord);
	if (v.a < 0.1) {
		discard;
	}
	fragColor = v;
}
`

// FontFS expects pure white glyphs without antialiasing: white texels take
// the color attribute, everything else bgcolor.
const FontFS = `#version 330 core
uniform sampler2D tex;

in vec2 vTexcoord;
in vec4 vColor;
in vec4 vBgColor;
out vec4 fragColor;

void main() {
	vec4 v = texture(tex, vTexcoord);
	if (v.r == 1.0 && v.g == 1.0 && v.b == 1.0) {
		fragColor = vColor;
	} else {
		fragColor = vBgColor;
	}
}
`

// AAFontFS blends bgcolor and color by the glyph's alpha.
const AAFontFS = `#version 330 core
uniform sampler2D tex;

in vec2 vTexcoord;
in vec4 vColor;
in vec4 vBgColor;
out vec4 fragColor;

void main() {
	vec4 v = texture(tex, vTexcoord);
	fragColor = mix(vBgColor, vColor, v.a);
}
`

// TintFS multiplies the texel by the color attribute.
const TintFS = `#version 330 core
uniform sampler2D tex;

in vec2 vTexcoord;
in vec4 vColor;
out vec4 fragColor;

void main() {
	vec4 v = texture(tex, vTexcoord);
	if (v.a < 0.1) {
		discard;
	}
	fragColor = v * vColor;
}
`

// NewTintFS is TintFS plus bgcolor added on top.
const NewTintFS = `#version 330 core
uniform sampler2D tex;

in vec2 vTexcoord;
in vec4 vColor;
in vec4 vBgColor;
out vec4 fragColor;

void main() {
	vec4 v = texture(tex, vTexcoord);
	if (v.a < 0.1) {
		discard;
	}
	fragColor = v * vColor + vBgColor;
}
`

// GrayscaleFS weighs channels 30% red, 50% green, 20% blue.
const GrayscaleFS = `#version 330 core
uniform sampler2D tex;

in vec2 vTexcoord;
out vec4 fragColor;

void main() {
	vec4 v = texture(tex, vTexcoord);
	if (v.a < 0.1) {
		discard;
	}
	float f = 0.3 * v.r + 0.5 * v.g + 0.2 * v.b;
	fragColor = vec4(f, f, f, v.a);
}
`

// GrayscaleWithColorsFS keeps texels whose color is dominated by a single
// channel and grays out the rest.
const GrayscaleWithColorsFS = `#version 330 core
uniform sampler2D tex;

in vec2 vTexcoord;
out vec4 fragColor;

void main() {
	vec4 v = texture(tex, vTexcoord);
	if (v.a < 0.1) {
		discard;
	}
	if ((v.r > 0.6 && v.g < 0.4 && v.b < 0.4) ||
		(v.g > 0.6 && v.r < 0.4 && v.b < 0.4) ||
		(v.b > 0.6 && v.r < 0.4 && v.g < 0.4)) {
		fragColor = v;
		return;
	}
	float f = 0.3 * v.r + 0.5 * v.g + 0.2 * v.b;
	fragColor = vec4(f, f, f, v.a);
}
`

const msdfFS = `#version 330 core
uniform sampler2D tex;

in vec2 vTexcoord;
in vec4 vColor;
in vec4 vBgColor;
out vec4 fragColor;

float median(float r, float g, float b) {
	return max(min(r, g), min(max(r, g), b));
}

void main() {
	vec2 textureSize = vec2(%[1]d.0, %[1]d.0);
	vec3 s = texture(tex, vTexcoord).rgb;
	float sigDist = median(s.r, s.g, s.b) - 0.5;
	sigDist *= dot(%[2]d.0 / textureSize, 0.5 / fwidth(vTexcoord));
	float opacity = clamp(sigDist + 0.5, 0.0, 1.0);
	vec4 v = mix(vBgColor, vColor, opacity);
%[3]s}
`

// MsdfFS renders a multi-channel signed distance field font of the given
// square texture size and distance range in pixels.
func MsdfFS(textureSize, pxRange int) string {
	return fmt.Sprintf(msdfFS, textureSize, pxRange, "\tfragColor = v;\n")
}

// GrayscaleMsdfFS is MsdfFS with the GrayscaleFS channel weights applied.
func GrayscaleMsdfFS(textureSize, pxRange int) string {
	return fmt.Sprintf(msdfFS, textureSize, pxRange,
		"\tfloat f = 0.3 * v.r + 0.5 * v.g + 0.2 * v.b;\n\tfragColor = vec4(f, f, f, v.a);\n")
}
