package gfx

// Built-in GLSL 3.30 sources. Attribute locations match the layouts the
// sources are meant to be drawn with.
const (
	// MeshVertex transforms a "3f2f" position and texture coordinate by the
	// model, view and projection uniforms.
	MeshVertex = `
	#version 330
	uniform mat4 model;
	uniform mat4 view;
	uniform mat4 projection;
	layout(location = 0) in vec3 position_in;
	layout(location = 1) in vec2 tex_coords_in;
	out vec2 tex_coords;
	void main() {
		gl_Position = projection * view * model * vec4(position_in, 1.0);
		tex_coords = tex_coords_in;
	}`

	// PositionVertex transforms a "3f" position only.
	PositionVertex = `
	#version 330
	uniform mat4 model;
	uniform mat4 view;
	uniform mat4 projection;
	layout(location = 0) in vec3 position_in;
	void main() {
		gl_Position = projection * view * model * vec4(position_in, 1.0);
	}`

	SolidColorFragment = `
	#version 330
	uniform vec4 uni_color;
	out vec4 frag_color;
	void main() {
		frag_color = uni_color;
	}`

	FragmentShaderSource = `
	#version 330
	uniform sampler2D frag_tex;
	in vec2 tex_coords;
	out vec4 frag_color;
	void main() {
		frag_color = texture(frag_tex, tex_coords);
	}`

	// CheckerShaderFragment blends the texture over a screen-space checker
	// board so transparent regions stay visible.
	CheckerShaderFragment = `
	#version 330
	uniform sampler2D frag_tex;
	in vec2 tex_coords;
	layout(location = 0) out vec4 frag_color;
	void main() {
		float scale = 10.0;
		float mx = floor(mod(gl_FragCoord.x / scale, 2.0));
		float my = floor(mod(gl_FragCoord.y / scale, 2.0));
		vec4 col1 = vec4(1.0, 1.0, 1.0, 1.0);
		vec4 col2 = vec4(0.7, 0.7, 0.7, 1.0);
		vec4 checker = mx == my ? col1 : col2;
		vec4 tex = texture(frag_tex, tex_coords);
		frag_color = mix(checker, tex, tex.a);
	}`

	// Uniform `tex_size` is the (width, height) of the texture.
	// Input `position_in` is the vertex position in pixels from the bottom
	// left of the screen.
	// Input `tex_pixels` is the (x, y) of the vertex in the texture starting
	// at (left, top).
	// Output `tex_coords` is typical texture coordinates for fragment shader.
	GlyphShaderVertex = `
	#version 330
	uniform vec2 tex_size;
	uniform vec2 screen_size;
	layout(location = 0) in vec2 position_in;
	layout(location = 1) in vec2 tex_pixels;
	out vec2 tex_coords;
	void main() {
		vec2 glSpace = vec2(2.0, 2.0) * (position_in / screen_size) + vec2(-1.0, -1.0);
		gl_Position = vec4(glSpace, 0.0, 1.0);
		tex_coords = vec2(tex_pixels.x / tex_size.x, tex_pixels.y / tex_size.y);
	}`

	GlyphShaderFragment = `
	#version 330
	uniform sampler2D frag_tex;
	uniform vec4 text_color;
	in vec2 tex_coords;
	out vec4 frag_color;
	void main() {
		frag_color = vec4(text_color.xyz, texture(frag_tex, tex_coords).r * text_color.w);
	}`
)
