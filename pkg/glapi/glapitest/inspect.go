package glapitest

// BoundBuffer returns the buffer bound to target. The element array binding
// is read from the bound vertex array.
func (f *Functions) BoundBuffer(target uint32) uint32 {
	slot := f.bufferBinding(target)
	if slot == nil {
		return 0
	}
	return *slot
}

// BoundVertexArray returns the bound vertex array name.
func (f *Functions) BoundVertexArray() uint32 { return f.vertexArray }

// CurrentProgram returns the program installed by UseProgram.
func (f *Functions) CurrentProgram() uint32 { return f.current }

// BoundFramebuffer returns the bound framebuffer name.
func (f *Functions) BoundFramebuffer() uint32 { return f.framebuffer }

// ActiveUnit returns the zero-based active texture unit.
func (f *Functions) ActiveUnit() uint32 { return f.activeUnit }

// BoundTexture returns the 2D texture bound on unit.
func (f *Functions) BoundTexture(unit uint32) uint32 {
	if unit >= MaxTextureUnits {
		return 0
	}
	return f.units[unit]
}

// IsBuffer reports whether name is a live buffer.
func (f *Functions) IsBuffer(name uint32) bool {
	_, ok := f.buffers[name]
	return ok
}

// IsVertexArray reports whether name is a live vertex array.
func (f *Functions) IsVertexArray(name uint32) bool {
	_, ok := f.vertexArrays[name]
	return ok && name != 0
}

// IsShader reports whether name is a live shader object.
func (f *Functions) IsShader(name uint32) bool {
	_, ok := f.shaders[name]
	return ok
}

// IsProgram reports whether name is a live program.
func (f *Functions) IsProgram(name uint32) bool {
	_, ok := f.programs[name]
	return ok
}

// IsTexture reports whether name is a live texture.
func (f *Functions) IsTexture(name uint32) bool {
	_, ok := f.textures[name]
	return ok && name != 0
}

// IsFramebuffer reports whether name is a live framebuffer.
func (f *Functions) IsFramebuffer(name uint32) bool {
	_, ok := f.framebuffers[name]
	return ok
}

// IsQuery reports whether name is a live query.
func (f *Functions) IsQuery(name uint32) bool {
	_, ok := f.queries[name]
	return ok
}

// BufferBytes returns a copy of a buffer's contents.
func (f *Functions) BufferBytes(name uint32) []byte {
	return append([]byte(nil), f.buffers[name]...)
}

// VertexAttrib returns the state of slot index in vertex array va.
func (f *Functions) VertexAttrib(va, index uint32) (Attrib, bool) {
	v, ok := f.vertexArrays[va]
	if !ok || index >= MaxVertexAttribs {
		return Attrib{}, false
	}
	return v.attribs[index], true
}

// ElementBuffer returns the element array buffer recorded in va.
func (f *Functions) ElementBuffer(va uint32) uint32 {
	if v, ok := f.vertexArrays[va]; ok {
		return v.element
	}
	return 0
}

// Uniform returns the last value uploaded to the named uniform of prog.
// Scalars are stored as int32, uint32 or float32, vectors as [N]float32 and
// matrices as [9]float32 or [16]float32.
func (f *Functions) Uniform(prog uint32, name string) (interface{}, bool) {
	p, ok := f.programs[prog]
	if !ok || !p.linked {
		return nil, false
	}
	loc, ok := p.uniforms[name]
	if !ok {
		return nil, false
	}
	v, ok := p.values[loc]
	return v, ok
}

// TexParameter returns a parameter set with TexParameteri.
func (f *Functions) TexParameter(tex, pname uint32) int32 {
	if t, ok := f.textures[tex]; ok {
		return t.params[pname]
	}
	return 0
}

// TextureSize returns the level 0 dimensions of tex.
func (f *Functions) TextureSize(tex uint32) (int32, int32) {
	if t, ok := f.textures[tex]; ok {
		return t.width, t.height
	}
	return 0, 0
}

// TexturePixels returns a copy of the level 0 pixels of tex.
func (f *Functions) TexturePixels(tex uint32) []byte {
	if t, ok := f.textures[tex]; ok {
		return append([]byte(nil), t.pixels...)
	}
	return nil
}

// HasMipmaps reports whether GenerateMipmap ran since the last TexImage2D.
func (f *Functions) HasMipmaps(tex uint32) bool {
	t, ok := f.textures[tex]
	return ok && t.mipmaps
}

// FramebufferTexture returns the color attachment of fb.
func (f *Functions) FramebufferTexture(fb uint32) uint32 { return f.framebuffers[fb] }

// Enabled reports whether Enable was called for capability.
func (f *Functions) Enabled(capability uint32) bool { return f.enabled[capability] }

// Draws returns every recorded draw call in order.
func (f *Functions) Draws() []DrawCall {
	return append([]DrawCall(nil), f.draws...)
}
